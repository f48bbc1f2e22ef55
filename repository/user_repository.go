package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workspace-chat-app/entity"
)

type UserRepositoryImpl struct {
	Repository[entity.User]
}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (repository *UserRepositoryImpl) Save(ctx context.Context, db *gorm.DB, user *entity.User) error {
	return translateError(repository.Repository.Save(ctx, db, user))
}

func (repository *UserRepositoryImpl) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.User, error) {
	return repository.FindById(ctx, db, id)
}

func (repository *UserRepositoryImpl) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repository *UserRepositoryImpl) ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountInWorkspace counts the distinct ids that belong to users of the
// workspace, so a repeated id is counted once.
func (repository *UserRepositoryImpl) CountInWorkspace(ctx context.Context, db *gorm.DB, workspaceID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.User{}).
		Where("workspace_id = ? AND id IN ?", workspaceID, ids).
		Count(&count).Error
	return count, err
}

func (repository *UserRepositoryImpl) FindAllByWorkspace(ctx context.Context, db *gorm.DB, workspaceID int64) ([]entity.User, error) {
	var users []entity.User
	err := db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("id ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
