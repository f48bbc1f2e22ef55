package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"workspace-chat-app/entity"
)

// ownerIsMember holds when the candidate owner is a user of the workspace.
const ownerIsMember = "(SELECT workspace_id FROM t_user WHERE id = ?) = ?"

type WorkspaceRepositoryImpl struct {
	Repository[entity.Workspace]
}

func NewWorkspaceRepository() WorkspaceRepository {
	return &WorkspaceRepositoryImpl{}
}

func (repository *WorkspaceRepositoryImpl) Save(ctx context.Context, db *gorm.DB, workspace *entity.Workspace) error {
	return translateError(repository.Repository.Save(ctx, db, workspace))
}

func (repository *WorkspaceRepositoryImpl) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Workspace, error) {
	return repository.FindById(ctx, db, id)
}

func (repository *WorkspaceRepositoryImpl) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Workspace, error) {
	var workspace entity.Workspace
	err := db.WithContext(ctx).Where("name = ?", name).Take(&workspace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

func (repository *WorkspaceRepositoryImpl) EnsureByName(ctx context.Context, db *gorm.DB, name string) (*entity.Workspace, error) {
	candidate := &entity.Workspace{Name: name, OwnerID: entity.UnownedWorkspace}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(candidate).Error
	if err != nil {
		return nil, err
	}

	var workspace entity.Workspace
	err = db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		Take(&workspace).Error
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

func (repository *WorkspaceRepositoryImpl) UpdateOwner(ctx context.Context, db *gorm.DB, workspaceID, ownerID int64) (int64, error) {
	result := db.WithContext(ctx).
		Model(&entity.Workspace{}).
		Where("id = ? AND "+ownerIsMember, workspaceID, ownerID, workspaceID).
		Update("owner_id", ownerID)
	return result.RowsAffected, result.Error
}

func (repository *WorkspaceRepositoryImpl) ClaimOwner(ctx context.Context, db *gorm.DB, workspaceID, ownerID int64) (int64, error) {
	result := db.WithContext(ctx).
		Model(&entity.Workspace{}).
		Where("id = ? AND owner_id = ? AND "+ownerIsMember, workspaceID, entity.UnownedWorkspace, ownerID, workspaceID).
		Update("owner_id", ownerID)
	return result.RowsAffected, result.Error
}
