package usecase

import (
	"context"

	"gorm.io/gorm"

	"workspace-chat-app/apperror"
	"workspace-chat-app/config/logger"
	"workspace-chat-app/entity"
	"workspace-chat-app/repository"
)

type UserUsecaseImpl struct {
	repository.UserRepository
	DB  *gorm.DB
	Log *logger.AppLogger
}

func NewUserUsecase(userRepository repository.UserRepository, DB *gorm.DB, log *logger.AppLogger) UserUsecase {
	return &UserUsecaseImpl{UserRepository: userRepository, DB: DB, Log: log}
}

func (uc *UserUsecaseImpl) GetByID(ctx context.Context, id int64) (entity.Identity, error) {
	uc.Log.Http.Trace.Trace().Int64("userId", id).Msg("Finding user by ID")

	user, err := uc.UserRepository.FindByID(ctx, uc.DB, id)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Int64("userId", id).Msg("Failed to find user")
		return entity.Identity{}, err
	}
	if user == nil {
		uc.Log.Http.Warning.Warn().Int64("userId", id).Msg("User not found")
		return entity.Identity{}, apperror.ErrNotFound
	}
	return user.Identity(), nil
}
