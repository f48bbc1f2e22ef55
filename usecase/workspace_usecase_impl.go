package usecase

import (
	"context"

	"gorm.io/gorm"

	"workspace-chat-app/apperror"
	"workspace-chat-app/config/logger"
	"workspace-chat-app/entity"
	"workspace-chat-app/repository"
)

type WorkspaceUsecaseImpl struct {
	WorkspaceRepository repository.WorkspaceRepository
	UserRepository      repository.UserRepository
	DB                  *gorm.DB
	Log                 *logger.AppLogger
}

func NewWorkspaceUsecase(workspaceRepository repository.WorkspaceRepository, userRepository repository.UserRepository, DB *gorm.DB, log *logger.AppLogger) WorkspaceUsecase {
	return &WorkspaceUsecaseImpl{WorkspaceRepository: workspaceRepository, UserRepository: userRepository, DB: DB, Log: log}
}

func (uc *WorkspaceUsecaseImpl) FindByName(ctx context.Context, name string) (*entity.Workspace, error) {
	return uc.WorkspaceRepository.FindByName(ctx, uc.DB, name)
}

func (uc *WorkspaceUsecaseImpl) FindByID(ctx context.Context, id int64) (*entity.Workspace, error) {
	return uc.WorkspaceRepository.FindByID(ctx, uc.DB, id)
}

func (uc *WorkspaceUsecaseImpl) Create(ctx context.Context, name string, ownerID int64) (*entity.Workspace, error) {
	workspace := &entity.Workspace{Name: name, OwnerID: ownerID}
	if err := uc.WorkspaceRepository.Save(ctx, uc.DB, workspace); err != nil {
		uc.Log.Http.Error.Error().Err(err).Str("workspace", name).Msg("Failed to create workspace")
		return nil, err
	}
	uc.Log.Http.Info.Info().Int64("workspaceId", workspace.ID).Str("workspace", name).Msg("Workspace created")
	return workspace, nil
}

// UpdateOwner only assigns users that already belong to the workspace; the
// check runs inside the UPDATE so it cannot race with the user moving.
func (uc *WorkspaceUsecaseImpl) UpdateOwner(ctx context.Context, workspace *entity.Workspace, ownerID int64) (*entity.Workspace, error) {
	rows, err := uc.WorkspaceRepository.UpdateOwner(ctx, uc.DB, workspace.ID, ownerID)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Int64("workspaceId", workspace.ID).Msg("Failed to update workspace owner")
		return nil, err
	}
	if rows == 0 {
		uc.Log.Auth.Warning.Warn().
			Int64("workspaceId", workspace.ID).
			Int64("ownerId", ownerID).
			Msg("Owner is not a member of the workspace")
		return nil, apperror.ErrOwnershipAssignmentFailed
	}

	updated := *workspace
	updated.OwnerID = ownerID
	return &updated, nil
}

func (uc *WorkspaceUsecaseImpl) ListUsers(ctx context.Context, workspaceID int64) ([]entity.Identity, error) {
	users, err := uc.UserRepository.FindAllByWorkspace(ctx, uc.DB, workspaceID)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Int64("workspaceId", workspaceID).Msg("Failed to list workspace users")
		return nil, err
	}

	identities := make([]entity.Identity, 0, len(users))
	for i := range users {
		identities = append(identities, users[i].Identity())
	}
	return identities, nil
}
