//go:generate go run go.uber.org/mock/mockgen -source=workspace_usecase.go -destination=../mocks/mock_workspace_usecase.go -package=mocks
package usecase

import (
	"context"

	"workspace-chat-app/entity"
)

// WorkspaceUsecase is the workspace registry. Finders return nil when the
// workspace does not exist.
type WorkspaceUsecase interface {
	FindByName(ctx context.Context, name string) (*entity.Workspace, error)
	FindByID(ctx context.Context, id int64) (*entity.Workspace, error)
	Create(ctx context.Context, name string, ownerID int64) (*entity.Workspace, error)
	UpdateOwner(ctx context.Context, workspace *entity.Workspace, ownerID int64) (*entity.Workspace, error)
	ListUsers(ctx context.Context, workspaceID int64) ([]entity.Identity, error)
}
