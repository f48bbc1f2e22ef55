//go:generate go run go.uber.org/mock/mockgen -source=chat_usecase.go -destination=../mocks/mock_chat_usecase.go -package=mocks
package usecase

import (
	"context"

	"workspace-chat-app/dto/req"
	"workspace-chat-app/entity"
)

// ChatUsecase owns chat membership rules. It does not authorize; handlers
// check the acting user with the security policy first.
type ChatUsecase interface {
	Create(ctx context.Context, request *req.ChatRequest, workspaceID int64) (*entity.Chat, error)
	Update(ctx context.Context, id int64, request *req.ChatRequest) (*entity.Chat, error)
	GetByID(ctx context.Context, id int64) (*entity.Chat, error)
	List(ctx context.Context, workspaceID int64) ([]entity.Chat, error)
	Delete(ctx context.Context, id int64) error
}
