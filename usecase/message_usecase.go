//go:generate go run go.uber.org/mock/mockgen -source=message_usecase.go -destination=../mocks/mock_message_usecase.go -package=mocks
package usecase

import (
	"context"

	"workspace-chat-app/dto/req"
	"workspace-chat-app/entity"
)

type MessageUsecase interface {
	Send(ctx context.Context, actor entity.Identity, chatID int64, request *req.MessageRequest) (*entity.Message, error)
	List(ctx context.Context, actor entity.Identity, chatID int64, query *req.ListMessagesQuery) ([]entity.Message, error)
}
