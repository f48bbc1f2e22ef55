//go:generate go run go.uber.org/mock/mockgen -source=user_usecase.go -destination=../mocks/mock_user_usecase.go -package=mocks
package usecase

import (
	"context"

	"workspace-chat-app/entity"
)

type UserUsecase interface {
	GetByID(ctx context.Context, id int64) (entity.Identity, error)
}
