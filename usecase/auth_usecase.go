//go:generate go run go.uber.org/mock/mockgen -source=auth_usecase.go -destination=../mocks/mock_auth_usecase.go -package=mocks
package usecase

import (
	"context"

	"workspace-chat-app/dto/req"
	"workspace-chat-app/entity"
)

type AuthUsecase interface {
	Signup(ctx context.Context, request *req.SignupRequest) (entity.Identity, string, error)
	Signin(ctx context.Context, request *req.SigninRequest) (string, error)
}
