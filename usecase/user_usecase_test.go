package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"workspace-chat-app/apperror"
	"workspace-chat-app/config/logger"
	"workspace-chat-app/entity"
	"workspace-chat-app/mocks"
	"workspace-chat-app/usecase"
)

func TestUserUsecase_GetByID(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	uc := usecase.NewUserUsecase(users, nil, logger.NewNop())

	users.EXPECT().FindByID(gomock.Any(), gomock.Nil(), int64(7)).Return(&entity.User{
		BaseEntity:   entity.BaseEntity{ID: 7},
		WorkspaceID:  1,
		FullName:     "Luffy",
		Email:        "luffy@acme.org",
		PasswordHash: "$argon2id$secret",
	}, nil)
	users.EXPECT().FindByID(gomock.Any(), gomock.Nil(), int64(8)).Return(nil, nil)

	identity, err := uc.GetByID(context.Background(), 7)
	req.NoError(err)
	req.Equal(entity.Identity{ID: 7, WorkspaceID: 1, FullName: "Luffy", Email: "luffy@acme.org"}, identity)

	_, err = uc.GetByID(context.Background(), 8)
	req.ErrorIs(err, apperror.ErrNotFound)
}
