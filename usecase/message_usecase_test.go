package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"workspace-chat-app/apperror"
	"workspace-chat-app/config/logger"
	payload "workspace-chat-app/dto/req"
	"workspace-chat-app/entity"
	"workspace-chat-app/enum"
	"workspace-chat-app/mocks"
	"workspace-chat-app/usecase"
)

func newMessageUsecase(t *testing.T) (usecase.MessageUsecase, *mocks.MockMessageRepository, *mocks.MockChatUsecase) {
	ctrl := gomock.NewController(t)
	messages := mocks.NewMockMessageRepository(ctrl)
	chats := mocks.NewMockChatUsecase(ctrl)
	return usecase.NewMessageUsecase(messages, chats, newValidator(), nil, logger.NewNop()), messages, chats
}

func chatWithMembers(chatType enum.ChatType, members ...int64) *entity.Chat {
	return &entity.Chat{
		BaseEntity:  entity.BaseEntity{ID: 3},
		WorkspaceID: 1,
		Type:        chatType,
		Members:     entity.NewChatMembers(members),
	}
}

func TestMessageUsecase_Send(t *testing.T) {
	luffy := entity.Identity{ID: 1, WorkspaceID: 1}

	t.Run("member posts a message", func(t *testing.T) {
		req := require.New(t)
		uc, messages, chats := newMessageUsecase(t)
		chats.EXPECT().GetByID(gomock.Any(), int64(3)).Return(chatWithMembers(enum.ChatTypeSingle, 1, 2), nil)
		messages.EXPECT().Save(gomock.Any(), gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *gorm.DB, message *entity.Message) error {
				message.ID = 11
				return nil
			})

		message, err := uc.Send(context.Background(), luffy, 3, &payload.MessageRequest{Content: "hello"})

		req.NoError(err)
		req.Equal(int64(11), message.ID)
		req.Equal(int64(3), message.ChatID)
		req.Equal(int64(1), message.SenderID)
	})

	t.Run("outsider may not post", func(t *testing.T) {
		req := require.New(t)
		uc, messages, chats := newMessageUsecase(t)
		chats.EXPECT().GetByID(gomock.Any(), int64(3)).Return(chatWithMembers(enum.ChatTypePublicChannel, 2, 3), nil)
		messages.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Send(context.Background(), luffy, 3, &payload.MessageRequest{Content: "hello"})

		req.ErrorIs(err, apperror.ErrNotChatMember)
	})

	t.Run("empty content", func(t *testing.T) {
		req := require.New(t)
		uc, _, _ := newMessageUsecase(t)

		_, err := uc.Send(context.Background(), luffy, 3, &payload.MessageRequest{})

		req.ErrorIs(err, apperror.ErrInvalidRequest)
	})
}

func TestMessageUsecase_List(t *testing.T) {
	nami := entity.Identity{ID: 5, WorkspaceID: 1}

	tests := []struct {
		description string
		query       payload.ListMessagesQuery
		wantLastID  int64
		wantLimit   int
	}{
		{"default page", payload.ListMessagesQuery{}, 0, payload.DefaultMessageLimit},
		{"older page", payload.ListMessagesQuery{LastID: 40, Limit: 20}, 40, 20},
		{"limit is capped", payload.ListMessagesQuery{Limit: 500}, 0, payload.MaxMessageLimit},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			uc, messages, chats := newMessageUsecase(t)
			chats.EXPECT().GetByID(gomock.Any(), int64(3)).Return(chatWithMembers(enum.ChatTypePublicChannel, 1, 2), nil)
			messages.EXPECT().FindAllByChat(gomock.Any(), gomock.Any(), int64(3), tt.wantLastID, tt.wantLimit).
				Return([]entity.Message{{Content: "hi"}}, nil)

			page, err := uc.List(context.Background(), nami, 3, &tt.query)

			req.NoError(err)
			req.Len(page, 1)
		})
	}

	t.Run("private chat is closed to non members", func(t *testing.T) {
		req := require.New(t)
		uc, _, chats := newMessageUsecase(t)
		chats.EXPECT().GetByID(gomock.Any(), int64(3)).Return(chatWithMembers(enum.ChatTypePrivateChannel, 1, 2), nil)

		_, err := uc.List(context.Background(), nami, 3, &payload.ListMessagesQuery{})

		req.ErrorIs(err, apperror.ErrNotChatMember)
	})

	t.Run("chat of another workspace is hidden", func(t *testing.T) {
		req := require.New(t)
		uc, _, chats := newMessageUsecase(t)
		chats.EXPECT().GetByID(gomock.Any(), int64(3)).Return(chatWithMembers(enum.ChatTypePublicChannel, 1, 2), nil)

		_, err := uc.List(context.Background(), entity.Identity{ID: 9, WorkspaceID: 2}, 3, &payload.ListMessagesQuery{})

		req.ErrorIs(err, apperror.ErrNotFound)
	})
}
