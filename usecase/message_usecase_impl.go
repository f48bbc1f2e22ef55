package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"workspace-chat-app/apperror"
	"workspace-chat-app/config/logger"
	"workspace-chat-app/dto/req"
	"workspace-chat-app/entity"
	"workspace-chat-app/repository"
	"workspace-chat-app/security"
)

type MessageUsecaseImpl struct {
	MessageRepository repository.MessageRepository
	ChatUsecase       ChatUsecase
	*validator.Validate
	DB  *gorm.DB
	Log *logger.AppLogger
}

func NewMessageUsecase(messageRepository repository.MessageRepository, chatUsecase ChatUsecase, validate *validator.Validate, DB *gorm.DB, log *logger.AppLogger) MessageUsecase {
	return &MessageUsecaseImpl{
		MessageRepository: messageRepository,
		ChatUsecase:       chatUsecase,
		Validate:          validate,
		DB:                DB,
		Log:               log,
	}
}

func (uc *MessageUsecaseImpl) Send(ctx context.Context, actor entity.Identity, chatID int64, request *req.MessageRequest) (*entity.Message, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, apperror.Wrap(apperror.ErrInvalidRequest, err)
	}

	chat, err := uc.ChatUsecase.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if err := security.CanPostMessage(actor, chat); err != nil {
		return nil, err
	}

	message := &entity.Message{
		ChatID:   chat.ID,
		SenderID: actor.ID,
		Content:  request.Content,
	}
	if err := uc.MessageRepository.Save(ctx, uc.DB, message); err != nil {
		uc.Log.Http.Error.Error().Err(err).Int64("chatId", chatID).Msg("Failed to save message")
		return nil, err
	}

	uc.Log.Http.Trace.Trace().
		Int64("chatId", chatID).
		Int64("messageId", message.ID).
		Int64("senderId", actor.ID).
		Msg("Message sent")
	return message, nil
}

// List returns a page of messages, newest first.
func (uc *MessageUsecaseImpl) List(ctx context.Context, actor entity.Identity, chatID int64, query *req.ListMessagesQuery) ([]entity.Message, error) {
	if err := uc.Validate.Struct(query); err != nil {
		return nil, apperror.Wrap(apperror.ErrInvalidRequest, err)
	}

	chat, err := uc.ChatUsecase.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if err := security.CanReadMessages(actor, chat); err != nil {
		return nil, err
	}

	messages, err := uc.MessageRepository.FindAllByChat(ctx, uc.DB, chat.ID, query.LastID, query.PageSize())
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Int64("chatId", chatID).Msg("Failed to list messages")
		return nil, err
	}
	return messages, nil
}
