package usecase

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"workspace-chat-app/apperror"
	"workspace-chat-app/config/logger"
	"workspace-chat-app/dto/req"
	"workspace-chat-app/entity"
	"workspace-chat-app/enum"
	"workspace-chat-app/repository"
)

const (
	minChatMembers        = 2
	maxUnnamedChatMembers = 8
)

type ChatUsecaseImpl struct {
	ChatRepository repository.ChatRepository
	UserRepository repository.UserRepository
	*validator.Validate
	DB  *gorm.DB
	Tx  repository.Transactor
	Log *logger.AppLogger
}

func NewChatUsecase(
	chatRepository repository.ChatRepository,
	userRepository repository.UserRepository,
	validate *validator.Validate,
	DB *gorm.DB,
	tx repository.Transactor,
	log *logger.AppLogger,
) ChatUsecase {
	return &ChatUsecaseImpl{
		ChatRepository: chatRepository,
		UserRepository: userRepository,
		Validate:       validate,
		DB:             DB,
		Tx:             tx,
		Log:            log,
	}
}

func (uc *ChatUsecaseImpl) Create(ctx context.Context, request *req.ChatRequest, workspaceID int64) (*entity.Chat, error) {
	if err := uc.validateChat(ctx, request, workspaceID); err != nil {
		return nil, err
	}

	chat := &entity.Chat{
		WorkspaceID: workspaceID,
		Name:        normalizeName(request.Name),
		Type:        enum.ResolveChatType(request.Name, len(request.Members), request.Public),
		Members:     entity.NewChatMembers(request.Members),
	}
	err := uc.Tx.WithTx(ctx, func(tx *gorm.DB) error {
		return uc.ChatRepository.CreateWithMembers(ctx, tx, chat)
	})
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Int64("workspaceId", workspaceID).Msg("Failed to create chat")
		return nil, err
	}

	uc.Log.Http.Info.Info().
		Int64("chatId", chat.ID).
		Str("type", string(chat.Type)).
		Int("members", len(chat.Members)).
		Msg("Chat created")
	return chat, nil
}

// Update replaces name, members and the public flag and derives the type
// again. The workspace never changes.
func (uc *ChatUsecaseImpl) Update(ctx context.Context, id int64, request *req.ChatRequest) (*entity.Chat, error) {
	current, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.validateChat(ctx, request, current.WorkspaceID); err != nil {
		return nil, err
	}

	chat := &entity.Chat{
		BaseEntity:  current.BaseEntity,
		WorkspaceID: current.WorkspaceID,
		Name:        normalizeName(request.Name),
		Type:        enum.ResolveChatType(request.Name, len(request.Members), request.Public),
		Members:     entity.NewChatMembers(request.Members),
	}
	err = uc.Tx.WithTx(ctx, func(tx *gorm.DB) error {
		rows, err := uc.ChatRepository.UpdateWithMembers(ctx, tx, chat)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperror.ErrNotFound
		}
		return nil
	})
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Int64("chatId", id).Msg("Failed to update chat")
		return nil, err
	}

	uc.Log.Http.Info.Info().Int64("chatId", id).Str("type", string(chat.Type)).Msg("Chat updated")
	return chat, nil
}

func (uc *ChatUsecaseImpl) GetByID(ctx context.Context, id int64) (*entity.Chat, error) {
	chat, err := uc.ChatRepository.FindByID(ctx, uc.DB, id)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Int64("chatId", id).Msg("Failed to find chat")
		return nil, err
	}
	if chat == nil {
		return nil, apperror.ErrNotFound
	}
	return chat, nil
}

func (uc *ChatUsecaseImpl) List(ctx context.Context, workspaceID int64) ([]entity.Chat, error) {
	chats, err := uc.ChatRepository.FindAllByWorkspace(ctx, uc.DB, workspaceID)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Int64("workspaceId", workspaceID).Msg("Failed to list chats")
		return nil, err
	}
	return chats, nil
}

func (uc *ChatUsecaseImpl) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return apperror.Detail(apperror.ErrInvalidArgument, "chat id must not be zero")
	}

	rows, err := uc.ChatRepository.DeleteByID(ctx, uc.DB, id)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Int64("chatId", id).Msg("Failed to delete chat")
		return err
	}
	if rows == 0 {
		return apperror.ErrNotFound
	}

	uc.Log.Http.Info.Info().Int64("chatId", id).Msg("Chat deleted")
	return nil
}

// validateChat applies the membership rules in order; the first failure wins.
func (uc *ChatUsecaseImpl) validateChat(ctx context.Context, request *req.ChatRequest, workspaceID int64) error {
	members := request.Members
	if len(members) < minChatMembers {
		return apperror.Detail(apperror.ErrInvalidMembership, "too few members")
	}
	if len(members) > maxUnnamedChatMembers && !enum.HasName(request.Name) {
		return apperror.Detail(apperror.ErrInvalidMembership, "name required for large group")
	}
	if err := uc.Validate.Struct(request); err != nil {
		return apperror.Wrap(apperror.ErrInvalidRequest, err)
	}

	count, err := uc.UserRepository.CountInWorkspace(ctx, uc.DB, workspaceID, members)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Int64("workspaceId", workspaceID).Msg("Failed to resolve chat members")
		return err
	}
	if count != int64(len(members)) {
		return apperror.Detail(apperror.ErrInvalidMembership, "unknown member")
	}
	return nil
}

func normalizeName(name *string) *string {
	if !enum.HasName(name) {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	return &trimmed
}
