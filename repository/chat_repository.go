package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workspace-chat-app/entity"
)

type ChatRepositoryImpl struct {
	Repository[entity.Chat]
}

func NewChatRepository() ChatRepository {
	return &ChatRepositoryImpl{}
}

func orderedMembers(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (repository *ChatRepositoryImpl) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Chat, error) {
	var chat entity.Chat
	err := db.WithContext(ctx).
		Preload("Members", orderedMembers).
		Where("id = ?", id).
		Take(&chat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (repository *ChatRepositoryImpl) FindAllByWorkspace(ctx context.Context, db *gorm.DB, workspaceID int64) ([]entity.Chat, error) {
	var chats []entity.Chat
	err := db.WithContext(ctx).
		Preload("Members", orderedMembers).
		Where("workspace_id = ?", workspaceID).
		Order("id ASC").
		Find(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}

// CreateWithMembers inserts the chat row and then its members. Callers wrap
// it in a transaction.
func (repository *ChatRepositoryImpl) CreateWithMembers(ctx context.Context, db *gorm.DB, chat *entity.Chat) error {
	if err := db.WithContext(ctx).Omit("Members").Create(chat).Error; err != nil {
		return err
	}
	return insertMembers(ctx, db, chat)
}

// UpdateWithMembers rewrites name and type and replaces the member list.
// Zero rows means the chat is gone.
func (repository *ChatRepositoryImpl) UpdateWithMembers(ctx context.Context, db *gorm.DB, chat *entity.Chat) (int64, error) {
	result := db.WithContext(ctx).
		Model(&entity.Chat{}).
		Where("id = ?", chat.ID).
		Updates(map[string]interface{}{
			"name": chat.Name,
			"type": string(chat.Type),
		})
	if result.Error != nil || result.RowsAffected == 0 {
		return result.RowsAffected, result.Error
	}

	err := db.WithContext(ctx).
		Where("chat_id = ?", chat.ID).
		Delete(&entity.ChatMember{}).Error
	if err != nil {
		return 0, err
	}
	if err := insertMembers(ctx, db, chat); err != nil {
		return 0, err
	}
	return result.RowsAffected, nil
}

func (repository *ChatRepositoryImpl) DeleteByID(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Chat{})
	return result.RowsAffected, result.Error
}

func insertMembers(ctx context.Context, db *gorm.DB, chat *entity.Chat) error {
	for i := range chat.Members {
		chat.Members[i].ChatID = chat.ID
	}
	if len(chat.Members) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&chat.Members).Error
}
