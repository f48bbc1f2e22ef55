package repository

import (
	"context"

	"gorm.io/gorm"

	"workspace-chat-app/entity"
)

type MessageRepositoryImpl struct {
	Repository[entity.Message]
}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (repository *MessageRepositoryImpl) FindAllByChat(ctx context.Context, db *gorm.DB, chatID, lastID int64, limit int) ([]entity.Message, error) {
	query := db.WithContext(ctx).Where("chat_id = ?", chatID)
	if lastID > 0 {
		query = query.Where("id < ?", lastID)
	}

	var messages []entity.Message
	err := query.
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
