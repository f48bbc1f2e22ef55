package res

import (
	"time"

	"workspace-chat-app/entity"
)

type MessageResponse struct {
	ID        int64     `json:"id"`
	ChatID    int64     `json:"chatId"`
	SenderID  int64     `json:"senderId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewMessageResponse(message *entity.Message) MessageResponse {
	return MessageResponse{
		ID:        message.ID,
		ChatID:    message.ChatID,
		SenderID:  message.SenderID,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
}

func NewMessageResponses(messages []entity.Message) []MessageResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, NewMessageResponse(&messages[i]))
	}
	return responses
}
