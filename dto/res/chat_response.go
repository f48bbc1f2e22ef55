package res

import (
	"time"

	"workspace-chat-app/entity"
	"workspace-chat-app/enum"
)

type ChatResponse struct {
	ID          int64         `json:"id"`
	WorkspaceID int64         `json:"wsId"`
	Name        *string       `json:"name"`
	Type        enum.ChatType `json:"type"`
	Members     []int64       `json:"members"`
	CreatedAt   time.Time     `json:"createdAt"`
}

func NewChatResponse(chat *entity.Chat) ChatResponse {
	return ChatResponse{
		ID:          chat.ID,
		WorkspaceID: chat.WorkspaceID,
		Name:        chat.Name,
		Type:        chat.Type,
		Members:     chat.MemberIDs(),
		CreatedAt:   chat.CreatedAt,
	}
}

func NewChatResponses(chats []entity.Chat) []ChatResponse {
	responses := make([]ChatResponse, 0, len(chats))
	for i := range chats {
		responses = append(responses, NewChatResponse(&chats[i]))
	}
	return responses
}
