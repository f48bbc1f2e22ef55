package entity

import "workspace-chat-app/enum"

type Chat struct {
	BaseEntity
	WorkspaceID int64         `json:"workspaceId" gorm:"not null;index"`
	Name        *string       `json:"name" gorm:"type:varchar(64)"`
	Type        enum.ChatType `json:"type" gorm:"type:varchar(16);not null"`

	Members []ChatMember `json:"-" gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE;"`
}

// ChatMember keeps a chat's member list in the order it was submitted.
type ChatMember struct {
	ChatID   int64 `gorm:"primaryKey;autoIncrement:false"`
	UserID   int64 `gorm:"primaryKey;autoIncrement:false;index"`
	Position int   `gorm:"not null"`
}

func (c *Chat) MemberIDs() []int64 {
	ids := make([]int64, len(c.Members))
	for i, member := range c.Members {
		ids[i] = member.UserID
	}
	return ids
}

func (c *Chat) HasMember(userID int64) bool {
	for _, member := range c.Members {
		if member.UserID == userID {
			return true
		}
	}
	return false
}

func NewChatMembers(userIDs []int64) []ChatMember {
	members := make([]ChatMember, len(userIDs))
	for i, id := range userIDs {
		members[i] = ChatMember{UserID: id, Position: i}
	}
	return members
}
