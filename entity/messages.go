package entity

type Message struct {
	BaseEntity
	ChatID   int64  `json:"chatId" gorm:"not null;index"`
	SenderID int64  `json:"senderId" gorm:"not null"`
	Content  string `json:"content" gorm:"type:TEXT;not null"`

	Chat Chat `json:"-" gorm:"foreignKey:ChatID;references:ID;constraint:OnDelete:CASCADE;"`
}
