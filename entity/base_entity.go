package entity

import (
	"time"
)

type BaseEntity struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
