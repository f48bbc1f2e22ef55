package repository

import (
	"context"

	"gorm.io/gorm"
)

type GormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// WithTx commits when fn returns nil and rolls back otherwise.
func (t *GormTransactor) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.db.WithContext(ctx).Transaction(fn)
}
