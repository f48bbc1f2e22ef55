package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository holds the CRUD helpers every table shares. The *gorm.DB is
// passed per call so the same repository works inside and outside a
// transaction.
type Repository[T any] struct{}

func (repo Repository[T]) Save(ctx context.Context, db *gorm.DB, entity *T) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error
}

// FindById returns nil without an error when no row has the id.
func (repo Repository[T]) FindById(ctx context.Context, db *gorm.DB, id int64) (*T, error) {
	entity := new(T)
	err := db.WithContext(ctx).Where("id = ?", id).Take(entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}
