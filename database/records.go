package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound reports that the referenced id does not exist.
var ErrNotFound = errors.New("record not found")

// NotFound maps gorm's missing-row error onto ErrNotFound and passes every
// other error through.
func NotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func Get[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var rec T
	if err := db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, NotFound(err)
	}
	return &rec, nil
}

// List returns every row ordered by primary key.
func List[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	var recs []T
	if err := db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Delete removes the row with the given id and returns ErrNotFound when
// nothing was deleted.
func Delete[T any](ctx context.Context, db *gorm.DB, id uint) error {
	var rec T
	res := db.WithContext(ctx).Delete(&rec, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
