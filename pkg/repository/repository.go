package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository is a thin generic store for simple CRUD paths. Services with
// non-trivial queries go through gorm directly.
type Repository[T any] interface {
	Create(ctx context.Context, record *T) error
	First(ctx context.Context, conds ...any) (*T, error)
	Find(ctx context.Context, conds ...any) ([]T, error)
	Updates(ctx context.Context, record *T, values map[string]any) error
}

type store[T any] struct {
	db *gorm.DB
}

// ProvideStore builds a Repository bound to the given connection.
func ProvideStore[T any](db *gorm.DB) Repository[T] {
	return &store[T]{db: db}
}

func (s *store[T]) Create(ctx context.Context, record *T) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *store[T]) First(ctx context.Context, conds ...any) (*T, error) {
	var record T
	err := s.db.WithContext(ctx).First(&record, conds...).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *store[T]) Find(ctx context.Context, conds ...any) ([]T, error) {
	var records []T
	err := s.db.WithContext(ctx).Find(&records, conds...).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *store[T]) Updates(ctx context.Context, record *T, values map[string]any) error {
	return s.db.WithContext(ctx).Model(record).Updates(values).Error
}
