package content

import (
	"context"

	"gorm.io/gorm"
)

type gormStore[T any] struct {
	db      *gorm.DB
	orderBy string
}

// NewStore returns a gorm-backed Store for the table mapped by T, listing
// rows in orderBy order.
func NewStore[T any](db *gorm.DB, orderBy string) Store[T] {
	return &gormStore[T]{db: db, orderBy: orderBy}
}

func (s *gormStore[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	err := s.db.WithContext(ctx).Order(s.orderBy).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *gormStore[T]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *gormStore[T]) Insert(ctx context.Context, item *T) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *gormStore[T]) Update(ctx context.Context, item *T) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *gormStore[T]) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
