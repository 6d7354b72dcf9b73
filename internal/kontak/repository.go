package kontak

import (
	"context"

	"gorm.io/gorm"

	"godesa/internal/dbmysql"
)

type Repository interface {
	ListActive(ctx context.Context) ([]dbmysql.KontakDesa, error)
	// GetByJenis returns gorm.ErrRecordNotFound when no row exists for the kind.
	GetByJenis(ctx context.Context, jenis string) (*dbmysql.KontakDesa, error)
	Insert(ctx context.Context, kontak *dbmysql.KontakDesa) error
	Update(ctx context.Context, kontak *dbmysql.KontakDesa) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListActive(ctx context.Context) ([]dbmysql.KontakDesa, error) {
	var rows []dbmysql.KontakDesa
	err := r.db.WithContext(ctx).Where("aktif = ?", true).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) GetByJenis(ctx context.Context, jenis string) (*dbmysql.KontakDesa, error) {
	var row dbmysql.KontakDesa
	err := r.db.WithContext(ctx).Where("jenis_kontak = ?", jenis).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) Insert(ctx context.Context, kontak *dbmysql.KontakDesa) error {
	return r.db.WithContext(ctx).Create(kontak).Error
}

func (r *repository) Update(ctx context.Context, kontak *dbmysql.KontakDesa) error {
	return r.db.WithContext(ctx).Save(kontak).Error
}
