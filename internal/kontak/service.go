// Package kontak manages the fixed set of village contact entries. Saving
// is an upsert keyed by contact kind rather than free row creation, and no
// delete is exposed.
package kontak

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"godesa/internal/common"
	"godesa/internal/content"
	"godesa/internal/dbmysql"
)

const (
	JenisWhatsapp = "whatsapp"
	JenisTelepon  = "telepon"
	JenisEmail    = "email"
	JenisAlamat   = "alamat"
)

var JenisKontak = []string{JenisWhatsapp, JenisTelepon, JenisEmail, JenisAlamat}

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) List(ctx context.Context) ([]dbmysql.KontakDesa, error) {
	return s.repo.ListActive(ctx)
}

// Save validates and upserts the contact entry for the given kind: the
// existing row is updated in place, otherwise a new row is inserted.
func (s *Service) Save(ctx context.Context, jenis, label, nilai string) (*dbmysql.KontakDesa, error) {
	label = strings.TrimSpace(label)
	nilai = strings.TrimSpace(nilai)

	if err := validate(jenis, label, nilai); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByJenis(ctx, jenis)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Label = label
		existing.Nilai = nilai
		existing.Aktif = true
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	row := &dbmysql.KontakDesa{
		JenisKontak: jenis,
		Label:       label,
		Nilai:       nilai,
		Aktif:       true,
	}
	if err := s.repo.Insert(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func validate(jenis, label, nilai string) error {
	valid := false
	for _, j := range JenisKontak {
		if j == jenis {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: jenis kontak tidak dikenal: %q", content.ErrValidation, jenis)
	}
	if label == "" {
		return fmt.Errorf("%w: label kontak tidak boleh kosong", content.ErrValidation)
	}
	if nilai == "" {
		return fmt.Errorf("%w: nilai kontak tidak boleh kosong", content.ErrValidation)
	}

	switch jenis {
	case JenisWhatsapp, JenisTelepon:
		if err := common.ValidatePhone(nilai); err != nil {
			return fmt.Errorf("%w: %s", content.ErrValidation, err)
		}
	case JenisEmail:
		if err := common.ValidateEmail(nilai); err != nil {
			return fmt.Errorf("%w: %s", content.ErrValidation, err)
		}
	}
	return nil
}
