//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"godesa/internal/auth"
	"godesa/internal/kontak"
)

// Declarations only — wire generates the real bodies in wire_gen.go.

func InitAuthService(db *gorm.DB, log *zap.Logger) auth.Service {
	wire.Build(
		auth.NewUserRepository,
		auth.NewRoleRepository,
		auth.NewService,
	)
	return nil
}

func InitKontakService(db *gorm.DB, log *zap.Logger) *kontak.Service {
	wire.Build(
		kontak.NewRepository,
		kontak.NewService,
	)
	return nil
}
