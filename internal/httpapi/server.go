// Package httpapi exposes the content lifecycle over a JSON HTTP surface:
// public list endpoints, admin-gated mutations, citizen submissions and the
// stored media objects themselves.
package httpapi

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"godesa/internal/auth"
	"godesa/internal/content"
	"godesa/internal/dbmongo"
	"godesa/internal/dbmysql"
	"godesa/internal/kontak"
)

type Server struct {
	log     *zap.Logger
	auth    auth.Service
	kontak  *kontak.Service
	storage *dbmongo.Storage

	berita      *content.Controller[dbmysql.Berita]
	galeri      *content.Controller[dbmysql.GaleriDesa]
	lembaga     *content.Controller[dbmysql.LembagaDesa]
	aparatur    *content.Controller[dbmysql.AparaturDesa]
	profil      *content.Controller[dbmysql.ProfilDesa]
	statistik   *content.Controller[dbmysql.DataStatistik]
	anggaran    *content.Controller[dbmysql.TransparansiAnggaran]
	peta        *content.Controller[dbmysql.PetaDesa]
	produkHukum *content.Controller[dbmysql.ProdukHukum]
	pengaduan   *content.Controller[dbmysql.PengaduanMasyarakat]
	saran       *content.Controller[dbmysql.SaranMasyarakat]
}

func NewServer(db *gorm.DB, storage *dbmongo.Storage, authSvc auth.Service, kontakSvc *kontak.Service, log *zap.Logger) *Server {
	return &Server{
		log:     log,
		auth:    authSvc,
		kontak:  kontakSvc,
		storage: storage,

		berita:      content.NewBeritaController(db, storage.Galeri, log),
		galeri:      content.NewGaleriController(db, storage.Galeri, log),
		lembaga:     content.NewLembagaController(db, storage.Galeri, log),
		aparatur:    content.NewAparaturController(db, storage.Galeri, log),
		profil:      content.NewProfilController(db, storage.Galeri, log),
		statistik:   content.NewStatistikController(db, storage.Galeri, log),
		anggaran:    content.NewAnggaranController(db, storage.Galeri, log),
		peta:        content.NewPetaController(db, storage.PetaDesa, log),
		produkHukum: content.NewProdukHukumController(db, storage.ProdukHukum, log),
		pengaduan:   content.NewPengaduanController(db, log),
		saran:       content.NewSaranController(db, log),
	}
}
