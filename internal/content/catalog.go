package content

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"godesa/internal/dbmysql"
)

// Closed category sets, agreed with the database schema.
var (
	GaleriKategori    = []string{"Alam", "Sosial", "Pembangunan", "Budaya", "Ekonomi", "Dokumentasi", "Lembaga", "Anggaran"}
	ProfilKategori    = []string{"sejarah", "visi_misi", "letak_geografis", "demografi", "struktur"}
	StatistikKategori = []string{"Penduduk", "Pendidikan", "Kemiskinan", "Bantuan Sosial"}
	AnggaranKategori  = []string{"APBDesa", "Dana_Desa"}
	PengaduanStatus   = []string{"baru", "diproses", "selesai"}
)

func inSet(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s wajib diisi", ErrValidation, name)
	}
	return nil
}

func requireKategori(set []string, value string) error {
	if !inSet(set, value) {
		return fmt.Errorf("%w: kategori tidak dikenal: %q", ErrValidation, value)
	}
	return nil
}

// Per-category controllers. The storage argument is the bucket the category
// uploads to: galeridesa for images, produk-hukum for legal documents,
// peta-desa for the village map.

func NewBeritaController(db *gorm.DB, storage ObjectStorage, log *zap.Logger) *Controller[dbmysql.Berita] {
	desc := Descriptor[dbmysql.Berita]{
		Name:       "berita",
		Folder:     "berita",
		FilePrefix: "berita",
		Validate: func(b *dbmysql.Berita) error {
			return requireField("judul", b.Judul)
		},
		ObjectURL:    func(b *dbmysql.Berita) string { return deref(b.GambarURL) },
		SetObjectURL: func(b *dbmysql.Berita, url string) { b.GambarURL = ref(url) },
	}
	return NewController(desc, NewStore[dbmysql.Berita](db, "tanggal desc"), storage, log)
}

func NewGaleriController(db *gorm.DB, storage ObjectStorage, log *zap.Logger) *Controller[dbmysql.GaleriDesa] {
	desc := Descriptor[dbmysql.GaleriDesa]{
		Name:        "galeri",
		Folder:      "galeri",
		FilePrefix:  "galeri",
		RequireFile: true,
		Validate: func(g *dbmysql.GaleriDesa) error {
			if err := requireField("judul", g.Judul); err != nil {
				return err
			}
			return requireKategori(GaleriKategori, g.Kategori)
		},
		ObjectURL:    func(g *dbmysql.GaleriDesa) string { return deref(g.GambarURL) },
		SetObjectURL: func(g *dbmysql.GaleriDesa, url string) { g.GambarURL = ref(url) },
	}
	return NewController(desc, NewStore[dbmysql.GaleriDesa](db, "tanggal desc"), storage, log)
}

func NewLembagaController(db *gorm.DB, storage ObjectStorage, log *zap.Logger) *Controller[dbmysql.LembagaDesa] {
	desc := Descriptor[dbmysql.LembagaDesa]{
		Name:       "lembaga",
		Folder:     "lembaga",
		FilePrefix: "lembaga",
		Validate: func(l *dbmysql.LembagaDesa) error {
			return requireField("nama lembaga", l.NamaLembaga)
		},
		ObjectURL:    func(l *dbmysql.LembagaDesa) string { return deref(l.FotoURL) },
		SetObjectURL: func(l *dbmysql.LembagaDesa, url string) { l.FotoURL = ref(url) },
	}
	return NewController(desc, NewStore[dbmysql.LembagaDesa](db, "created_at desc"), storage, log)
}

func NewAparaturController(db *gorm.DB, storage ObjectStorage, log *zap.Logger) *Controller[dbmysql.AparaturDesa] {
	desc := Descriptor[dbmysql.AparaturDesa]{
		Name:       "aparatur",
		Folder:     "aparatur",
		FilePrefix: "aparatur",
		Validate: func(a *dbmysql.AparaturDesa) error {
			if err := requireField("nama", a.Nama); err != nil {
				return err
			}
			return requireField("jabatan", a.Jabatan)
		},
		ObjectURL:    func(a *dbmysql.AparaturDesa) string { return deref(a.FotoURL) },
		SetObjectURL: func(a *dbmysql.AparaturDesa, url string) { a.FotoURL = ref(url) },
	}
	return NewController(desc, NewStore[dbmysql.AparaturDesa](db, "created_at desc"), storage, log)
}

func NewProfilController(db *gorm.DB, storage ObjectStorage, log *zap.Logger) *Controller[dbmysql.ProfilDesa] {
	desc := Descriptor[dbmysql.ProfilDesa]{
		Name:       "profil",
		Folder:     "profil",
		FilePrefix: "profil",
		Validate: func(p *dbmysql.ProfilDesa) error {
			if err := requireField("judul", p.Judul); err != nil {
				return err
			}
			return requireKategori(ProfilKategori, p.Kategori)
		},
		ObjectURL:    func(p *dbmysql.ProfilDesa) string { return deref(p.GambarURL) },
		SetObjectURL: func(p *dbmysql.ProfilDesa, url string) { p.GambarURL = ref(url) },
	}
	return NewController(desc, NewStore[dbmysql.ProfilDesa](db, "created_at desc"), storage, log)
}

func NewStatistikController(db *gorm.DB, storage ObjectStorage, log *zap.Logger) *Controller[dbmysql.DataStatistik] {
	desc := Descriptor[dbmysql.DataStatistik]{
		Name:       "statistik",
		Folder:     "statistik",
		FilePrefix: "statistik",
		Validate: func(d *dbmysql.DataStatistik) error {
			if err := requireField("judul", d.Judul); err != nil {
				return err
			}
			if err := requireKategori(StatistikKategori, d.Kategori); err != nil {
				return err
			}
			if d.Tahun <= 0 {
				return fmt.Errorf("%w: tahun wajib diisi", ErrValidation)
			}
			return nil
		},
		ObjectURL:    func(d *dbmysql.DataStatistik) string { return deref(d.GambarURL) },
		SetObjectURL: func(d *dbmysql.DataStatistik, url string) { d.GambarURL = ref(url) },
	}
	return NewController(desc, NewStore[dbmysql.DataStatistik](db, "tahun desc"), storage, log)
}

func NewAnggaranController(db *gorm.DB, storage ObjectStorage, log *zap.Logger) *Controller[dbmysql.TransparansiAnggaran] {
	desc := Descriptor[dbmysql.TransparansiAnggaran]{
		Name:       "anggaran",
		Folder:     "anggaran",
		FilePrefix: "anggaran",
		Validate: func(a *dbmysql.TransparansiAnggaran) error {
			if err := requireField("judul", a.Judul); err != nil {
				return err
			}
			if err := requireKategori(AnggaranKategori, a.Kategori); err != nil {
				return err
			}
			if a.Tahun <= 0 {
				return fmt.Errorf("%w: tahun wajib diisi", ErrValidation)
			}
			return nil
		},
		ObjectURL:    func(a *dbmysql.TransparansiAnggaran) string { return deref(a.GambarURL) },
		SetObjectURL: func(a *dbmysql.TransparansiAnggaran, url string) { a.GambarURL = ref(url) },
	}
	return NewController(desc, NewStore[dbmysql.TransparansiAnggaran](db, "tahun desc"), storage, log)
}

func petaDescriptor() Descriptor[dbmysql.PetaDesa] {
	return Descriptor[dbmysql.PetaDesa]{
		Name:       "peta",
		Folder:     "peta",
		FilePrefix: "peta",
		Validate: func(p *dbmysql.PetaDesa) error {
			return requireField("judul", p.Judul)
		},
		ObjectURL:    func(p *dbmysql.PetaDesa) string { return deref(p.GambarURL) },
		SetObjectURL: func(p *dbmysql.PetaDesa, url string) { p.GambarURL = ref(url) },
		// the map row also stores the original filename next to the URL;
		// a whole-row replace without a new file must keep both
		CarryMedia: func(p, existing *dbmysql.PetaDesa) {
			p.GambarURL = existing.GambarURL
			p.GambarFilename = existing.GambarFilename
		},
	}
}

func NewPetaController(db *gorm.DB, storage ObjectStorage, log *zap.Logger) *Controller[dbmysql.PetaDesa] {
	return NewController(petaDescriptor(), NewStore[dbmysql.PetaDesa](db, "created_at desc"), storage, log)
}

func NewProdukHukumController(db *gorm.DB, storage ObjectStorage, log *zap.Logger) *Controller[dbmysql.ProdukHukum] {
	desc := Descriptor[dbmysql.ProdukHukum]{
		Name:        "produk_hukum",
		Folder:      "surat_keputusan",
		FilePrefix:  "sk",
		RequireFile: true,
		Validate: func(p *dbmysql.ProdukHukum) error {
			return requireField("judul", p.Judul)
		},
		ObjectURL:    func(p *dbmysql.ProdukHukum) string { return p.FileURL },
		SetObjectURL: func(p *dbmysql.ProdukHukum, url string) { p.FileURL = url },
	}
	return NewController(desc, NewStore[dbmysql.ProdukHukum](db, "tanggal_upload desc"), storage, log)
}

func NewPengaduanController(db *gorm.DB, log *zap.Logger) *Controller[dbmysql.PengaduanMasyarakat] {
	desc := Descriptor[dbmysql.PengaduanMasyarakat]{
		Name: "pengaduan",
		Validate: func(p *dbmysql.PengaduanMasyarakat) error {
			if err := requireField("nama pengirim", p.NamaPengirim); err != nil {
				return err
			}
			if err := requireField("isi pengaduan", p.IsiPengaduan); err != nil {
				return err
			}
			if p.Status != "" && !inSet(PengaduanStatus, p.Status) {
				return fmt.Errorf("%w: status tidak dikenal: %q", ErrValidation, p.Status)
			}
			return nil
		},
	}
	return NewController(desc, NewStore[dbmysql.PengaduanMasyarakat](db, "tanggal desc"), nil, log)
}

func NewSaranController(db *gorm.DB, log *zap.Logger) *Controller[dbmysql.SaranMasyarakat] {
	desc := Descriptor[dbmysql.SaranMasyarakat]{
		Name: "saran",
		Validate: func(s *dbmysql.SaranMasyarakat) error {
			if err := requireField("nama pengirim", s.NamaPengirim); err != nil {
				return err
			}
			return requireField("saran", s.Saran)
		},
	}
	return NewController(desc, NewStore[dbmysql.SaranMasyarakat](db, "tanggal desc"), nil, log)
}

func ref(s string) *string { return &s }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
