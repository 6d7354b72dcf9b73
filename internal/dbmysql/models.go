package dbmysql

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Content tables mirror the village site schema. IDs are UUID strings
// assigned in BeforeCreate, dates (`tanggal`) are stored as DATE columns
// in "2006-01-02" form.

type Berita struct {
	ID        string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Judul     string    `gorm:"size:255;not null;column:judul" json:"judul"`
	Isi       *string   `gorm:"type:text;column:isi" json:"isi"`
	Tanggal   string    `gorm:"type:date;not null;column:tanggal" json:"tanggal"`
	GambarURL *string   `gorm:"size:500;column:gambar_url" json:"gambar_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Berita) TableName() string { return "berita" }

func (b *Berita) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

type GaleriDesa struct {
	ID        string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Judul     string    `gorm:"size:255;not null;column:judul" json:"judul"`
	Deskripsi *string   `gorm:"type:text;column:deskripsi" json:"deskripsi"`
	Kategori  string    `gorm:"size:50;not null;column:kategori" json:"kategori"`
	Tanggal   string    `gorm:"type:date;not null;column:tanggal" json:"tanggal"`
	GambarURL *string   `gorm:"size:500;column:gambar_url" json:"gambar_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (GaleriDesa) TableName() string { return "galeri_desa" }

func (g *GaleriDesa) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

type LembagaDesa struct {
	ID          string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	NamaLembaga string    `gorm:"size:255;not null;column:nama_lembaga" json:"nama_lembaga"`
	Deskripsi   *string   `gorm:"type:text;column:deskripsi" json:"deskripsi"`
	FotoURL     *string   `gorm:"size:500;column:foto_url" json:"foto_url"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (LembagaDesa) TableName() string { return "lembaga_desa" }

func (l *LembagaDesa) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

type AparaturDesa struct {
	ID        string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Nama      string    `gorm:"size:255;not null;column:nama" json:"nama"`
	Jabatan   string    `gorm:"size:255;not null;column:jabatan" json:"jabatan"`
	FotoURL   *string   `gorm:"size:500;column:foto_url" json:"foto_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AparaturDesa) TableName() string { return "aparatur_desa" }

func (a *AparaturDesa) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type ProfilDesa struct {
	ID        string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Judul     string    `gorm:"size:255;not null;column:judul" json:"judul"`
	Isi       *string   `gorm:"type:text;column:isi" json:"isi"`
	Kategori  string    `gorm:"size:50;not null;column:kategori" json:"kategori"`
	GambarURL *string   `gorm:"size:500;column:gambar_url" json:"gambar_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ProfilDesa) TableName() string { return "profil_desa" }

func (p *ProfilDesa) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type DataStatistik struct {
	ID        string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Judul     string    `gorm:"size:255;not null;column:judul" json:"judul"`
	Deskripsi *string   `gorm:"type:text;column:deskripsi" json:"deskripsi"`
	Kategori  string    `gorm:"size:50;not null;column:kategori" json:"kategori"`
	Tahun     int       `gorm:"not null;column:tahun" json:"tahun"`
	Tanggal   string    `gorm:"type:date;not null;column:tanggal" json:"tanggal"`
	GambarURL *string   `gorm:"size:500;column:gambar_url" json:"gambar_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DataStatistik) TableName() string { return "data_statistik" }

func (d *DataStatistik) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

type TransparansiAnggaran struct {
	ID        string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Judul     string    `gorm:"size:255;not null;column:judul" json:"judul"`
	Deskripsi *string   `gorm:"type:text;column:deskripsi" json:"deskripsi"`
	Kategori  string    `gorm:"size:50;not null;column:kategori" json:"kategori"`
	Tahun     int       `gorm:"not null;column:tahun" json:"tahun"`
	GambarURL *string   `gorm:"size:500;column:gambar_url" json:"gambar_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TransparansiAnggaran) TableName() string { return "transparansi_anggaran" }

func (t *TransparansiAnggaran) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type PetaDesa struct {
	ID             string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Judul          string    `gorm:"size:255;not null;column:judul" json:"judul"`
	Deskripsi      *string   `gorm:"type:text;column:deskripsi" json:"deskripsi"`
	GambarURL      *string   `gorm:"size:500;column:gambar_url" json:"gambar_url"`
	GambarFilename *string   `gorm:"size:255;column:gambar_filename" json:"gambar_filename"`
	KoordinatLat   *float64  `gorm:"column:koordinat_lat" json:"koordinat_lat"`
	KoordinatLng   *float64  `gorm:"column:koordinat_lng" json:"koordinat_lng"`
	ZoomLevel      *int      `gorm:"column:zoom_level" json:"zoom_level"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PetaDesa) TableName() string { return "peta_desa" }

func (p *PetaDesa) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type ProdukHukum struct {
	ID            string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Judul         string    `gorm:"size:255;not null;column:judul" json:"judul"`
	Deskripsi     *string   `gorm:"type:text;column:deskripsi" json:"deskripsi"`
	Kategori      string    `gorm:"size:50;not null;default:surat_keputusan;column:kategori" json:"kategori"`
	FileURL       string    `gorm:"size:500;not null;column:file_url" json:"file_url"`
	FileName      string    `gorm:"size:255;column:file_name" json:"file_name"`
	FileSize      *int64    `gorm:"column:file_size" json:"file_size"`
	TanggalUpload time.Time `gorm:"column:tanggal_upload;autoCreateTime" json:"tanggal_upload"`
}

func (ProdukHukum) TableName() string { return "produk_hukum" }

func (p *ProdukHukum) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type PengaduanMasyarakat struct {
	ID           string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	NamaPengirim string    `gorm:"size:255;not null;column:nama_pengirim" json:"nama_pengirim"`
	IsiPengaduan string    `gorm:"type:text;not null;column:isi_pengaduan" json:"isi_pengaduan"`
	Status       string    `gorm:"type:enum('baru','diproses','selesai');default:'baru';column:status" json:"status"`
	Tanggal      string    `gorm:"type:date;not null;column:tanggal" json:"tanggal"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PengaduanMasyarakat) TableName() string { return "pengaduan_masyarakat" }

func (p *PengaduanMasyarakat) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type SaranMasyarakat struct {
	ID           string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	NamaPengirim string    `gorm:"size:255;not null;column:nama_pengirim" json:"nama_pengirim"`
	Saran        string    `gorm:"type:text;not null;column:saran" json:"saran"`
	Tanggal      string    `gorm:"type:date;not null;column:tanggal" json:"tanggal"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SaranMasyarakat) TableName() string { return "saran_masyarakat" }

func (s *SaranMasyarakat) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type KontakDesa struct {
	ID          string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	JenisKontak string    `gorm:"type:enum('whatsapp','telepon','email','alamat');uniqueIndex;not null;column:jenis_kontak" json:"jenis_kontak"`
	Label       string    `gorm:"size:255;not null;column:label" json:"label"`
	Nilai       string    `gorm:"type:text;not null;column:nilai" json:"nilai"`
	Aktif       bool      `gorm:"default:true;column:aktif" json:"aktif"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (KontakDesa) TableName() string { return "kontak_desa" }

func (k *KontakDesa) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return nil
}
