package httpapi

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"godesa/internal/content"
	"godesa/internal/dbmysql"
)

const maxUploadSize = 10 << 20 // 10MB, matches the original upload limit

func parseForm(r *http.Request) error {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return r.ParseForm()
		}
		return fmt.Errorf("%w: form tidak valid", content.ErrValidation)
	}
	return nil
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

func optionalText(r *http.Request, key string) *string {
	v := formValue(r, key)
	if v == "" {
		return nil
	}
	return &v
}

// formFile returns the uploaded "file" part, nil when the form has none.
func formFile(r *http.Request) (*content.File, *multipart.FileHeader, error) {
	f, hdr, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || r.MultipartForm == nil {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("%w: file tidak valid", content.ErrValidation)
	}
	return &content.File{
		Name:        hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Content:     f,
	}, hdr, nil
}

// tanggalOrToday returns the submitted logical date, defaulting to today.
func tanggalOrToday(r *http.Request) string {
	if v := formValue(r, "tanggal"); v != "" {
		return v
	}
	return time.Now().Format("2006-01-02")
}

func formInt(r *http.Request, key string) (int, error) {
	v := formValue(r, key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s harus berupa angka", content.ErrValidation, key)
	}
	return n, nil
}

func formFloat(r *http.Request, key string) (*float64, error) {
	v := formValue(r, key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s harus berupa angka", content.ErrValidation, key)
	}
	return &f, nil
}

func decodeBerita(r *http.Request) (*dbmysql.Berita, *content.File, error) {
	if err := parseForm(r); err != nil {
		return nil, nil, err
	}
	file, _, err := formFile(r)
	if err != nil {
		return nil, nil, err
	}
	return &dbmysql.Berita{
		Judul:   formValue(r, "judul"),
		Isi:     optionalText(r, "isi"),
		Tanggal: tanggalOrToday(r),
	}, file, nil
}

func decodeGaleri(r *http.Request) (*dbmysql.GaleriDesa, *content.File, error) {
	if err := parseForm(r); err != nil {
		return nil, nil, err
	}
	file, _, err := formFile(r)
	if err != nil {
		return nil, nil, err
	}
	return &dbmysql.GaleriDesa{
		Judul:     formValue(r, "judul"),
		Deskripsi: optionalText(r, "deskripsi"),
		Kategori:  formValue(r, "kategori"),
		Tanggal:   tanggalOrToday(r),
	}, file, nil
}

func decodeLembaga(r *http.Request) (*dbmysql.LembagaDesa, *content.File, error) {
	if err := parseForm(r); err != nil {
		return nil, nil, err
	}
	file, _, err := formFile(r)
	if err != nil {
		return nil, nil, err
	}
	return &dbmysql.LembagaDesa{
		NamaLembaga: formValue(r, "nama_lembaga"),
		Deskripsi:   optionalText(r, "deskripsi"),
	}, file, nil
}

func decodeAparatur(r *http.Request) (*dbmysql.AparaturDesa, *content.File, error) {
	if err := parseForm(r); err != nil {
		return nil, nil, err
	}
	file, _, err := formFile(r)
	if err != nil {
		return nil, nil, err
	}
	return &dbmysql.AparaturDesa{
		Nama:    formValue(r, "nama"),
		Jabatan: formValue(r, "jabatan"),
	}, file, nil
}

func decodeProfil(r *http.Request) (*dbmysql.ProfilDesa, *content.File, error) {
	if err := parseForm(r); err != nil {
		return nil, nil, err
	}
	file, _, err := formFile(r)
	if err != nil {
		return nil, nil, err
	}
	return &dbmysql.ProfilDesa{
		Judul:    formValue(r, "judul"),
		Isi:      optionalText(r, "isi"),
		Kategori: formValue(r, "kategori"),
	}, file, nil
}

func decodeStatistik(r *http.Request) (*dbmysql.DataStatistik, *content.File, error) {
	if err := parseForm(r); err != nil {
		return nil, nil, err
	}
	file, _, err := formFile(r)
	if err != nil {
		return nil, nil, err
	}
	tahun, err := formInt(r, "tahun")
	if err != nil {
		return nil, nil, err
	}
	return &dbmysql.DataStatistik{
		Judul:     formValue(r, "judul"),
		Deskripsi: optionalText(r, "deskripsi"),
		Kategori:  formValue(r, "kategori"),
		Tahun:     tahun,
		Tanggal:   tanggalOrToday(r),
	}, file, nil
}

func decodeAnggaran(r *http.Request) (*dbmysql.TransparansiAnggaran, *content.File, error) {
	if err := parseForm(r); err != nil {
		return nil, nil, err
	}
	file, _, err := formFile(r)
	if err != nil {
		return nil, nil, err
	}
	tahun, err := formInt(r, "tahun")
	if err != nil {
		return nil, nil, err
	}
	return &dbmysql.TransparansiAnggaran{
		Judul:     formValue(r, "judul"),
		Deskripsi: optionalText(r, "deskripsi"),
		Kategori:  formValue(r, "kategori"),
		Tahun:     tahun,
	}, file, nil
}

func decodePeta(r *http.Request) (*dbmysql.PetaDesa, *content.File, error) {
	if err := parseForm(r); err != nil {
		return nil, nil, err
	}
	file, hdr, err := formFile(r)
	if err != nil {
		return nil, nil, err
	}
	lat, err := formFloat(r, "koordinat_lat")
	if err != nil {
		return nil, nil, err
	}
	lng, err := formFloat(r, "koordinat_lng")
	if err != nil {
		return nil, nil, err
	}
	zoom, err := formInt(r, "zoom_level")
	if err != nil {
		return nil, nil, err
	}
	peta := &dbmysql.PetaDesa{
		Judul:        formValue(r, "judul"),
		Deskripsi:    optionalText(r, "deskripsi"),
		KoordinatLat: lat,
		KoordinatLng: lng,
	}
	if zoom > 0 {
		peta.ZoomLevel = &zoom
	}
	if hdr != nil {
		peta.GambarFilename = &hdr.Filename
	}
	return peta, file, nil
}

func decodeProdukHukum(r *http.Request) (*dbmysql.ProdukHukum, *content.File, error) {
	if err := parseForm(r); err != nil {
		return nil, nil, err
	}
	file, hdr, err := formFile(r)
	if err != nil {
		return nil, nil, err
	}

	doc := &dbmysql.ProdukHukum{
		Judul:     formValue(r, "judul"),
		Deskripsi: optionalText(r, "deskripsi"),
		Kategori:  "surat_keputusan",
	}
	if file != nil {
		if file.ContentType != "application/pdf" {
			return nil, nil, fmt.Errorf("%w: hanya file PDF yang diizinkan", content.ErrValidation)
		}
		// ParseMultipartForm's limit is a memory threshold, larger parts
		// spill to disk, so the size cap is enforced here
		if hdr.Size > maxUploadSize {
			return nil, nil, fmt.Errorf("%w: ukuran file maksimal 10MB", content.ErrValidation)
		}
		doc.FileName = hdr.Filename
		size := hdr.Size
		doc.FileSize = &size
	}
	return doc, file, nil
}
