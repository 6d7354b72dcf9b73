package content

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"godesa/internal/dbmysql"
)

// fakeStore records calls in order and serves canned rows.
type fakeStore struct {
	calls     *[]string
	rows      map[string]*dbmysql.GaleriDesa
	inserted  []*dbmysql.GaleriDesa
	updated   []*dbmysql.GaleriDesa
	insertErr error
	deleteErr error
}

func (f *fakeStore) List(ctx context.Context) ([]dbmysql.GaleriDesa, error) {
	*f.calls = append(*f.calls, "list")
	out := make([]dbmysql.GaleriDesa, 0, len(f.rows))
	for _, r := range f.rows {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (*dbmysql.GaleriDesa, error) {
	*f.calls = append(*f.calls, "get")
	row, ok := f.rows[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *row
	return &copied, nil
}

func (f *fakeStore) Insert(ctx context.Context, item *dbmysql.GaleriDesa) error {
	*f.calls = append(*f.calls, "insert")
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, item)
	return nil
}

func (f *fakeStore) Update(ctx context.Context, item *dbmysql.GaleriDesa) error {
	*f.calls = append(*f.calls, "update")
	f.updated = append(f.updated, item)
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	*f.calls = append(*f.calls, "delete")
	return f.deleteErr
}

// fakeStorage records upload/remove paths.
type fakeStorage struct {
	calls     *[]string
	uploads   []string
	removes   []string
	uploadErr error
	removeErr error
}

func (f *fakeStorage) Upload(ctx context.Context, path, contentType string, content io.Reader) (string, error) {
	*f.calls = append(*f.calls, "upload")
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, path)
	return "http://localhost:8080/media/galeridesa/" + path, nil
}

func (f *fakeStorage) Remove(ctx context.Context, path string) error {
	*f.calls = append(*f.calls, "remove")
	f.removes = append(f.removes, path)
	return f.removeErr
}

func galeriDescriptor() Descriptor[dbmysql.GaleriDesa] {
	return Descriptor[dbmysql.GaleriDesa]{
		Name:        "galeri",
		Folder:      "galeri",
		FilePrefix:  "galeri",
		RequireFile: false,
		Validate: func(g *dbmysql.GaleriDesa) error {
			if err := requireField("judul", g.Judul); err != nil {
				return err
			}
			return requireKategori(GaleriKategori, g.Kategori)
		},
		ObjectURL:    func(g *dbmysql.GaleriDesa) string { return deref(g.GambarURL) },
		SetObjectURL: func(g *dbmysql.GaleriDesa, url string) { g.GambarURL = ref(url) },
	}
}

func newTestController(store *fakeStore, storage *fakeStorage) *Controller[dbmysql.GaleriDesa] {
	return NewController(galeriDescriptor(), store, storage, zap.NewNop())
}

func TestController_CreateWithoutFile(t *testing.T) {
	var calls []string
	store := &fakeStore{calls: &calls, rows: map[string]*dbmysql.GaleriDesa{}}
	storage := &fakeStorage{calls: &calls}
	ctrl := newTestController(store, storage)

	item := &dbmysql.GaleriDesa{Judul: "Kerja Bakti", Kategori: "Sosial", Tanggal: "2024-03-01"}
	require.NoError(t, ctrl.Create(context.Background(), item, nil))

	require.Nil(t, item.GambarURL)
	require.Len(t, store.inserted, 1)
	require.Empty(t, storage.uploads)
}

func TestController_CreateWithFile(t *testing.T) {
	var calls []string
	store := &fakeStore{calls: &calls, rows: map[string]*dbmysql.GaleriDesa{}}
	storage := &fakeStorage{calls: &calls}
	ctrl := newTestController(store, storage)

	item := &dbmysql.GaleriDesa{Judul: "Gotong Royong", Kategori: "Sosial", Tanggal: "2024-03-01"}
	file := &File{Name: "photo.jpg", ContentType: "image/jpeg", Content: strings.NewReader("jpegdata")}
	require.NoError(t, ctrl.Create(context.Background(), item, file))

	require.NotNil(t, item.GambarURL)
	require.Len(t, storage.uploads, 1)
	require.True(t, strings.HasPrefix(storage.uploads[0], "galeri/galeri-"))
	require.True(t, strings.HasSuffix(storage.uploads[0], ".jpg"))
	require.Contains(t, *item.GambarURL, storage.uploads[0])

	// upload happens before the insert
	require.Equal(t, []string{"upload", "insert"}, calls)
}

func TestController_CreateUploadFailureAbortsInsert(t *testing.T) {
	var calls []string
	store := &fakeStore{calls: &calls, rows: map[string]*dbmysql.GaleriDesa{}}
	storage := &fakeStorage{calls: &calls, uploadErr: errors.New("bucket unavailable")}
	ctrl := newTestController(store, storage)

	item := &dbmysql.GaleriDesa{Judul: "Gagal", Kategori: "Sosial", Tanggal: "2024-03-01"}
	file := &File{Name: "photo.jpg", ContentType: "image/jpeg", Content: strings.NewReader("x")}
	err := ctrl.Create(context.Background(), item, file)

	require.Error(t, err)
	require.Empty(t, store.inserted)
	require.NotContains(t, calls, "insert")
}

func TestController_CreateValidation(t *testing.T) {
	var calls []string
	store := &fakeStore{calls: &calls, rows: map[string]*dbmysql.GaleriDesa{}}
	storage := &fakeStorage{calls: &calls}
	ctrl := newTestController(store, storage)

	tests := []struct {
		name string
		item *dbmysql.GaleriDesa
	}{
		{"missing judul", &dbmysql.GaleriDesa{Kategori: "Sosial"}},
		{"unknown kategori", &dbmysql.GaleriDesa{Judul: "Foto", Kategori: "bukan-kategori"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ctrl.Create(context.Background(), tc.item, nil)
			require.ErrorIs(t, err, ErrValidation)
			// validation errors never reach the backend
			require.Empty(t, calls)
		})
	}
}

func TestController_CreateRequiredFileMissing(t *testing.T) {
	var calls []string
	store := &fakeStore{calls: &calls, rows: map[string]*dbmysql.GaleriDesa{}}
	storage := &fakeStorage{calls: &calls}
	desc := galeriDescriptor()
	desc.RequireFile = true
	ctrl := NewController(desc, store, storage, zap.NewNop())

	item := &dbmysql.GaleriDesa{Judul: "Foto", Kategori: "Sosial"}
	err := ctrl.Create(context.Background(), item, nil)
	require.ErrorIs(t, err, ErrValidation)
	require.Empty(t, calls)
}

func TestController_DeleteWithMedia(t *testing.T) {
	var calls []string
	url := "http://localhost:8080/media/galeridesa/galeri/abc123.jpg"
	store := &fakeStore{calls: &calls, rows: map[string]*dbmysql.GaleriDesa{
		"id-1": {ID: "id-1", Judul: "Foto", Kategori: "Sosial", GambarURL: &url},
	}}
	storage := &fakeStorage{calls: &calls}
	ctrl := newTestController(store, storage)

	require.NoError(t, ctrl.Delete(context.Background(), "id-1"))

	require.Equal(t, []string{"galeri/abc123.jpg"}, storage.removes)
	// storage remove is issued before the row delete
	require.Equal(t, []string{"get", "remove", "delete"}, calls)
}

func TestController_DeleteStorageFailureStillDeletesRow(t *testing.T) {
	var calls []string
	url := "http://localhost:8080/media/galeridesa/galeri/abc123.jpg"
	store := &fakeStore{calls: &calls, rows: map[string]*dbmysql.GaleriDesa{
		"id-1": {ID: "id-1", Judul: "Foto", Kategori: "Sosial", GambarURL: &url},
	}}
	storage := &fakeStorage{calls: &calls, removeErr: errors.New("object gone")}
	ctrl := newTestController(store, storage)

	require.NoError(t, ctrl.Delete(context.Background(), "id-1"))
	require.Contains(t, calls, "delete")
}

func TestController_DeleteWithoutMediaSkipsStorage(t *testing.T) {
	var calls []string
	store := &fakeStore{calls: &calls, rows: map[string]*dbmysql.GaleriDesa{
		"id-1": {ID: "id-1", Judul: "Foto", Kategori: "Sosial"},
	}}
	storage := &fakeStorage{calls: &calls}
	ctrl := newTestController(store, storage)

	require.NoError(t, ctrl.Delete(context.Background(), "id-1"))
	require.Empty(t, storage.removes)
}

func TestController_DeleteRowFailureSurfaces(t *testing.T) {
	var calls []string
	store := &fakeStore{calls: &calls, rows: map[string]*dbmysql.GaleriDesa{
		"id-1": {ID: "id-1", Judul: "Foto", Kategori: "Sosial"},
	}, deleteErr: errors.New("db is down")}
	storage := &fakeStorage{calls: &calls}
	ctrl := newTestController(store, storage)

	require.Error(t, ctrl.Delete(context.Background(), "id-1"))
}

func TestController_UpdateKeepsStoredURLWithoutNewFile(t *testing.T) {
	var calls []string
	url := "http://localhost:8080/media/galeridesa/galeri/abc123.jpg"
	store := &fakeStore{calls: &calls, rows: map[string]*dbmysql.GaleriDesa{
		"id-1": {ID: "id-1", Judul: "Foto", Kategori: "Sosial", GambarURL: &url},
	}}
	storage := &fakeStorage{calls: &calls}
	ctrl := newTestController(store, storage)

	item := &dbmysql.GaleriDesa{ID: "id-1", Judul: "Foto Baru", Kategori: "Budaya"}
	require.NoError(t, ctrl.Update(context.Background(), item, "id-1", nil))

	require.NotNil(t, item.GambarURL)
	require.Equal(t, url, *item.GambarURL)
	require.Empty(t, storage.uploads)
	require.Len(t, store.updated, 1)
}

func TestController_UpdateWithoutFileKeepsNilURL(t *testing.T) {
	var calls []string
	store := &fakeStore{calls: &calls, rows: map[string]*dbmysql.GaleriDesa{
		"id-1": {ID: "id-1", Judul: "Foto", Kategori: "Sosial"},
	}}
	storage := &fakeStorage{calls: &calls}
	ctrl := newTestController(store, storage)

	item := &dbmysql.GaleriDesa{ID: "id-1", Judul: "Foto Baru", Kategori: "Sosial"}
	require.NoError(t, ctrl.Update(context.Background(), item, "id-1", nil))

	// a row without media keeps its null URL, not an empty string
	require.Nil(t, item.GambarURL)
	require.Len(t, store.updated, 1)
	require.Nil(t, store.updated[0].GambarURL)
}

// fakePetaStore serves canned map rows for the carry-over path.
type fakePetaStore struct {
	rows    map[string]*dbmysql.PetaDesa
	updated []*dbmysql.PetaDesa
}

func (f *fakePetaStore) List(ctx context.Context) ([]dbmysql.PetaDesa, error) {
	return nil, nil
}

func (f *fakePetaStore) Get(ctx context.Context, id string) (*dbmysql.PetaDesa, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *row
	return &copied, nil
}

func (f *fakePetaStore) Insert(ctx context.Context, item *dbmysql.PetaDesa) error { return nil }

func (f *fakePetaStore) Update(ctx context.Context, item *dbmysql.PetaDesa) error {
	f.updated = append(f.updated, item)
	return nil
}

func (f *fakePetaStore) Delete(ctx context.Context, id string) error { return nil }

func TestController_UpdateCarriesPetaMediaFields(t *testing.T) {
	url := "http://localhost:8080/media/peta-desa/peta/peta-abc123.jpg"
	filename := "balai.jpg"
	store := &fakePetaStore{rows: map[string]*dbmysql.PetaDesa{
		"id-1": {ID: "id-1", Judul: "Peta Desa", GambarURL: &url, GambarFilename: &filename},
	}}
	ctrl := NewController(petaDescriptor(), store, &fakeStorage{calls: new([]string)}, zap.NewNop())

	item := &dbmysql.PetaDesa{ID: "id-1", Judul: "Peta Desa 2024"}
	require.NoError(t, ctrl.Update(context.Background(), item, "id-1", nil))

	// URL and filename survive the whole-row replace together
	require.NotNil(t, item.GambarURL)
	require.Equal(t, url, *item.GambarURL)
	require.NotNil(t, item.GambarFilename)
	require.Equal(t, "balai.jpg", *item.GambarFilename)
	require.Len(t, store.updated, 1)
}

func TestController_UpdateCarriesPetaNilMedia(t *testing.T) {
	store := &fakePetaStore{rows: map[string]*dbmysql.PetaDesa{
		"id-1": {ID: "id-1", Judul: "Peta Desa"},
	}}
	ctrl := NewController(petaDescriptor(), store, &fakeStorage{calls: new([]string)}, zap.NewNop())

	item := &dbmysql.PetaDesa{ID: "id-1", Judul: "Peta Desa 2024"}
	require.NoError(t, ctrl.Update(context.Background(), item, "id-1", nil))

	require.Nil(t, item.GambarURL)
	require.Nil(t, item.GambarFilename)
}

func TestController_UpdateWithNewFileReplacesObject(t *testing.T) {
	var calls []string
	url := "http://localhost:8080/media/galeridesa/galeri/abc123.jpg"
	store := &fakeStore{calls: &calls, rows: map[string]*dbmysql.GaleriDesa{
		"id-1": {ID: "id-1", Judul: "Foto", Kategori: "Sosial", GambarURL: &url},
	}}
	storage := &fakeStorage{calls: &calls}
	ctrl := newTestController(store, storage)

	item := &dbmysql.GaleriDesa{ID: "id-1", Judul: "Foto Baru", Kategori: "Sosial"}
	file := &File{Name: "new.png", ContentType: "image/png", Content: strings.NewReader("png")}
	require.NoError(t, ctrl.Update(context.Background(), item, "id-1", file))

	require.Equal(t, []string{"galeri/abc123.jpg"}, storage.removes)
	require.Len(t, storage.uploads, 1)
	require.NotEqual(t, url, *item.GambarURL)
}
