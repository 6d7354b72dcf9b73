package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"godesa/internal/common"
	"godesa/internal/content"
	"godesa/internal/dbmysql"
)

// stubAuth satisfies auth.Service with a fixed admin answer; the route
// tests only care about the gate, not about token issuance.
type stubAuth struct {
	admin bool
}

func (s *stubAuth) Register(ctx context.Context, email, password, fullName string) (*dbmysql.User, string, error) {
	return nil, "", nil
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (*dbmysql.User, string, error) {
	return nil, "", nil
}

func (s *stubAuth) GetUser(ctx context.Context, userID string) (*dbmysql.User, error) {
	return &dbmysql.User{ID: userID}, nil
}

func (s *stubAuth) GetUserByEmail(ctx context.Context, email string) (*dbmysql.User, error) {
	return &dbmysql.User{Email: email}, nil
}

func (s *stubAuth) EnsureRole(ctx context.Context, userID string) error { return nil }

func (s *stubAuth) IsAdmin(ctx context.Context, userID string) bool { return s.admin }

func (s *stubAuth) Role(ctx context.Context, userID string) (string, error) {
	if s.admin {
		return dbmysql.RoleAdmin, nil
	}
	return dbmysql.RoleUser, nil
}

func (s *stubAuth) PromoteAdmin(ctx context.Context, email string) error { return nil }

// memStore keeps rows in insertion order, keyed by ID.
type memStore struct {
	rows []*dbmysql.PengaduanMasyarakat
}

func (m *memStore) List(ctx context.Context) ([]dbmysql.PengaduanMasyarakat, error) {
	out := make([]dbmysql.PengaduanMasyarakat, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, *r)
	}
	return out, nil
}

func (m *memStore) Get(ctx context.Context, id string) (*dbmysql.PengaduanMasyarakat, error) {
	for _, r := range m.rows {
		if r.ID == id {
			copy := *r
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) Insert(ctx context.Context, item *dbmysql.PengaduanMasyarakat) error {
	if item.ID == "" {
		item.ID = fmt.Sprintf("id-%d", len(m.rows)+1)
	}
	m.rows = append(m.rows, item)
	return nil
}

func (m *memStore) Update(ctx context.Context, item *dbmysql.PengaduanMasyarakat) error {
	for i, r := range m.rows {
		if r.ID == item.ID {
			m.rows[i] = item
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	for i, r := range m.rows {
		if r.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func newTestServer(t *testing.T, admin bool) (*Server, *memStore) {
	t.Helper()

	store := &memStore{}
	desc := content.Descriptor[dbmysql.PengaduanMasyarakat]{
		Name: "pengaduan",
		Validate: func(p *dbmysql.PengaduanMasyarakat) error {
			if p.NamaPengirim == "" || p.IsiPengaduan == "" {
				return fmt.Errorf("%w: nama dan isi wajib diisi", content.ErrValidation)
			}
			return nil
		},
	}

	s := &Server{
		log:       zap.NewNop(),
		auth:      &stubAuth{admin: admin},
		pengaduan: content.NewController(desc, store, nil, zap.NewNop()),
	}
	return s, store
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := common.GenerateToken("user-1", "warga@desa.id")
	require.NoError(t, err)
	return "Bearer " + token
}

func TestPengaduanCreatePublic(t *testing.T) {
	s, store := newTestServer(t, false)

	body, _ := json.Marshal(map[string]string{
		"nama_pengirim": "Budi",
		"isi_pengaduan": "Lampu jalan mati di RT 02",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/pengaduan", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created dbmysql.PengaduanMasyarakat
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.Equal(t, "baru", created.Status)
	require.NotEmpty(t, created.Tanggal)
	require.Len(t, store.rows, 1)
}

func TestPengaduanCreateValidation(t *testing.T) {
	s, store := newTestServer(t, false)

	body, _ := json.Marshal(map[string]string{"nama_pengirim": "Budi"})
	req := httptest.NewRequest(http.MethodPost, "/api/pengaduan", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, store.rows)
}

func TestPengaduanListPublic(t *testing.T) {
	s, store := newTestServer(t, false)
	store.rows = append(store.rows, &dbmysql.PengaduanMasyarakat{
		ID: "p1", NamaPengirim: "Siti", IsiPengaduan: "Jalan berlubang", Status: "baru",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/pengaduan", nil)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var items []dbmysql.PengaduanMasyarakat
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	require.Len(t, items, 1)
	require.Equal(t, "p1", items[0].ID)
}

func TestDeleteRequiresAuth(t *testing.T) {
	s, _ := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodDelete, "/api/pengaduan/p1", nil)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteRequiresAdminRole(t *testing.T) {
	s, store := newTestServer(t, false)
	store.rows = append(store.rows, &dbmysql.PengaduanMasyarakat{
		ID: "p1", NamaPengirim: "Siti", IsiPengaduan: "Jalan berlubang",
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/pengaduan/p1", nil)
	req.Header.Set("Authorization", bearerToken(t))
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Len(t, store.rows, 1)
}

func TestAdminDelete(t *testing.T) {
	s, store := newTestServer(t, true)
	store.rows = append(store.rows, &dbmysql.PengaduanMasyarakat{
		ID: "p1", NamaPengirim: "Siti", IsiPengaduan: "Jalan berlubang",
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/pengaduan/p1", nil)
	req.Header.Set("Authorization", bearerToken(t))
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, store.rows)
}

func TestPengaduanStatusUpdate(t *testing.T) {
	s, store := newTestServer(t, true)
	store.rows = append(store.rows, &dbmysql.PengaduanMasyarakat{
		ID: "p1", NamaPengirim: "Siti", IsiPengaduan: "Jalan berlubang", Status: "baru",
	})

	body, _ := json.Marshal(map[string]string{"status": "diproses"})
	req := httptest.NewRequest(http.MethodPatch, "/api/pengaduan/p1/status", bytes.NewReader(body))
	req.Header.Set("Authorization", bearerToken(t))
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "diproses", store.rows[0].Status)
}

func TestPengaduanStatusNotFound(t *testing.T) {
	s, _ := newTestServer(t, true)

	body, _ := json.Marshal(map[string]string{"status": "selesai"})
	req := httptest.NewRequest(http.MethodPatch, "/api/pengaduan/missing/status", bytes.NewReader(body))
	req.Header.Set("Authorization", bearerToken(t))
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"galeri/foto.jpg", "image/jpeg"},
		{"galeri/foto.JPEG", "image/jpeg"},
		{"galeri/foto.png", "image/png"},
		{"galeri/anim.gif", "image/gif"},
		{"galeri/foto.webp", "image/webp"},
		{"surat_keputusan/sk-01.pdf", "application/pdf"},
		{"lainnya/berkas.bin", "application/octet-stream"},
		{"tanpa-ekstensi", "application/octet-stream"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, contentTypeFor(tt.filename), tt.filename)
	}
}
