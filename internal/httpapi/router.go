package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"godesa/internal/content"
	"godesa/internal/dbmysql"
)

// registerContent wires the shared list/create/delete surface of one
// content category under /api/<path>.
func registerContent[T any](api *mux.Router, s *Server, path string, ctrl *content.Controller[T], decode decodeFunc[T]) {
	api.HandleFunc("/"+path, handleList(ctrl, s.log)).Methods(http.MethodGet)
	api.HandleFunc("/"+path, s.adminOnly(handleCreate(ctrl, decode, s.log))).Methods(http.MethodPost)
	api.HandleFunc("/"+path+"/{id}", s.adminOnly(handleDelete(ctrl, s.log))).Methods(http.MethodDelete)
}

func (s *Server) Routes() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	router.HandleFunc("/media/{bucket}/{path:.+}", s.serveMedia).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", s.authenticated(s.handleMe)).Methods(http.MethodGet)

	registerContent(api, s, "berita", s.berita, decodeBerita)
	registerContent(api, s, "galeri", s.galeri, decodeGaleri)
	registerContent(api, s, "lembaga", s.lembaga, decodeLembaga)
	registerContent(api, s, "aparatur", s.aparatur, decodeAparatur)
	registerContent(api, s, "profil", s.profil, decodeProfil)
	registerContent(api, s, "statistik", s.statistik, decodeStatistik)
	registerContent(api, s, "anggaran", s.anggaran, decodeAnggaran)
	registerContent(api, s, "produk-hukum", s.produkHukum, decodeProdukHukum)

	// the village map additionally supports whole-row replace
	registerContent(api, s, "peta", s.peta, decodePeta)
	api.HandleFunc("/peta/{id}", s.adminOnly(handleUpdate(s.peta, decodePeta,
		func(p *dbmysql.PetaDesa, id string) { p.ID = id }, s.log))).Methods(http.MethodPut)

	// citizen submissions: public create, admin-managed afterwards
	api.HandleFunc("/pengaduan", handleList(s.pengaduan, s.log)).Methods(http.MethodGet)
	api.HandleFunc("/pengaduan", s.handlePengaduanCreate).Methods(http.MethodPost)
	api.HandleFunc("/pengaduan/{id}/status", s.adminOnly(s.handlePengaduanStatus)).Methods(http.MethodPatch)
	api.HandleFunc("/pengaduan/{id}", s.adminOnly(handleDelete(s.pengaduan, s.log))).Methods(http.MethodDelete)

	api.HandleFunc("/saran", handleList(s.saran, s.log)).Methods(http.MethodGet)
	api.HandleFunc("/saran", s.handleSaranCreate).Methods(http.MethodPost)
	api.HandleFunc("/saran/{id}", s.adminOnly(handleDelete(s.saran, s.log))).Methods(http.MethodDelete)

	api.HandleFunc("/kontak", s.handleKontakList).Methods(http.MethodGet)
	api.HandleFunc("/kontak/{jenis}", s.adminOnly(s.handleKontakSave)).Methods(http.MethodPut)

	return router
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
