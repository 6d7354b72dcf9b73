package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"godesa/internal/dbmysql"
)

// Citizen submissions: complaints and suggestions are the two categories
// any visitor may create, no admin gate on the create path.

type pengaduanRequest struct {
	NamaPengirim string `json:"nama_pengirim"`
	IsiPengaduan string `json:"isi_pengaduan"`
	Tanggal      string `json:"tanggal"`
}

func (s *Server) handlePengaduanCreate(w http.ResponseWriter, r *http.Request) {
	var req pengaduanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "body tidak valid")
		return
	}

	item := &dbmysql.PengaduanMasyarakat{
		NamaPengirim: req.NamaPengirim,
		IsiPengaduan: req.IsiPengaduan,
		Status:       "baru",
		Tanggal:      req.Tanggal,
	}
	if item.Tanggal == "" {
		item.Tanggal = time.Now().Format("2006-01-02")
	}

	if err := s.pengaduan.Create(r.Context(), item, nil); err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

type statusRequest struct {
	Status string `json:"status"`
}

// handlePengaduanStatus moves a complaint through baru/diproses/selesai.
func (s *Server) handlePengaduanStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "body tidak valid")
		return
	}
	if req.Status == "" {
		writeErrorMessage(w, http.StatusBadRequest, "status wajib diisi")
		return
	}

	existing, err := s.pengaduan.Get(r.Context(), id)
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	existing.Status = req.Status
	if err := s.pengaduan.Update(r.Context(), existing, id, nil); err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, existing)
}

type saranRequest struct {
	NamaPengirim string `json:"nama_pengirim"`
	Saran        string `json:"saran"`
	Tanggal      string `json:"tanggal"`
}

func (s *Server) handleSaranCreate(w http.ResponseWriter, r *http.Request) {
	var req saranRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "body tidak valid")
		return
	}

	item := &dbmysql.SaranMasyarakat{
		NamaPengirim: req.NamaPengirim,
		Saran:        req.Saran,
		Tanggal:      req.Tanggal,
	}
	if item.Tanggal == "" {
		item.Tanggal = time.Now().Format("2006-01-02")
	}

	if err := s.saran.Create(r.Context(), item, nil); err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}
