package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type kontakRequest struct {
	Label string `json:"label"`
	Nilai string `json:"nilai"`
}

func (s *Server) handleKontakList(w http.ResponseWriter, r *http.Request) {
	rows, err := s.kontak.List(r.Context())
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// handleKontakSave upserts the contact entry for the jenis in the path.
func (s *Server) handleKontakSave(w http.ResponseWriter, r *http.Request) {
	jenis := mux.Vars(r)["jenis"]

	var req kontakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "body tidak valid")
		return
	}

	row, err := s.kontak.Save(r.Context(), jenis, req.Label, req.Nilai)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}
