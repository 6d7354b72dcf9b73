package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"godesa/internal/content"
)

// decodeFunc turns a multipart create/update form into a category row plus
// the optional attached file.
type decodeFunc[T any] func(r *http.Request) (*T, *content.File, error)

func handleList[T any](ctrl *content.Controller[T], log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := ctrl.List(r.Context())
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func handleCreate[T any](ctrl *content.Controller[T], decode decodeFunc[T], log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, file, err := decode(r)
		if err != nil {
			writeError(w, log, err)
			return
		}
		if r.MultipartForm != nil {
			defer r.MultipartForm.RemoveAll()
		}

		if err := ctrl.Create(r.Context(), item, file); err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, item)
	}
}

func handleUpdate[T any](ctrl *content.Controller[T], decode decodeFunc[T], setID func(*T, string), log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		item, file, err := decode(r)
		if err != nil {
			writeError(w, log, err)
			return
		}
		if r.MultipartForm != nil {
			defer r.MultipartForm.RemoveAll()
		}
		setID(item, id)

		if err := ctrl.Update(r.Context(), item, id, file); err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func handleDelete[T any](ctrl *content.Controller[T], log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if err := ctrl.Delete(r.Context(), id); err != nil {
			writeError(w, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
