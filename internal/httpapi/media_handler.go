package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// serveMedia streams a stored object; this is the endpoint the public URLs
// written into content rows resolve to.
func (s *Server) serveMedia(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bucket := s.storage.Bucket(vars["bucket"])
	if bucket == nil {
		http.Error(w, "bucket tidak dikenal", http.StatusNotFound)
		return
	}
	path := vars["path"]

	reader, size, err := bucket.Open(r.Context(), path)
	if err != nil {
		http.Error(w, "file tidak ditemukan", http.StatusNotFound)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", contentTypeFor(path))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", size))

	if _, err := io.Copy(w, reader); err != nil {
		s.log.Warn("error streaming file", zap.String("path", path), zap.Error(err))
	}
}

func contentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
