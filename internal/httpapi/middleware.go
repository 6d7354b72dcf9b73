package httpapi

import (
	"net/http"

	"godesa/internal/common"
)

// adminOnly authenticates the request and rejects it unless the user's
// role row reads admin. The gate runs against the role table on every
// request, so a promotion takes effect without re-login.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		common.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := common.UserIDFromContext(r.Context())
			if !s.auth.IsAdmin(r.Context(), userID) {
				writeErrorMessage(w, http.StatusForbidden, "hanya admin yang dapat melakukan aksi ini")
				return
			}
			next(w, r)
		})).ServeHTTP(w, r)
	}
}

// authenticated wraps a handler that needs an identity but not the admin role.
func (s *Server) authenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		common.RequireAuth(next).ServeHTTP(w, r)
	}
}
