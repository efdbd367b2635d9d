package auth

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// RequireOwner guards routes that expose a single identity's private data.
// It compares the authenticated email against the named query parameter and
// rejects mismatches with 403 before the wrapped handler runs, so one
// identity cannot enumerate another's records by supplying someone else's
// email while authenticated as themselves.
//
// Must be installed after the Gate middleware; a request without claims in
// context is rejected with 401.
func RequireOwner(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil {
				writeUnauthorized(w)
				return
			}

			expected := r.URL.Query().Get(param)
			if expected == "" || expected != claims.Email {
				log.Debug().
					Str("path", r.URL.Path).
					Str("param", param).
					Msg("Ownership mismatch on protected route")
				writeForbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
