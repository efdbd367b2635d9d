package auth

import "net/http"

// The two bodies below are the externally observable failure contract and
// must be preserved byte-for-byte for client compatibility.
const (
	unauthorizedBody = `{"message":"unauthorized"}`
	forbiddenBody    = `{"message":"forbidden"}`
)

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(unauthorizedBody))
}

func writeForbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(forbiddenBody))
}
