package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ridesync/ridesync/internal/store"
	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// writeStoreError maps store failures onto the external contract: unknown
// or invalid document IDs are a plain 404, everything else is a 500 with
// the detail kept in the server log.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrServiceNotFound),
		errors.Is(err, store.ErrBookingNotFound),
		errors.Is(err, store.ErrInvalidID):
		writeError(w, http.StatusNotFound, "not found")
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("store operation failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
