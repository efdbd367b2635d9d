package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ridesync/ridesync/internal/auth"
	"github.com/ridesync/ridesync/internal/store"
)

func (s *Server) addBooking(w http.ResponseWriter, r *http.Request) {
	var b store.Booking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.bookings.Create(r.Context(), &b)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// myBookings returns the bookings made by the authenticated customer.
func (s *Server) myBookings(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	bookings, err := s.bookings.ListByUser(r.Context(), claims.Email)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

type bookingStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) updateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req bookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status == "" {
		writeError(w, http.StatusBadRequest, "status is required")
		return
	}

	if err := s.bookings.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeSuccess(w)
}

func (s *Server) deleteBooking(w http.ResponseWriter, r *http.Request) {
	if err := s.bookings.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeSuccess(w)
}
