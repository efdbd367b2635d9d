package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ridesync/ridesync/internal/auth"
	"github.com/ridesync/ridesync/internal/store"
)

// listServices returns every service for public browsing.
func (s *Server) listServices(w http.ResponseWriter, r *http.Request) {
	services, err := s.services.List(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

// myServices returns the services owned by the authenticated provider. The
// ownership guard has already matched the email parameter against the
// session identity.
func (s *Server) myServices(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	services, err := s.services.ListByProvider(r.Context(), claims.Email)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (s *Server) serviceDetails(w http.ResponseWriter, r *http.Request) {
	svc, err := s.services.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (s *Server) addService(w http.ResponseWriter, r *http.Request) {
	var svc store.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.services.Create(r.Context(), &svc)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateService(w http.ResponseWriter, r *http.Request) {
	var svc store.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.services.Update(r.Context(), chi.URLParam(r, "id"), &svc); err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeSuccess(w)
}

func (s *Server) deleteService(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeSuccess(w)
}
