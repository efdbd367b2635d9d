// Package server wires the HTTP API: route dispatch, the auth gate on
// protected routes, and the pass-through handlers over the document stores.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ridesync/ridesync/internal/auth"
	"github.com/ridesync/ridesync/internal/logger"
	"github.com/ridesync/ridesync/internal/store"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// Config holds the request-handling configuration of the server.
type Config struct {
	Environment auth.Environment
	SessionTTL  time.Duration
	CORSOrigins []string
}

// Server handles the HTTP API over the injected stores. All collaborators
// are constructed at startup and passed in; there is no ambient state.
type Server struct {
	services store.ServiceStore
	bookings store.BookingStore
	issuer   *auth.Issuer
	cookies  *auth.SessionCookies
	gate     *auth.Gate
	pinger   store.Pinger
	cfg      Config
}

// New creates a Server from its collaborators.
func New(services store.ServiceStore, bookings store.BookingStore, issuer *auth.Issuer, cfg Config) *Server {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = auth.DefaultTTL
	}

	cookies := auth.NewSessionCookies(cfg.Environment)
	return &Server{
		services: services,
		bookings: bookings,
		issuer:   issuer,
		cookies:  cookies,
		gate:     auth.NewGate(issuer, cookies),
		cfg:      cfg,
	}
}

// WithPinger attaches a store connectivity check used by the health
// endpoint.
func (s *Server) WithPinger(p store.Pinger) *Server {
	s.pinger = p
	return s
}

// Handler builds the routing tree. Ownership-checked reads sit behind the
// auth gate plus the email ownership guard; the add endpoints sit behind
// the gate alone.
func (s *Server) Handler(log zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(logger.HTTPRequests(log))

	r.Get("/", s.root)
	r.Get("/healthz", s.health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/access-token", s.createAccessToken)
		r.Post("/logout", s.logout)
		r.Get("/services", s.listServices)

		r.Group(func(r chi.Router) {
			r.Use(s.gate.Middleware())

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireOwner("email"))
				r.Get("/my-services", s.myServices)
				r.Get("/my-bookings", s.myBookings)
				r.Get("/details/{id}", s.serviceDetails)
			})

			r.Post("/addService", s.addService)
			r.Post("/addBooking", s.addBooking)
		})

		// Maintenance mutations carry no auth policy.
		r.Put("/services/{id}", s.updateService)
		r.Delete("/services/{id}", s.deleteService)
		r.Patch("/bookings/{id}", s.updateBookingStatus)
		r.Delete("/bookings/{id}", s.deleteBooking)
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Server running...."))
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "store unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
