package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type accessTokenRequest struct {
	Email string `json:"email"`
}

// createAccessToken issues a session token for the supplied identity and
// sets it as the session cookie. Credential verification happens out of
// band (a third-party identity provider confirms the user before the
// client calls this endpoint); the payload is signed as given.
func (s *Server) createAccessToken(w http.ResponseWriter, r *http.Request) {
	var req accessTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	token, err := s.issuer.Issue(req.Email, s.cfg.SessionTTL)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to issue session token")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.cookies.Attach(w, token, s.cfg.SessionTTL)
	writeSuccess(w)
}

// logout clears the session cookie. The token itself stays valid until its
// natural expiry; there is no server-side revocation in the stateless
// session design.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.cookies.Clear(w)
	writeSuccess(w)
}
