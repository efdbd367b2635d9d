package auth

import (
	"net/http"
	"time"
)

// CookieName is the wire name of the session cookie.
const CookieName = "token"

// Environment selects the cookie security attributes for a deployment.
type Environment string

const (
	EnvProduction  Environment = "production"
	EnvDevelopment Environment = "development"
)

// cookieAttributes maps deployment environment to cookie security
// attributes. Production serves a separately hosted client over HTTPS, so
// the cookie must survive cross-site requests; development runs over plain
// local HTTP where Strict works and is the tighter default.
var cookieAttributes = map[Environment]struct {
	Secure   bool
	SameSite http.SameSite
}{
	EnvProduction:  {Secure: true, SameSite: http.SameSiteNoneMode},
	EnvDevelopment: {Secure: false, SameSite: http.SameSiteStrictMode},
}

// SessionCookies carries session tokens between client and server as an
// HTTP cookie. The cookie is always HttpOnly; the server never tracks it.
type SessionCookies struct {
	env Environment
}

// NewSessionCookies creates a cookie transport for the given environment.
// Unknown environments fall back to development attributes.
func NewSessionCookies(env Environment) *SessionCookies {
	if _, ok := cookieAttributes[env]; !ok {
		env = EnvDevelopment
	}
	return &SessionCookies{env: env}
}

// Attach sets the session cookie on the outbound response.
func (c *SessionCookies) Attach(w http.ResponseWriter, token string, ttl time.Duration) {
	attrs := cookieAttributes[c.env]
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   attrs.Secure,
		SameSite: attrs.SameSite,
		MaxAge:   int(ttl.Seconds()),
	})
}

// Extract reads the session token from the request cookie. A missing or
// empty cookie is reported as absence, not an error; the gate decides
// whether absence is fatal.
func (c *SessionCookies) Extract(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Clear removes the session cookie. Idempotent; succeeds whether or not a
// cookie was present on the request.
func (c *SessionCookies) Clear(w http.ResponseWriter) {
	attrs := cookieAttributes[c.env]
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   attrs.Secure,
		SameSite: attrs.SameSite,
		MaxAge:   -1,
	})
}
