package auth

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

type contextKey int

const claimsContextKey contextKey = iota

// ClaimsFromContext extracts the authenticated claims from the request
// context. Returns nil if no claims are present (unauthenticated request).
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsContextKey).(*Claims)
	return claims
}

// ContextWithClaims injects claims into a context. Used by the gate and by
// tests constructing authenticated requests directly.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// Gate authenticates protected requests. It extracts the session token from
// the cookie, verifies it, and adds the decoded claims to the request
// context. Every verification failure kind collapses into the same 401
// response so callers cannot distinguish forgery attempts from expiry.
type Gate struct {
	issuer  *Issuer
	cookies *SessionCookies
}

// NewGate creates an auth gate from the token issuer and cookie transport.
func NewGate(issuer *Issuer, cookies *SessionCookies) *Gate {
	return &Gate{issuer: issuer, cookies: cookies}
}

// Middleware returns an HTTP middleware that rejects unauthenticated
// requests with 401 before the wrapped handler runs.
func (g *Gate) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := g.cookies.Extract(r)
			if !ok {
				log.Debug().Str("path", r.URL.Path).Msg("No session cookie on protected route")
				writeUnauthorized(w)
				return
			}

			claims, err := g.issuer.Verify(token)
			if err != nil {
				// The failure kind stays internal; the response is the same
				// for expired, forged, and malformed tokens.
				log.Debug().Err(err).Str("path", r.URL.Path).Msg("Session token rejected")
				writeUnauthorized(w)
				return
			}

			ctx := ContextWithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
