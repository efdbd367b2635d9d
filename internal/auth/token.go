// Package auth implements the session token codec, the cookie transport,
// and the middleware that gates protected routes: token verification and
// per-request ownership checks.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the default session token lifetime. Two days balances
// re-login friction against the exposure window of a non-revocable token.
const DefaultTTL = 48 * time.Hour

const tokenIssuer = "ridesync"

var (
	// ErrNoSecret indicates the signing secret is not configured. Fatal at
	// startup, never per-request.
	ErrNoSecret = errors.New("session signing secret not configured")

	// ErrSecretTooShort indicates the signing secret is too weak for
	// HMAC-SHA256.
	ErrSecretTooShort = errors.New("session signing secret must be at least 32 bytes")

	// ErrTokenExpired indicates the token is past its expiry instant.
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidSignature indicates the token signature does not verify
	// against the configured secret.
	ErrInvalidSignature = errors.New("invalid token signature")

	// ErrMalformedToken indicates the value is not parseable as a token.
	ErrMalformedToken = errors.New("malformed token")
)

// Claims is the identity payload carried inside a session token. The token
// itself is the full session record; there is no server-side session state.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer creates and verifies HMAC-signed session tokens. The secret is
// established once at startup and never mutated, so an Issuer is safe for
// concurrent use.
type Issuer struct {
	secret []byte
}

// NewIssuer creates an Issuer from the configured signing secret.
func NewIssuer(secret string) (*Issuer, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if len(secret) < 32 {
		return nil, ErrSecretTooShort
	}
	return &Issuer{secret: []byte(secret)}, nil
}

// Issue creates a signed session token for the given email, valid for ttl.
func (i *Issuer) Issue(email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify checks signature integrity and expiry and returns the embedded
// claims. The error kinds are internal diagnostics only; callers facing the
// network must collapse them into a single unauthorized outcome.
func (i *Issuer) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrMalformedToken
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrMalformedToken
	}

	return claims, nil
}
