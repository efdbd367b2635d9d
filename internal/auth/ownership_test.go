package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func ownershipRequest(t *testing.T, target string, claims *Claims) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, target, nil)
	if claims != nil {
		r = r.WithContext(ContextWithClaims(r.Context(), claims))
	}
	return r
}

func TestRequireOwner(t *testing.T) {
	t.Run("matching identity proceeds", func(t *testing.T) {
		handlerCalled := false
		handler := RequireOwner("email")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, ownershipRequest(t, "/api/v1/my-services?email=a%40x.com", &Claims{Email: "a@x.com"}))

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, handlerCalled)
	})

	t.Run("mismatched identity is forbidden", func(t *testing.T) {
		handlerCalled := false
		handler := RequireOwner("email")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, ownershipRequest(t, "/api/v1/my-services?email=b%40x.com", &Claims{Email: "a@x.com"}))

		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, `{"message":"forbidden"}`, rec.Body.String())
		require.False(t, handlerCalled, "data operation must not execute")
	})

	t.Run("missing parameter is forbidden", func(t *testing.T) {
		handler := RequireOwner("email")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("wrapped handler must not run")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, ownershipRequest(t, "/api/v1/my-services", &Claims{Email: "a@x.com"}))

		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, `{"message":"forbidden"}`, rec.Body.String())
	})

	t.Run("no claims in context is unauthorized", func(t *testing.T) {
		handler := RequireOwner("email")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("wrapped handler must not run")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, ownershipRequest(t, "/api/v1/my-services?email=a%40x.com", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, `{"message":"unauthorized"}`, rec.Body.String())
	})
}
