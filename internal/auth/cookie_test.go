package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionCookies_Attach(t *testing.T) {
	t.Run("production attributes", func(t *testing.T) {
		cookies := NewSessionCookies(EnvProduction)
		rec := httptest.NewRecorder()

		cookies.Attach(rec, "signed-token", DefaultTTL)

		set := rec.Result().Cookies()
		require.Len(t, set, 1)
		require.Equal(t, CookieName, set[0].Name)
		require.Equal(t, "signed-token", set[0].Value)
		require.True(t, set[0].HttpOnly)
		require.True(t, set[0].Secure)
		require.Equal(t, http.SameSiteNoneMode, set[0].SameSite)
		require.Equal(t, int((48 * time.Hour).Seconds()), set[0].MaxAge)
		require.Equal(t, "/", set[0].Path)
	})

	t.Run("development attributes", func(t *testing.T) {
		cookies := NewSessionCookies(EnvDevelopment)
		rec := httptest.NewRecorder()

		cookies.Attach(rec, "signed-token", DefaultTTL)

		set := rec.Result().Cookies()
		require.Len(t, set, 1)
		require.True(t, set[0].HttpOnly)
		require.False(t, set[0].Secure)
		require.Equal(t, http.SameSiteStrictMode, set[0].SameSite)
	})

	t.Run("unknown environment falls back to development", func(t *testing.T) {
		cookies := NewSessionCookies(Environment("staging"))
		rec := httptest.NewRecorder()

		cookies.Attach(rec, "signed-token", DefaultTTL)

		set := rec.Result().Cookies()
		require.Len(t, set, 1)
		require.False(t, set[0].Secure)
		require.Equal(t, http.SameSiteStrictMode, set[0].SameSite)
	})
}

func TestSessionCookies_Extract(t *testing.T) {
	cookies := NewSessionCookies(EnvDevelopment)

	t.Run("cookie present", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: CookieName, Value: "signed-token"})

		token, ok := cookies.Extract(r)
		require.True(t, ok)
		require.Equal(t, "signed-token", token)
	})

	t.Run("cookie absent", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		token, ok := cookies.Extract(r)
		require.False(t, ok)
		require.Empty(t, token)
	})

	t.Run("cookie empty", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: CookieName, Value: ""})

		_, ok := cookies.Extract(r)
		require.False(t, ok)
	})
}

func TestSessionCookies_Clear(t *testing.T) {
	// Clearing is idempotent: it emits the removal directive whether or not
	// the request carried a cookie.
	cookies := NewSessionCookies(EnvProduction)
	rec := httptest.NewRecorder()

	cookies.Clear(rec)

	set := rec.Result().Cookies()
	require.Len(t, set, 1)
	require.Equal(t, CookieName, set[0].Name)
	require.Empty(t, set[0].Value)
	require.Negative(t, set[0].MaxAge)
	require.True(t, set[0].HttpOnly)
}
