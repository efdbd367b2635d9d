package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("default level is info", func(t *testing.T) {
		log := Setup(false)
		require.Equal(t, zerolog.InfoLevel, log.GetLevel())
	})

	t.Run("dev enables debug", func(t *testing.T) {
		log := Setup(true)
		require.Equal(t, zerolog.DebugLevel, log.GetLevel())
	})
}

func TestHTTPRequests(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	handler := HTTPRequests(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Contains(t, buf.String(), `"status":418`)
	require.Contains(t, buf.String(), `"path":"/api/v1/services"`)
	require.Contains(t, buf.String(), `"request_id"`)
}
