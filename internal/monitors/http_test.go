package monitors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sitewatch-dev/sitewatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/teapot":
			w.WriteHeader(http.StatusTeapot)
		case "/redirect-target":
			w.WriteHeader(http.StatusNoContent)
		case "/auth":
			if r.Header.Get("Authorization") != "Bearer token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusOK)
		case "/head-only":
			if r.Method != http.MethodHead {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	ctx := context.Background()

	t.Run("2xx is up by default", func(t *testing.T) {
		result := CheckHTTP(ctx, &types.HTTPConfig{URL: server.URL + "/ok"})

		assert.True(t, result.Success)
		assert.Equal(t, "200", result.Details)
		assert.NoError(t, result.Err)
	})

	t.Run("4xx is down by default", func(t *testing.T) {
		result := CheckHTTP(ctx, &types.HTTPConfig{URL: server.URL + "/teapot"})

		assert.False(t, result.Success)
		assert.Equal(t, "418", result.Details)
		assert.Error(t, result.Err)
	})

	t.Run("exact expected status match", func(t *testing.T) {
		result := CheckHTTP(ctx, &types.HTTPConfig{
			URL:            server.URL + "/teapot",
			ExpectedStatus: http.StatusTeapot,
		})

		assert.True(t, result.Success)
	})

	t.Run("expected status mismatch is down even when 2xx", func(t *testing.T) {
		result := CheckHTTP(ctx, &types.HTTPConfig{
			URL:            server.URL + "/ok",
			ExpectedStatus: http.StatusNoContent,
		})

		assert.False(t, result.Success)
		assert.Equal(t, "200", result.Details)
	})

	t.Run("headers are forwarded", func(t *testing.T) {
		result := CheckHTTP(ctx, &types.HTTPConfig{
			URL:     server.URL + "/auth",
			Headers: map[string]string{"Authorization": "Bearer token"},
		})

		assert.True(t, result.Success)
	})

	t.Run("custom method", func(t *testing.T) {
		result := CheckHTTP(ctx, &types.HTTPConfig{
			URL:    server.URL + "/head-only",
			Method: http.MethodHead,
		})

		assert.True(t, result.Success)
	})

	t.Run("unreachable target is down", func(t *testing.T) {
		result := CheckHTTP(ctx, &types.HTTPConfig{URL: "http://127.0.0.1:1/ok"})

		assert.False(t, result.Success)
		require.Error(t, result.Err)
	})

	t.Run("expired context is down", func(t *testing.T) {
		expired, cancel := context.WithTimeout(ctx, time.Nanosecond)
		defer cancel()
		<-expired.Done()

		result := CheckHTTP(expired, &types.HTTPConfig{URL: server.URL + "/ok"})

		assert.False(t, result.Success)
	})
}
