package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/harborview/doorstep/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(t *testing.T, h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitAllowsUnderLimit(t *testing.T) {
	t.Parallel()

	cfg := httpx.RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}
	h := httpx.RateLimitByIP(cfg)(okHandler())

	for i := range 5 {
		rec := doRequest(t, h, "10.0.0.1:1234")
		require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}
}

func TestRateLimitBlocksOverLimit(t *testing.T) {
	t.Parallel()

	cfg := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	h := httpx.RateLimitByIP(cfg)(okHandler())

	doRequest(t, h, "10.0.0.2:1234")
	doRequest(t, h, "10.0.0.2:1234")
	rec := doRequest(t, h, "10.0.0.2:1234")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimitIsolatesKeys(t *testing.T) {
	t.Parallel()

	cfg := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	h := httpx.RateLimitByIP(cfg)(okHandler())

	require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.1.1:1").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(t, h, "10.0.1.1:1").Code)

	// A different client is unaffected.
	require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.1.2:1").Code)
}

func TestIPKeyExtractorHonoursForwardingHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	require.Equal(t, "127.0.0.1", httpx.IPKeyExtractor(req))

	req.Header.Set("X-Real-IP", "203.0.113.9")
	require.Equal(t, "203.0.113.9", httpx.IPKeyExtractor(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.4, 203.0.113.9")
	require.Equal(t, "198.51.100.4", httpx.IPKeyExtractor(req))
}

func TestRateLimitByIdentityFallsBackToIP(t *testing.T) {
	t.Parallel()

	cfg := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	h := httpx.RateLimitByIdentity(cfg)(okHandler())

	withIdentity := func(id, addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = addr
		if id != "" {
			req = req.WithContext(context.WithValue(req.Context(), httpx.CtxKeyIdentityID, id))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	// Same IP, different identities: independent buckets.
	require.Equal(t, http.StatusOK, withIdentity("agent-a", "10.2.0.1:1").Code)
	require.Equal(t, http.StatusOK, withIdentity("agent-b", "10.2.0.1:1").Code)
	require.Equal(t, http.StatusTooManyRequests, withIdentity("agent-a", "10.2.0.1:1").Code)

	// Anonymous requests fall back to the IP bucket.
	require.Equal(t, http.StatusOK, withIdentity("", "10.2.0.2:1").Code)
	require.Equal(t, http.StatusTooManyRequests, withIdentity("", "10.2.0.2:1").Code)
}
