package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/config"
	"github.com/lexdesk/lexdesk/internal/store"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			RequestTimeout: 30 * time.Second,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Demo: config.DemoConfig{
			UserID: 1,
		},
	}
}

// newTestServer wires a fresh store through the real router.
func newTestServer(t *testing.T, seed bool) http.Handler {
	t.Helper()

	st := store.NewMemStore()
	if seed {
		require.NoError(t, store.Seed(context.Background(), st))
	}
	return api.NewRouter(testConfig(), st)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}
