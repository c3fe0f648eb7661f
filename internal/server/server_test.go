package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lkacz/PersonalFreedom-sub001/internal/event"
	"github.com/lkacz/PersonalFreedom-sub001/internal/item"
	"github.com/lkacz/PersonalFreedom-sub001/internal/profile"
	"github.com/lkacz/PersonalFreedom-sub001/internal/repository"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"version": "1.0",
		"items": [
			{"name": "Rusty Sword", "slot": "weapon", "rarity": "COMMON", "base_power": 10}
		]
	}`), 0o600))

	catalog, err := item.NewCatalog(path, 32, time.Minute)
	require.NoError(t, err)

	gateway := repository.NewMemoryGateway()
	bus := event.NewMemoryBus()
	svc := profile.NewService(gateway, bus, catalog, 0)

	srv := NewServer(0, nil, svc, catalog)
	return srv.httpServer.Handler
}

func TestServerRoutes(t *testing.T) {
	h := newTestServer(t)

	t.Run("healthz", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("readyz without database", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("award then read state", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"profile_id": "profile-123",
			"item_name":  "Rusty Sword",
			"coins":      50,
			"xp":         120,
		})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/rewards/award", bytes.NewBuffer(body)))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/state?profile_id=profile-123", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"coins":50`)
		assert.Contains(t, w.Body.String(), "Rusty Sword")
	})

	t.Run("state without profile id is a bad request", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/state", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
