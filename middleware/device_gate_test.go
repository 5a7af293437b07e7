package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"koon/services/pairing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gateTestKey = "MAC_BOOK_PRO_SECURE_ID_9928374"

func newGatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	gate := pairing.DeviceGate{ExpectedDigest: pairing.DigestOf(gateTestKey)}
	router.GET("/admin/ping", DeviceGateMiddleware(gate), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestDeviceGateMiddleware(t *testing.T) {
	router := newGatedRouter()

	t.Run("authorized key passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set(DeviceKeyHeader, gateTestKey)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong key denied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set(DeviceKeyHeader, "SOME_OTHER_MACHINE")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Access Denied: Unrecognized Device ID.", body["error"])
		assert.Equal(t, "denied", body["status"])
	})

	t.Run("absent key denied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("verdict is not sticky across requests", func(t *testing.T) {
		ok := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		ok.Header.Set(DeviceKeyHeader, gateTestKey)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, ok)
		require.Equal(t, http.StatusOK, w.Code)

		bare := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, bare)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
