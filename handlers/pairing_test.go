package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"koon/models"
	"koon/services/pairing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPairingService struct {
	issued    *models.IssueResponse
	verify    func(token, deviceID string) (*models.VerifyResponse, error)
	recover   func(key, ip string) (*models.VerifyResponse, error)
	lastToken string
}

func (s *stubPairingService) IssueToken(context.Context) (*models.IssueResponse, error) {
	return s.issued, nil
}

func (s *stubPairingService) Verify(_ context.Context, token, deviceID string) (*models.VerifyResponse, error) {
	s.lastToken = token
	return s.verify(token, deviceID)
}

func (s *stubPairingService) RecoverDevice(_ context.Context, key, ip string) (*models.VerifyResponse, error) {
	return s.recover(key, ip)
}

func TestVerifyTokenHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &stubPairingService{
		verify: func(token, _ string) (*models.VerifyResponse, error) {
			if token == "good" {
				return &models.VerifyResponse{
					Status:        "success",
					DeviceKey:     "KEY",
					RedirectTo:    "/admin/dashboard",
					RedirectAfter: 2,
				}, nil
			}
			return &models.VerifyResponse{Status: "error"}, pairing.ErrTokenNotFound
		},
	}
	router := gin.New()
	h := NewPairingHandler(stub)
	router.GET("/admin-connect", h.VerifyTokenHandler)

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin-connect?token=good", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body models.VerifyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "success", body.Status)
		assert.Equal(t, "KEY", body.DeviceKey)
		assert.Equal(t, "/admin/dashboard", body.RedirectTo)
		assert.Equal(t, 2, body.RedirectAfter)
	})

	t.Run("bad token returns opaque error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin-connect?token=bad", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		var body models.VerifyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "error", body.Status)
		assert.Empty(t, body.DeviceKey)
	})

	t.Run("missing token forwarded as empty", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin-connect", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "", stub.lastToken)
	})
}

func TestRecoverDeviceHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &stubPairingService{
		recover: func(key, _ string) (*models.VerifyResponse, error) {
			if key == "MASTER" {
				return &models.VerifyResponse{Status: "success", DeviceKey: key}, nil
			}
			return &models.VerifyResponse{Status: "error"}, pairing.ErrDigestMismatch
		},
	}
	router := gin.New()
	h := NewPairingHandler(stub)
	router.POST("/api/device/recover", h.RecoverDeviceHandler)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/device/recover", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("correct master key", func(t *testing.T) {
		w := post(`{"masterKey":"MASTER"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong master key", func(t *testing.T) {
		w := post(`{"masterKey":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing body", func(t *testing.T) {
		w := post(`{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
