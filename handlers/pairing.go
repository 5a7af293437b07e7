// File: koon/handlers/pairing.go
package handlers

import (
	"net/http"

	"koon/services/pairing"
	"koon/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PairingHandler exposes the device pairing protocol: token issuance on the
// primary device, verification on the secondary one, and the audited
// recovery path.
type PairingHandler struct {
	Service pairing.PairingService
}

// NewPairingHandler creates a new PairingHandler.
func NewPairingHandler(svc pairing.PairingService) *PairingHandler {
	return &PairingHandler{Service: svc}
}

// IssueTokenHandler handles POST /api/admin/pairing/token. The route sits
// behind both the device gate and the admin session, so only an already
// authorized device can mint tokens.
func (h *PairingHandler) IssueTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()

	resp, err := h.Service.IssueToken(c.Request.Context())
	if err != nil {
		logger.Error("IssueTokenHandler: failed to issue token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyTokenHandler handles GET /admin-connect. The scanning device lands
// here with ?token=...; every failure cause returns the same error payload.
func (h *PairingHandler) VerifyTokenHandler(c *gin.Context) {
	token := c.Query("token")
	deviceID := c.GetHeader("X-Device-ID")
	if deviceID == "" {
		deviceID = getContextIP(c)
	}

	resp, err := h.Service.Verify(c.Request.Context(), token, deviceID)
	if err != nil {
		// Cause already logged by the service; the client only sees "error".
		c.JSON(http.StatusUnauthorized, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecoverDeviceHandler handles POST /api/device/recover, the audited
// break-glass path for a lost device key.
func (h *PairingHandler) RecoverDeviceHandler(c *gin.Context) {
	var req struct {
		MasterKey string `json:"masterKey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "masterKey is required"})
		return
	}

	resp, err := h.Service.RecoverDevice(c.Request.Context(), req.MasterKey, getContextIP(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func getContextIP(c *gin.Context) string {
	if ip, ok := c.Get("clientIP"); ok {
		if s, ok := ip.(string); ok {
			return s
		}
	}
	return c.ClientIP()
}
