// File: middleware/device_gate.go
package middleware

import (
	"net/http"

	"koon/services/pairing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeviceKeyHeader carries the device marker the dashboard keeps in its
// durable local storage.
const DeviceKeyHeader = "X-Device-Key"

// DeviceGateMiddleware re-evaluates the device gate on every request to a
// protected route. The verdict is never cached: a request is authorized only
// if the presented key's SHA-256 digest matches the expected one.
func DeviceGateMiddleware(gate pairing.DeviceGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				zap.L().Error("DeviceGateMiddleware: panic recovered", zap.Any("panic", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  0,
				})
			}
		}()

		marker := c.GetHeader(DeviceKeyHeader)
		verdict := gate.Check(marker)
		if verdict != pairing.GateAuthorized {
			zap.L().Warn("DeviceGateMiddleware: device denied", zap.String("ip", getClientIP(c)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":  "Access Denied: Unrecognized Device ID.",
				"status": string(verdict),
			})
			return
		}

		c.Set("deviceAuthorized", true)
		c.Next()
	}
}
