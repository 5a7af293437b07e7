package handlers

import (
	"net/http"

	"koon/models"
	"koon/services/analytics"
	"koon/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalyticsHandler logs page views and serves the admin stats page.
type AnalyticsHandler struct {
	Service analytics.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(svc analytics.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: svc}
}

// LogPageViewHandler handles POST /api/analytics/views (public).
func (h *AnalyticsHandler) LogPageViewHandler(c *gin.Context) {
	var view models.PageView
	if err := c.ShouldBindJSON(&view); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page view payload"})
		return
	}
	if err := h.Service.LogPageView(c.Request.Context(), view); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "View logged"})
}

// GetStatsHandler handles GET /api/admin/analytics/stats.
func (h *AnalyticsHandler) GetStatsHandler(c *gin.Context) {
	stats, err := h.Service.GetStats(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to assemble analytics stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
