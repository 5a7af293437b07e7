package handlers

import (
	"net/http"

	adminRepo "koon/database/repository/admin"
	"koon/services/content"
	"koon/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the dashboard summary and the audit trail.
type DashboardHandler struct {
	Content content.ContentService
	Admins  adminRepo.AdminRepository
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc content.ContentService, admins adminRepo.AdminRepository) *DashboardHandler {
	return &DashboardHandler{Content: svc, Admins: admins}
}

// GetSummaryHandler handles GET /api/admin/dashboard.
func (h *DashboardHandler) GetSummaryHandler(c *gin.Context) {
	summary, err := h.Content.GetDashboardSummary(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to assemble dashboard summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetAuditTrailHandler handles GET /api/admin/audit.
func (h *DashboardHandler) GetAuditTrailHandler(c *gin.Context) {
	events, err := h.Admins.RecentAudits(c.Request.Context(), 100)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch audit events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch audit trail"})
		return
	}
	c.JSON(http.StatusOK, events)
}
