package handlers

import (
	"net/http"

	"koon/models"
	"koon/services/content"
	"koon/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UpdateHandler manages site-wide announcements.
type UpdateHandler struct {
	Service content.ContentService
}

// NewUpdateHandler creates a new UpdateHandler.
func NewUpdateHandler(svc content.ContentService) *UpdateHandler {
	return &UpdateHandler{Service: svc}
}

// GetAllUpdatesHandler handles GET /api/updates (public).
func (h *UpdateHandler) GetAllUpdatesHandler(c *gin.Context) {
	updates, err := h.Service.GetAllUpdates(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to fetch updates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updates"})
		return
	}
	c.JSON(http.StatusOK, updates)
}

// CreateUpdateHandler handles POST /api/admin/updates.
func (h *UpdateHandler) CreateUpdateHandler(c *gin.Context) {
	var u models.SiteUpdate
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update payload"})
		return
	}
	id, err := h.Service.CreateUpdate(c.Request.Context(), u)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// EditUpdateHandler handles PUT /api/admin/updates/:id.
func (h *UpdateHandler) EditUpdateHandler(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update payload"})
		return
	}
	if err := h.Service.EditUpdate(c.Request.Context(), c.Param("id"), fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Update saved"})
}

// DeleteUpdateHandler handles DELETE /api/admin/updates/:id.
func (h *UpdateHandler) DeleteUpdateHandler(c *gin.Context) {
	if err := h.Service.DeleteUpdate(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Update deleted"})
}
