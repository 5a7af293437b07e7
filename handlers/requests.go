package handlers

import (
	"net/http"

	"koon/models"
	"koon/services/content"
	"koon/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestHandler manages student service requests.
type RequestHandler struct {
	Service content.ContentService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(svc content.ContentService) *RequestHandler {
	return &RequestHandler{Service: svc}
}

// SubmitRequestHandler handles POST /api/requests (public).
func (h *RequestHandler) SubmitRequestHandler(c *gin.Context) {
	var r models.ServiceRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	id, err := h.Service.SubmitRequest(c.Request.Context(), r)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetAllRequestsHandler handles GET /api/admin/requests.
func (h *RequestHandler) GetAllRequestsHandler(c *gin.Context) {
	requests, err := h.Service.GetAllRequests(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to fetch requests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// SetRequestStatusHandler handles PUT /api/admin/requests/:id/status.
func (h *RequestHandler) SetRequestStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if err := h.Service.SetRequestStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// DeleteRequestHandler handles DELETE /api/admin/requests/:id.
func (h *RequestHandler) DeleteRequestHandler(c *gin.Context) {
	if err := h.Service.DeleteRequest(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request deleted"})
}
