package handlers

import (
	"net/http"

	"koon/services/content"
	"koon/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubscriberHandler manages the subscriber list.
type SubscriberHandler struct {
	Service content.ContentService
}

// NewSubscriberHandler creates a new SubscriberHandler.
func NewSubscriberHandler(svc content.ContentService) *SubscriberHandler {
	return &SubscriberHandler{Service: svc}
}

// SubscribeHandler handles POST /api/subscribers (public).
func (h *SubscriberHandler) SubscribeHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	id, err := h.Service.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetAllSubscribersHandler handles GET /api/admin/subscribers.
func (h *SubscriberHandler) GetAllSubscribersHandler(c *gin.Context) {
	subscribers, err := h.Service.GetAllSubscribers(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to fetch subscribers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscribers"})
		return
	}
	c.JSON(http.StatusOK, subscribers)
}

// DeleteSubscriberHandler handles DELETE /api/admin/subscribers/:id.
func (h *SubscriberHandler) DeleteSubscriberHandler(c *gin.Context) {
	if err := h.Service.DeleteSubscriber(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscriber deleted"})
}
