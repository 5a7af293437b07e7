package handlers

import (
	"net/http"

	"koon/models"
	"koon/services/content"
	"koon/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TestimonialHandler manages visitor testimonials.
type TestimonialHandler struct {
	Service content.ContentService
}

// NewTestimonialHandler creates a new TestimonialHandler.
func NewTestimonialHandler(svc content.ContentService) *TestimonialHandler {
	return &TestimonialHandler{Service: svc}
}

// SubmitTestimonialHandler handles POST /api/testimonials (public).
func (h *TestimonialHandler) SubmitTestimonialHandler(c *gin.Context) {
	var t models.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimonial payload"})
		return
	}
	id, err := h.Service.SubmitTestimonial(c.Request.Context(), t)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetApprovedTestimonialsHandler handles GET /api/testimonials (public).
func (h *TestimonialHandler) GetApprovedTestimonialsHandler(c *gin.Context) {
	testimonials, err := h.Service.GetApprovedTestimonials(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to fetch approved testimonials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// GetAllTestimonialsHandler handles GET /api/admin/testimonials.
func (h *TestimonialHandler) GetAllTestimonialsHandler(c *gin.Context) {
	testimonials, err := h.Service.GetAllTestimonials(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to fetch testimonials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// SetTestimonialStatusHandler handles PUT /api/admin/testimonials/:id/status.
func (h *TestimonialHandler) SetTestimonialStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if err := h.Service.SetTestimonialStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// DeleteTestimonialHandler handles DELETE /api/admin/testimonials/:id.
func (h *TestimonialHandler) DeleteTestimonialHandler(c *gin.Context) {
	if err := h.Service.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}
