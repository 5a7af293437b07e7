package handlers

import (
	"net/http"

	"koon/models"
	"koon/services/content"
	"koon/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QnaHandler manages visitor suggestions and question reports.
type QnaHandler struct {
	Service content.ContentService
}

// NewQnaHandler creates a new QnaHandler.
func NewQnaHandler(svc content.ContentService) *QnaHandler {
	return &QnaHandler{Service: svc}
}

// SubmitSuggestionHandler handles POST /api/qna (public).
func (h *QnaHandler) SubmitSuggestionHandler(c *gin.Context) {
	var sug models.Suggestion
	if err := c.ShouldBindJSON(&sug); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid suggestion payload"})
		return
	}
	id, err := h.Service.SubmitSuggestion(c.Request.Context(), sug)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetAllSuggestionsHandler handles GET /api/admin/qna.
func (h *QnaHandler) GetAllSuggestionsHandler(c *gin.Context) {
	suggestions, err := h.Service.GetAllSuggestions(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to fetch suggestions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suggestions"})
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// ReplySuggestionHandler handles PUT /api/admin/qna/:id/reply.
func (h *QnaHandler) ReplySuggestionHandler(c *gin.Context) {
	var req struct {
		Reply string `json:"reply" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reply is required"})
		return
	}
	if err := h.Service.ReplyToSuggestion(c.Request.Context(), c.Param("id"), req.Reply); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reply saved"})
}

// SetSuggestionPublicHandler handles PUT /api/admin/qna/:id/public.
func (h *QnaHandler) SetSuggestionPublicHandler(c *gin.Context) {
	var req struct {
		Public bool `json:"public"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	if err := h.Service.SetSuggestionPublic(c.Request.Context(), c.Param("id"), req.Public); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Visibility updated"})
}

// DeleteSuggestionHandler handles DELETE /api/admin/qna/:id.
func (h *QnaHandler) DeleteSuggestionHandler(c *gin.Context) {
	if err := h.Service.DeleteSuggestion(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Suggestion deleted"})
}

// SubmitReportHandler handles POST /api/reports (public).
func (h *QnaHandler) SubmitReportHandler(c *gin.Context) {
	var report models.QuestionReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report payload"})
		return
	}
	id, err := h.Service.SubmitReport(c.Request.Context(), report)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetAllReportsHandler handles GET /api/admin/reports.
func (h *QnaHandler) GetAllReportsHandler(c *gin.Context) {
	reports, err := h.Service.GetAllReports(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to fetch reports", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

// ResolveReportHandler handles PUT /api/admin/reports/:id/resolve.
func (h *QnaHandler) ResolveReportHandler(c *gin.Context) {
	if err := h.Service.ResolveReport(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report resolved"})
}

// DeleteReportHandler handles DELETE /api/admin/reports/:id.
func (h *QnaHandler) DeleteReportHandler(c *gin.Context) {
	if err := h.Service.DeleteReport(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report deleted"})
}
