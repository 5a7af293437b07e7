package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"koon/models"
	"koon/services/content"
	"koon/services/storage"
	"koon/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DonationHandler manages material donation offers.
type DonationHandler struct {
	Service content.ContentService
	Storage storage.StorageService
}

// NewDonationHandler creates a new DonationHandler.
func NewDonationHandler(svc content.ContentService, store storage.StorageService) *DonationHandler {
	return &DonationHandler{Service: svc, Storage: store}
}

// SubmitDonationHandler handles POST /api/donations (public).
func (h *DonationHandler) SubmitDonationHandler(c *gin.Context) {
	var d models.MaterialDonation
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donation payload"})
		return
	}
	id, err := h.Service.SubmitDonation(c.Request.Context(), d)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetAllDonationsHandler handles GET /api/admin/donations.
func (h *DonationHandler) GetAllDonationsHandler(c *gin.Context) {
	donations, err := h.Service.GetAllDonations(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to fetch donations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donations"})
		return
	}
	c.JSON(http.StatusOK, donations)
}

// SetDonationStatusHandler handles PUT /api/admin/donations/:id/status.
func (h *DonationHandler) SetDonationStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if err := h.Service.SetDonationStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// UploadDonationPhotoHandler handles POST /api/donations/:id/photo. The
// uploaded image lands in object storage; only its ID is kept on the record.
func (h *DonationHandler) UploadDonationPhotoHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if h.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Photo uploads are not configured"})
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("UploadDonationPhotoHandler: failed to buffer upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process upload"})
		return
	}
	defer os.Remove(tmpPath)

	photoID, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, "donations")
	if err != nil {
		logger.Error("UploadDonationPhotoHandler: upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo"})
		return
	}

	if err := h.Service.AttachDonationPhoto(c.Request.Context(), c.Param("id"), photoID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photoId": photoID})
}

// DeleteDonationHandler handles DELETE /api/admin/donations/:id.
func (h *DonationHandler) DeleteDonationHandler(c *gin.Context) {
	if err := h.Service.DeleteDonation(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Donation deleted"})
}
