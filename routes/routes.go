package routes

import (
	"net/http"
	"time"

	"koon/handlers"
	"koon/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the student-site-facing endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/qna", hb.Qna.SubmitSuggestionHandler)
		api.POST("/reports", hb.Qna.SubmitReportHandler)
		api.POST("/testimonials", hb.Testimonials.SubmitTestimonialHandler)
		api.GET("/testimonials", hb.Testimonials.GetApprovedTestimonialsHandler)
		api.POST("/subscribers", hb.Subscribers.SubscribeHandler)
		api.POST("/donations", hb.Donations.SubmitDonationHandler)
		api.GET("/updates", hb.Updates.GetAllUpdatesHandler)
		api.POST("/requests", hb.Requests.SubmitRequestHandler)
		api.POST("/analytics/views", hb.Analytics.LogPageViewHandler)
	}
}

// RegisterAuthRoutes registers operator sign-in and sign-out.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.SignInHandler)
		api.POST("/logout", middleware.JWTAuthAdminMiddleware(), hb.Auth.SignOutHandler)
	}
}

// RegisterPairingRoutes registers the device pairing endpoints. The verifier
// and the recovery path are reachable without the gate; the issuer is not.
func RegisterPairingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/admin-connect", hb.Pairing.VerifyTokenHandler)
	r.POST("/api/device/recover", hb.Pairing.RecoverDeviceHandler)
}

// RegisterAdminRoutes registers the protected dashboard endpoints. Every
// request passes the device gate first, then the admin session check.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.DeviceGateMiddleware(hb.Gate))
	admin.Use(middleware.JWTAuthAdminMiddleware())
	{
		admin.POST("/pairing/token", hb.Pairing.IssueTokenHandler)

		admin.GET("/dashboard", hb.Dashboard.GetSummaryHandler)
		admin.GET("/audit", hb.Dashboard.GetAuditTrailHandler)

		admin.GET("/qna", hb.Qna.GetAllSuggestionsHandler)
		admin.PUT("/qna/:id/reply", hb.Qna.ReplySuggestionHandler)
		admin.PUT("/qna/:id/public", hb.Qna.SetSuggestionPublicHandler)
		admin.DELETE("/qna/:id", hb.Qna.DeleteSuggestionHandler)

		admin.GET("/reports", hb.Qna.GetAllReportsHandler)
		admin.PUT("/reports/:id/resolve", hb.Qna.ResolveReportHandler)
		admin.DELETE("/reports/:id", hb.Qna.DeleteReportHandler)

		admin.GET("/testimonials", hb.Testimonials.GetAllTestimonialsHandler)
		admin.PUT("/testimonials/:id/status", hb.Testimonials.SetTestimonialStatusHandler)
		admin.DELETE("/testimonials/:id", hb.Testimonials.DeleteTestimonialHandler)

		admin.GET("/subscribers", hb.Subscribers.GetAllSubscribersHandler)
		admin.DELETE("/subscribers/:id", hb.Subscribers.DeleteSubscriberHandler)

		admin.GET("/donations", hb.Donations.GetAllDonationsHandler)
		admin.PUT("/donations/:id/status", hb.Donations.SetDonationStatusHandler)
		admin.POST("/donations/:id/photo", hb.Donations.UploadDonationPhotoHandler)
		admin.DELETE("/donations/:id", hb.Donations.DeleteDonationHandler)

		admin.POST("/updates", hb.Updates.CreateUpdateHandler)
		admin.PUT("/updates/:id", hb.Updates.EditUpdateHandler)
		admin.DELETE("/updates/:id", hb.Updates.DeleteUpdateHandler)

		admin.GET("/requests", hb.Requests.GetAllRequestsHandler)
		admin.PUT("/requests/:id/status", hb.Requests.SetRequestStatusHandler)
		admin.DELETE("/requests/:id", hb.Requests.DeleteRequestHandler)

		admin.GET("/analytics/stats", hb.Analytics.GetStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm KOON Admin"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Device-Key", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterPairingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
