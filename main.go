// File: koon/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"koon/config"
	"koon/cron"
	"koon/database"
	adminRepoPkg "koon/database/repository/admin"
	analyticsRepoPkg "koon/database/repository/analytics"
	contentRepoPkg "koon/database/repository/content"
	tokensRepoPkg "koon/database/repository/tokens"
	"koon/handlers"
	"koon/middleware"
	"koon/routes"
	"koon/services/analytics"
	"koon/services/auth"
	"koon/services/content"
	"koon/services/notify"
	"koon/services/pairing"
	"koon/services/storage"
	"koon/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitCredentialsCache()
	utils.FirebaseInit()

	var storageService storage.StorageService
	if svc, err := utils.Cloudinary(); err != nil {
		logger.Sugar().Warnf("main: photo storage disabled: %v", err)
	} else {
		storageService = svc
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.ClientIPMiddleware())

	// repositories.
	tokenRepo := tokensRepoPkg.NewMongoTokenRepo()
	contRepo := contentRepoPkg.NewMongoContentRepo()
	analyticsRepo := analyticsRepoPkg.NewMongoAnalyticsRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()

	// services.
	gate := pairing.DeviceGate{ExpectedDigest: config.AppConfig.DeviceKeyDigest}
	pairingService := &pairing.DefaultPairingService{
		Repo:        tokenRepo,
		Credentials: pairing.NewRedisCredentialStore(utils.GetCredentialsCacheClient()),
		AdminRepo:   adminRepo,
		Gate:        gate,
		Origin:      config.AppConfig.PublicOrigin,
		DeviceKey:   config.AppConfig.DeviceKey,
	}

	contentService := &content.DefaultContentService{
		Repo:     contRepo,
		Notifier: notify.NewFCMNotificationService(),
	}

	analyticsService := &analytics.DefaultAnalyticsService{
		Repo:  analyticsRepo,
		Cache: utils.GetCacheClient(),
	}

	authService := &auth.DefaultAuthService{
		Repo:            adminRepo,
		Sessions:        utils.GetAuthCacheClient(),
		AllowLocalAdmin: config.AppConfig.AllowLocalAdmin,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Gate:         gate,
		Auth:         handlers.NewAuthHandler(authService),
		Pairing:      handlers.NewPairingHandler(pairingService),
		Qna:          handlers.NewQnaHandler(contentService),
		Testimonials: handlers.NewTestimonialHandler(contentService),
		Subscribers:  handlers.NewSubscriberHandler(contentService),
		Donations:    handlers.NewDonationHandler(contentService, storageService),
		Updates:      handlers.NewUpdateHandler(contentService),
		Requests:     handlers.NewRequestHandler(contentService),
		Analytics:    handlers.NewAnalyticsHandler(analyticsService),
		Dashboard:    handlers.NewDashboardHandler(contentService, adminRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the expired-token sweep worker.
	cron.InitSweepWorker(tokenRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
