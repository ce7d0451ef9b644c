package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"infibot/config"
	"infibot/database"
	bookingRepo "infibot/database/repository/booking"
	userRepo "infibot/database/repository/user"
	"infibot/handlers"
	"infibot/middleware"
	"infibot/routes"
	"infibot/services/catalog"
	"infibot/services/conversation"
	ai "infibot/services/intelligence"
	"infibot/services/storage"
	"infibot/services/ticket"
	"infibot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	zap.ReplaceGlobals(logger)

	database.InitDB()
	utils.InitCatalogCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	users := userRepo.NewMongoUserRepo()
	bookings := bookingRepo.NewMongoBookingRepo()

	// Collaborator services.
	catalogSvc := catalog.NewDefaultCatalogService(utils.GetCatalogCacheClient(), 24*time.Hour)

	var generator ai.TextGenerator
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		gemini, err := ai.NewGeminiClient(key, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		generator = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set; conversation copy falls back to canned text")
	}
	writer := ai.NewDefaultChatWriter(generator)

	renderer := ticket.NewPDFRenderer(config.AppConfig.TicketSigningKey)

	assets, assetDir, err := buildAssetStore()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize asset store: %v", err)
	}

	manager := conversation.NewManager(conversation.Deps{
		Catalog:  catalogSvc,
		Writer:   writer,
		Renderer: renderer,
		Assets:   assets,
		Users:    users,
		Bookings: bookings,
		Logger:   logger,
	}, time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute)
	defer manager.Stop()

	// Handlers.
	chatHandler := handlers.NewChatHandler(manager, logger)
	bookingHandler := handlers.NewBookingHandler(bookings, logger)
	handlerBundle := handlers.NewHandlerBundle(chatHandler, bookingHandler)

	routes.RegisterRoutes(router, handlerBundle, assetDir)

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

// buildAssetStore picks the configured ticket asset backend. The second
// return is the directory to serve under /assets, empty for remote stores.
func buildAssetStore() (storage.AssetStore, string, error) {
	cfg := config.AppConfig
	if cfg.AssetStore == "cloudinary" {
		store, err := storage.NewCloudinaryAssetStore(
			cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, "tickets")
		return store, "", err
	}

	store, err := storage.NewLocalAssetStore(cfg.AssetDir, "/assets")
	if err != nil {
		return nil, "", err
	}
	return store, cfg.AssetDir, nil
}
