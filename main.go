package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"hotelops/config"
	"hotelops/controllers"
	"hotelops/metrics"
	"hotelops/routes"
	"hotelops/services"
	"hotelops/store"
)

const serviceName = "hotelops"

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()

	logger, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		log.Fatalf("❌ logger init failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	docs := openStore(cfg, logger).WithMetrics(m)

	var ocr services.OCRProvider = services.StubOCR{}
	if cfg.AigenAPIKey != "" && cfg.AigenEndpoint != "" {
		ocr = services.NewAigenOCR(cfg.AigenEndpoint, cfg.AigenAPIKey, logger.Named("ocr"))
		logger.Info("OCR provider configured", zap.String("endpoint", cfg.AigenEndpoint))
	} else {
		logger.Info("OCR provider not configured; using stub extraction")
	}

	// Initialize services
	guestService := services.NewGuestService(docs, logger.Named("guests"))
	bookingService := services.NewBookingService(docs, logger.Named("bookings"))
	documentService := services.NewDocumentService(docs, ocr, logger.Named("documents"))
	notificationService := services.NewNotificationService(docs, services.StubMessenger{Logger: logger.Named("messaging")}, logger.Named("notifications"))
	healthService := services.NewHealthService(docs)

	// Build router
	router := routes.SetupRouter(routes.Controllers{
		Guest:        controllers.NewGuestController(guestService),
		Booking:      controllers.NewBookingController(bookingService),
		Document:     controllers.NewDocumentController(documentService, logger.Named("documents")),
		Notification: controllers.NewNotificationController(notificationService),
		Health:       controllers.NewHealthController(healthService),
	}, routes.Options{
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger.Named("http"),
		Metrics:     m,
		Gatherer:    registry,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("🚀 server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("ListenAndServe failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("⚠️  shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	docs.Close()

	logger.Info("✅ server stopped gracefully")
}

// openStore connects the document store. The process keeps serving without a
// database; data endpoints then answer 503 and /test reports the problem.
func openStore(cfg config.Config, logger *zap.Logger) *store.Adapter {
	storeLog := logger.Named("store")
	if !cfg.DatabaseConfigured() {
		logger.Warn("❌ DATABASE_URL not set; document store disabled")
		return store.Disabled(cfg.DatabaseName, storeLog)
	}

	db, dbName, err := config.ConnectDatabase(cfg, logger)
	if err != nil {
		logger.Error("❌ database connect failed; document store disabled", zap.Error(err))
		return store.Unreachable(cfg.DatabaseName, err, storeLog)
	}
	logger.Info("✅ database connection established", zap.String("database", dbName))
	return store.New(db, dbName, storeLog)
}
