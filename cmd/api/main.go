package main

import (
	"contact-book-backend/config"
	_ "contact-book-backend/docs" // Important for Swagger
	v1 "contact-book-backend/internal/delivery/http/v1"
	"contact-book-backend/internal/repository"
	"contact-book-backend/internal/usecase"
	"contact-book-backend/pkg/logger"
	"contact-book-backend/pkg/validation"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

// @title           Contact Book API
// @version         1.0
// @description     CRUD API for contacts (name, email, phone) with a single-page frontend fallback.
// @host            localhost:3000
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	logger.Log.Info("Starting contact book backend", "port", cfg.Port, "store", cfg.StoreDriver)

	// 3. Setup Store
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 15*time.Second)
	contactRepo, closeStore, err := repository.New(connectCtx, repository.Config{
		Driver:      cfg.StoreDriver,
		DatabaseURL: cfg.DBUrl,
		Table:       cfg.ContactsTable,
		MaxConns:    cfg.DBMaxConns,
	})
	cancelConnect()
	if err != nil {
		logger.Log.Error("Failed to connect to store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// 4. Setup UseCases
	contactUC := usecase.NewContactUsecase(contactRepo, validation.New())
	healthUC := usecase.NewHealthUsecase(contactRepo)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:      contactUC,
		HealthUC:       healthUC,
		PublicDir:      cfg.PublicDir,
		AllowedOrigins: []string{cfg.FrontendURL},
		Logger:         logger.Log,
		Metrics:        metrics.NewSet(),
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		logger.Log.Info("Shutting down server...")
	case err := <-serveErr:
		logger.Log.Error("Listen failed", "error", err)
		closeStore()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
