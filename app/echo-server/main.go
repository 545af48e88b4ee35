package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quoteOptimizer/app/echo-server/router"
	"quoteOptimizer/business/history"
	"quoteOptimizer/business/selection"
	"quoteOptimizer/domain"
	"quoteOptimizer/internal/middleware"
	"quoteOptimizer/internal/repository/memory"
	psqlRepo "quoteOptimizer/internal/repository/postgres"
	"quoteOptimizer/internal/rest"
	"quoteOptimizer/pkg/config"
	"quoteOptimizer/pkg/database"
	"quoteOptimizer/pkg/logger"
	"quoteOptimizer/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Init(logger.Config{
		Environment:    cfg.App.Environment,
		Level:          cfg.Log.Level,
		Format:         cfg.Log.Format,
		FileEnabled:    cfg.Log.FileEnabled,
		FilePath:       cfg.Log.FilePath,
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
	})
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version)

	metrics.Init()

	engine, err := selection.Open(cfg.Model.Path, cfg.Model.MarginFloor)
	if err != nil {
		logger.Fatal("Failed to load estimator", "path", cfg.Model.Path, err)
	}

	// Init repo
	var selectionRepo history.SelectionRepository
	switch cfg.History.Store {
	case config.HistoryStorePostgres:
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", err)
		}
		if err := db.AutoMigrate(&domain.SelectionRecord{}); err != nil {
			logger.Fatal("Failed to migrate selection_records", err)
		}
		logger.Info("Database connected successfully")
		selectionRepo = psqlRepo.NewSelectionRepository(db)
	default:
		logger.Warn("Selection history kept in memory; it is lost on restart")
		selectionRepo = memory.NewSelectionRepository()
	}

	// Init service
	historyService := history.NewService(selectionRepo)

	// Init handler
	selectionHandler := rest.NewSelectionHandler(engine, historyService)
	estimatorHandler := rest.NewEstimatorHandler(engine)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.BodyLimit("10M"))
	e.Use(middleware.Metrics())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	if cfg.JWT.SecretKey == "" {
		logger.Warn("JWT_SECRET not set; selection history is readable without a token")
	}
	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)

	// Setup routes
	router.SetupOpsRoutes(e, cfg.App.Name, cfg.App.Version)
	api := e.Group("/api/v1")
	router.SetupSelectionRoutes(api, selectionHandler, authRequired)
	router.SetupEstimatorRoutes(api, estimatorHandler)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}
