// Package main initializes and starts the dashboard API server, setting
// up configuration, logging, the database connection, repositories,
// services, and handlers.
package main

import (
	"context"
	"fmt"

	nethttp "net/http"

	"github.com/linkboard/linkboard/internal/config"
	"github.com/linkboard/linkboard/internal/db"
	"github.com/linkboard/linkboard/internal/logger"
	"github.com/linkboard/linkboard/internal/repository"
	"github.com/linkboard/linkboard/internal/server/handler/http"
	"github.com/linkboard/linkboard/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Print build metadata (or "N/A" if unset).
	buildVersion := version
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	buildTimestamp := buildDate
	if buildTimestamp == "" {
		buildTimestamp = "N/A"
	}
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildTimestamp)

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Read required environment configuration; refuse to start without it.
	options, err := config.Parse()
	if err != nil {
		zapLogger.Fatal("invalid configuration", zap.Error(err))
	}

	// Initialize PostgreSQL connection and bootstrap the schema.
	postgresDB, err := db.InitPostgres(options.DSN())
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories for items and category ordering.
	itemRepo := repository.NewPostgresItemRepository(postgresDB)
	categoryRepo := repository.NewPostgresCategoryOrderRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(options.AdminUsername, options.AdminPassword, options.AdminToken)
	categoryService := service.NewCategoryService(categoryRepo)
	itemService := service.NewItemService(itemRepo, categoryService)
	transferService := service.NewTransferService(itemRepo)

	// Reconcile the category layout with the items on disk; a previous
	// bulk import may have introduced categories without layout entries.
	if err := categoryService.Sync(context.Background()); err != nil {
		zapLogger.Warn("category order sync failed", zap.Error(err))
	}

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	itemHandler := &http.ItemHandler{ItemService: itemService}
	categoryHandler := &http.CategoryHandler{CategoryService: categoryService}
	transferHandler := &http.TransferHandler{TransferService: transferService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, itemHandler, categoryHandler, transferHandler, authService, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
