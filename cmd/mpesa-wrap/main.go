package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mpesa-wrap/internal/analytics"
	"mpesa-wrap/internal/api"
	"mpesa-wrap/internal/api/handlers"
	"mpesa-wrap/internal/pdf"
	"mpesa-wrap/internal/service"
	"mpesa-wrap/internal/statement"
	"mpesa-wrap/pkg/auth"
	"mpesa-wrap/pkg/config"
	"mpesa-wrap/pkg/logger"
	"mpesa-wrap/pkg/metrics"

	"go.uber.org/zap"
)

// @title M-Pesa Wrap API
// @version 1.0
// @description In-memory M-Pesa statement parsing and spending analytics

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting M-Pesa Wrap service")

	if cfg.Metrics.Enabled {
		metrics.Init()
	}

	var jwtManager *auth.JWTManager
	if cfg.Auth.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.Auth.JWTSecret)
	}

	// Initialize services
	costRules := analytics.NewCostRules(cfg.Analytics.CostKeywords)
	appLogger.Info("Transaction cost rules loaded", zap.Strings("keywords", costRules.Keywords()))

	statementService := service.NewStatementService(
		pdf.NewFitzOpener(logger.Named("pdf"), statement.SummaryHeader, statement.LedgerHeader),
		statement.NewParser(logger.Named("parser")),
		analytics.NewEngine(costRules),
		logger.Named("statement"),
	)

	// Initialize handlers
	statementHandler := handlers.NewStatementHandler(statementService, appLogger)

	// Setup router
	app := api.SetupRouter(cfg, statementHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
