package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"mpesa-wrap/internal/analytics"
	"mpesa-wrap/internal/pdf"
	"mpesa-wrap/internal/service"
	"mpesa-wrap/internal/statement"
	"mpesa-wrap/pkg/config"
	"mpesa-wrap/pkg/logger"

	"go.uber.org/zap"
)

// Exit codes mirror the HTTP error classes.
const (
	exitUsage          = 2
	exitAuthentication = 3
	exitMalformed      = 4
	exitInternal       = 1
)

func main() {
	file := flag.String("file", "", "path to the M-Pesa statement PDF")
	password := flag.String("password", "", "statement password")
	pretty := flag.Bool("pretty", false, "indent JSON output")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(exitUsage)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(exitUsage)
	}
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(exitUsage)
	}
	defer logger.Sync()

	data, err := os.ReadFile(*file)
	if err != nil {
		logger.Error("Failed to read statement", zap.String("file", *file), zap.Error(err))
		os.Exit(exitUsage)
	}

	svc := service.NewStatementService(
		pdf.NewFitzOpener(logger.Named("pdf"), statement.SummaryHeader, statement.LedgerHeader),
		statement.NewParser(logger.Named("parser")),
		analytics.NewEngine(analytics.NewCostRules(cfg.Analytics.CostKeywords)),
		logger.Named("statement"),
	)

	analysis, err := svc.AnalyzeStatement(context.Background(), data, *password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(exitCode(err))
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(analysis); err != nil {
		logger.Error("Failed to write analysis", zap.Error(err))
		os.Exit(exitInternal)
	}
}

func exitCode(err error) int {
	var stmtErr *service.StatementError
	if !errors.As(err, &stmtErr) {
		return exitInternal
	}
	switch stmtErr.Kind {
	case service.KindAuthentication:
		return exitAuthentication
	case service.KindMalformed:
		return exitMalformed
	default:
		return exitInternal
	}
}
