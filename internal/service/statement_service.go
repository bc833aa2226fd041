package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mpesa-wrap/internal/analytics"
	"mpesa-wrap/internal/dto"
	"mpesa-wrap/internal/models"
	"mpesa-wrap/internal/pdf"
	"mpesa-wrap/internal/statement"
	"mpesa-wrap/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StatementService struct {
	opener pdf.Opener
	parser *statement.Parser
	engine *analytics.Engine
	logger *zap.Logger
}

func NewStatementService(opener pdf.Opener, parser *statement.Parser, engine *analytics.Engine, logger *zap.Logger) *StatementService {
	return &StatementService{
		opener: opener,
		parser: parser,
		engine: engine,
		logger: logger,
	}
}

// AnalyzeStatement parses an in-memory statement and derives its analytics.
// Any failure is returned as a *StatementError. Nothing is retried.
func (s *StatementService) AnalyzeStatement(ctx context.Context, data []byte, password string) (analysis *dto.StatementAnalysis, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveAnalysis(resultLabel(err), time.Since(start))
	}()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Statement analysis panicked", zap.Any("panic", r))
			analysis, err = nil, newStatementError(fmt.Errorf("unexpected failure: %v", r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, newStatementError(err)
	}

	doc, err := s.opener.Open(data, password)
	if err != nil {
		s.logger.Warn("Failed to open statement", zap.Int("size", len(data)), zap.Error(err))
		return nil, newStatementError(err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			s.logger.Warn("Failed to close statement document", zap.Error(cerr))
		}
	}()

	result, err := s.parser.Parse(doc)
	if err != nil {
		s.logger.Warn("Failed to parse statement", zap.Error(err))
		return nil, newStatementError(err)
	}
	metrics.ObserveTransactionsParsed(len(result.Ledger))

	report := s.engine.Analyze(result.Ledger)
	analysis = buildAnalysis(uuid.New(), result, report)

	s.logger.Info("Statement analyzed",
		zap.String("analysis_id", analysis.AnalysisID),
		zap.Int("pages", doc.NumPages()),
		zap.Int("transactions", len(result.Ledger)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return analysis, nil
}

func buildAnalysis(id uuid.UUID, result *models.StatementResult, report analytics.Report) *dto.StatementAnalysis {
	txResponses := make([]dto.TransactionResponse, len(result.Ledger))
	for i, tx := range result.Ledger {
		txResponses[i] = dto.TransactionResponse{
			ReceiptNumber:     tx.ReceiptNumber,
			CompletionTime:    tx.CompletionTime,
			Details:           tx.Details,
			TransactionStatus: tx.TransactionStatus,
			PaidIn:            tx.PaidIn,
			Withdrawn:         tx.Withdrawn,
			Balance:           tx.Balance,
		}
	}

	summary := result.Summary
	if summary == nil {
		summary = make(map[string]models.SummaryEntry)
	}
	order := append([]string{}, result.SummaryOrder...)

	return &dto.StatementAnalysis{
		AnalysisID:           id.String(),
		CustomerName:         result.Header.CustomerName,
		PhoneNumber:          result.Header.PhoneNumber,
		Email:                result.Header.Email,
		StatementBeginDate:   result.Header.StatementBeginDate,
		StatementEndDate:     result.Header.StatementEndDate,
		Summary:              summary,
		SummaryOrder:         order,
		SoulMates:            report.SoulMates,
		TimeOfDaySpending:    report.TimeOfDay,
		DayVsWeekendSpending: report.WeekdayVsWeekend,
		WeekdaySpending:      report.Weekdays,
		TransactionCosts:     report.TransactionCosts,
		MonthlySpending:      report.Monthly,
		Transactions:         txResponses,
	}
}

func resultLabel(err error) string {
	var stmtErr *StatementError
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.As(err, &stmtErr) && stmtErr.Kind == KindAuthentication:
		return metrics.ResultAuthentication
	case errors.As(err, &stmtErr) && stmtErr.Kind == KindMalformed:
		return metrics.ResultMalformed
	default:
		return metrics.ResultError
	}
}
