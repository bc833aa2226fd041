package statement

import (
	"fmt"
	"strings"

	"mpesa-wrap/internal/models"
	"mpesa-wrap/internal/pdf"
	"mpesa-wrap/pkg/metrics"

	"go.uber.org/zap"
)

const (
	customerNamePrefix = "Customer Name:"
	mobileNumberPrefix = "Mobile Number:"
	emailPrefix        = "Email Address:"
	periodPrefix       = "Statement Period:"

	periodSeparator = " - "

	summaryColumns     = 3
	transactionColumns = 7
)

// Parser turns an opened M-Pesa statement into header, summary and ledger.
type Parser struct {
	logger *zap.Logger
}

// NewParser creates a new statement parser
func NewParser(logger *zap.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse reads the statement. Extractor errors are returned wrapped, so
// errors.Is still matches the pdf sentinels. Pages without a usable
// transaction table are skipped.
func (p *Parser) Parse(doc pdf.Document) (*models.StatementResult, error) {
	pages := doc.NumPages()
	if pages == 0 {
		return nil, fmt.Errorf("%w: document has no pages", pdf.ErrMalformedDocument)
	}

	text, err := doc.Text(0)
	if err != nil {
		return nil, fmt.Errorf("reading first page text: %w", err)
	}

	result := &models.StatementResult{
		Header:  ParseHeader(text),
		Summary: make(map[string]models.SummaryEntry),
	}

	tables, err := doc.Tables(0)
	if err != nil {
		return nil, fmt.Errorf("reading first page tables: %w", err)
	}
	if len(tables) > 0 {
		result.Summary, result.SummaryOrder = ParseSummary(tables[0])
	} else {
		p.logger.Warn("No summary table on first page")
	}

	for page := 0; page < pages; page++ {
		table, ok, err := doc.DominantTable(page)
		if err != nil {
			return nil, fmt.Errorf("reading transactions on page %d: %w", page+1, err)
		}
		if !ok || table.Columns() < transactionColumns {
			p.logger.Warn("Skipping page without a transaction table",
				zap.Int("page", page+1),
				zap.Int("columns", table.Columns()),
			)
			metrics.IncPagesSkipped()
			continue
		}

		for i, row := range table.Body() {
			tx, ok := NormalizeRow(row)
			if !ok {
				p.logger.Debug("Skipping incomplete transaction row",
					zap.Int("page", page+1),
					zap.Int("row", i+1),
					zap.Int("cells", len(row)),
				)
				continue
			}
			result.Ledger = append(result.Ledger, tx)
		}
	}

	p.logger.Debug("Statement parsed",
		zap.Int("pages", pages),
		zap.Int("summary_rows", len(result.SummaryOrder)),
		zap.Int("transactions", len(result.Ledger)),
	)

	return result, nil
}

// ParseHeader scans first-page text for the customer fields.
// Absent lines leave their fields empty.
func ParseHeader(text string) models.StatementHeader {
	var h models.StatementHeader

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, customerNamePrefix):
			h.CustomerName = valueAfter(line, customerNamePrefix)
		case strings.HasPrefix(line, mobileNumberPrefix):
			h.PhoneNumber = valueAfter(line, mobileNumberPrefix)
		case strings.HasPrefix(line, emailPrefix):
			h.Email = valueAfter(line, emailPrefix)
		case strings.HasPrefix(line, periodPrefix):
			h.StatementBeginDate, h.StatementEndDate = splitPeriod(valueAfter(line, periodPrefix))
		}
	}

	return h
}

func valueAfter(line, prefix string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, prefix))
}

// splitPeriod splits "01 Jan 2026 - 31 Jan 2026"; anything else yields two empty dates.
func splitPeriod(period string) (begin, end string) {
	parts := strings.Split(period, periodSeparator)
	if len(parts) != 2 {
		return "", ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// ParseSummary reads the per-type summary table. A repeated label overwrites
// the earlier row but keeps its original position in the returned order.
func ParseSummary(table pdf.Table) (map[string]models.SummaryEntry, []string) {
	summary := make(map[string]models.SummaryEntry)
	var order []string

	for _, row := range table.Body() {
		if len(row) < summaryColumns {
			continue
		}
		label := cleanCell(row[0])
		if _, seen := summary[label]; !seen {
			order = append(order, label)
		}
		summary[label] = models.SummaryEntry{
			PaidIn:  cleanCell(row[1]),
			PaidOut: cleanCell(row[2]),
		}
	}

	return summary, order
}

// NormalizeRow maps a 7-cell transaction row onto a Transaction, first
// splitting cells that were extracted merged with their empty neighbour.
// Rows with fewer cells are rejected whole.
func NormalizeRow(row []string) (models.Transaction, bool) {
	if len(row) < transactionColumns {
		return models.Transaction{}, false
	}
	row = splitMergedCells(row)

	return models.Transaction{
		ReceiptNumber:     cleanCell(row[0]),
		CompletionTime:    cleanCell(row[1]),
		Details:           CleanDetails(row[2]),
		TransactionStatus: cleanCell(row[3]),
		PaidIn:            cleanCell(row[4]),
		Withdrawn:         cleanCell(row[5]),
		Balance:           cleanCell(row[6]),
	}, true
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// CleanDetails trims a narrative cell and turns each line break into a space.
func CleanDetails(details string) string {
	return lineBreaks.Replace(cleanCell(details))
}

// cleanCell drops invalid UTF-8 left by the text layer and trims the cell.
func cleanCell(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, ""))
}
