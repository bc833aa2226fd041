package analytics

import (
	"strings"
	"time"

	"mpesa-wrap/internal/models"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a statement amount such as "1,500.00" or "-20.00".
// Thousands separators and the leading sign are dropped. It reports false for
// empty or non-numeric input; callers leave such rows out of their totals.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.ReplaceAll(raw, ",", "")
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "-")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// ParseCompletionTime reads a "YYYY-MM-DD HH:MM:SS" completion time.
func ParseCompletionTime(raw string) (time.Time, bool) {
	t, err := time.Parse(models.CompletionTimeLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// roundAmount rounds once, at output time, to two decimal places.
func roundAmount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// spend is a ledger row with a usable timestamp and withdrawn amount.
type spend struct {
	at     time.Time
	amount decimal.Decimal
}

// spends keeps the rows whose completion time and withdrawn amount both parse.
func spends(ledger []models.Transaction) []spend {
	out := make([]spend, 0, len(ledger))
	for _, tx := range ledger {
		at, ok := ParseCompletionTime(tx.CompletionTime)
		if !ok {
			continue
		}
		amount, ok := ParseAmount(tx.Withdrawn)
		if !ok {
			continue
		}
		out = append(out, spend{at: at, amount: amount})
	}
	return out
}
