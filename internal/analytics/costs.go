package analytics

import (
	"strings"

	"mpesa-wrap/internal/models"
)

// DefaultCostKeywords are the narrative fragments M-Pesa uses for fee rows.
var DefaultCostKeywords = []string{
	"pay bill charge",
	"customer transfer of funds charge",
	"withdrawal charge",
	"pay merchant charge",
	"customer send money charge",
}

// CostRules decides which ledger rows are transaction fees.
type CostRules struct {
	keywords []string
}

// NewCostRules builds case-insensitive fee rules. Blank and repeated keywords
// are ignored; with none left the DefaultCostKeywords apply.
func NewCostRules(keywords []string) CostRules {
	seen := make(map[string]bool)
	var cleaned []string
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		cleaned = append(cleaned, k)
	}
	if len(cleaned) == 0 {
		return NewCostRules(DefaultCostKeywords)
	}
	return CostRules{keywords: cleaned}
}

// Keywords returns the normalized keyword set.
func (r CostRules) Keywords() []string {
	return append([]string(nil), r.keywords...)
}

// Matches reports whether details names a fee.
func (r CostRules) Matches(details string) bool {
	lower := strings.ToLower(details)
	for _, k := range r.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// CostSummary is the total paid in fees.
type CostSummary struct {
	TotalAmount float64 `json:"total_amount"`
	Count       int     `json:"count"`
}

// TransactionCosts sums the withdrawn amount of every fee row.
func TransactionCosts(ledger []models.Transaction, rules CostRules) CostSummary {
	var t tally
	for _, tx := range ledger {
		if !rules.Matches(tx.Details) {
			continue
		}
		amount, ok := ParseAmount(tx.Withdrawn)
		if !ok {
			continue
		}
		t.add(amount)
	}
	return CostSummary{TotalAmount: roundAmount(t.sum), Count: t.count}
}

