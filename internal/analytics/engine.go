package analytics

import "mpesa-wrap/internal/models"

// Report is every aggregate derived from one ledger.
type Report struct {
	SoulMates        SoulMates
	TimeOfDay        map[string]Bucket
	WeekdayVsWeekend map[string]Bucket
	Weekdays         map[string]Bucket
	TransactionCosts CostSummary
	Monthly          []MonthBucket
}

// Engine runs the aggregation passes. It holds no per-call state and is
// safe for concurrent use.
type Engine struct {
	costRules CostRules
}

// NewEngine creates an engine using the given fee rules.
func NewEngine(costRules CostRules) *Engine {
	return &Engine{costRules: costRules}
}

// Analyze runs each pass over the full ledger. Rows a pass cannot read are
// left out of that pass only.
func (e *Engine) Analyze(ledger []models.Transaction) Report {
	return Report{
		SoulMates:        Soulmates(ledger),
		TimeOfDay:        TimeOfDay(ledger),
		WeekdayVsWeekend: WeekdayVsWeekend(ledger),
		Weekdays:         WeekdaySpending(ledger),
		TransactionCosts: TransactionCosts(ledger, e.costRules),
		Monthly:          MonthlySpending(ledger),
	}
}
