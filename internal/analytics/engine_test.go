package analytics

import (
	"sync"
	"testing"

	"mpesa-wrap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineAnalyzeEmptyLedger(t *testing.T) {
	report := NewEngine(NewCostRules(nil)).Analyze(nil)

	assert.Len(t, report.TimeOfDay, 4)
	assert.Len(t, report.WeekdayVsWeekend, 2)
	assert.Len(t, report.Weekdays, 7)
	assert.Equal(t, CostSummary{}, report.TransactionCosts)
	assert.Empty(t, report.SoulMates.TopSenders)
	assert.Empty(t, report.SoulMates.TopReceivers)
	assert.Empty(t, report.Monthly)
}

func TestEngineAnalyzeIsSafeForConcurrentUse(t *testing.T) {
	engine := NewEngine(NewCostRules(nil))
	ledger := []models.Transaction{
		{CompletionTime: "2026-01-05 03:54:43", Details: "Customer Transfer to - 0711000001 ALEX W", Withdrawn: "-100.00"},
		{CompletionTime: "2026-01-05 03:54:43", Details: "Customer Transfer of Funds Charge", Withdrawn: "-7.00"},
	}
	want := engine.Analyze(ledger)

	var wg sync.WaitGroup
	results := make([]Report, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = engine.Analyze(ledger)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
	assert.Equal(t, Bucket{Count: 2, Amount: 107.0}, want.TimeOfDay[Night])
	assert.Equal(t, CostSummary{TotalAmount: 7.0, Count: 1}, want.TransactionCosts)
}
