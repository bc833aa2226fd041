package analytics

import (
	"testing"

	"mpesa-wrap/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNewCostRules(t *testing.T) {
	assert.Equal(t, DefaultCostKeywords, NewCostRules(nil).Keywords())
	assert.Equal(t, DefaultCostKeywords, NewCostRules([]string{" ", ""}).Keywords())
	assert.Equal(t,
		[]string{"excise duty", "charge"},
		NewCostRules([]string{" Excise Duty", "charge", "CHARGE"}).Keywords(),
	)
}

func TestCostRulesMatches(t *testing.T) {
	rules := NewCostRules(nil)

	assert.True(t, rules.Matches("Pay Bill Charge"))
	assert.True(t, rules.Matches("CUSTOMER TRANSFER OF FUNDS CHARGE"))
	assert.True(t, rules.Matches("Withdrawal Charge"))
	assert.False(t, rules.Matches("Customer Transfer to - 0711000001 ALEX W"))
	assert.False(t, rules.Matches(""))
}

func TestTransactionCosts(t *testing.T) {
	ledger := []models.Transaction{
		{Details: "Customer Transfer of Funds Charge", Withdrawn: "-13.00"},
		{Details: "Pay Bill Charge", Withdrawn: "-5.00"},
		{Details: "Withdrawal Charge", Withdrawn: "-1,029.00"},
		{Details: "Pay Merchant Charge", Withdrawn: ""},
		{Details: "Customer Transfer to - 0711000001 ALEX W", Withdrawn: "-500.00"},
	}

	assert.Equal(t, CostSummary{TotalAmount: 1047.0, Count: 3}, TransactionCosts(ledger, NewCostRules(nil)))
	assert.Equal(t, CostSummary{TotalAmount: 5.0, Count: 1}, TransactionCosts(ledger, NewCostRules([]string{"pay bill"})))
	assert.Equal(t, CostSummary{}, TransactionCosts(nil, NewCostRules(nil)))
}
