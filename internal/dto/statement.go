package dto

import (
	"mpesa-wrap/internal/analytics"
	"mpesa-wrap/internal/models"
)

type TransactionResponse struct {
	ReceiptNumber     string `json:"receipt_number"`
	CompletionTime    string `json:"completion_time"`
	Details           string `json:"details"`
	TransactionStatus string `json:"transaction_status"`
	PaidIn            string `json:"paid_in"`
	Withdrawn         string `json:"withdrawn"`
	Balance           string `json:"balance"`
}

type StatementAnalysis struct {
	AnalysisID           string                         `json:"analysis_id"`
	CustomerName         string                         `json:"customer_name"`
	PhoneNumber          string                         `json:"phone_number"`
	Email                string                         `json:"email"`
	StatementBeginDate   string                         `json:"statement_begin_date"`
	StatementEndDate     string                         `json:"statement_end_date"`
	Summary              map[string]models.SummaryEntry `json:"summary"`
	SummaryOrder         []string                       `json:"summary_order"`
	SoulMates            analytics.SoulMates            `json:"soul_mates"`
	TimeOfDaySpending    map[string]analytics.Bucket    `json:"time_of_day_spending"`
	DayVsWeekendSpending map[string]analytics.Bucket    `json:"day_vs_weekend_spending"`
	WeekdaySpending      map[string]analytics.Bucket    `json:"weekday_spending"`
	TransactionCosts     analytics.CostSummary          `json:"transaction_costs"`
	MonthlySpending      []analytics.MonthBucket        `json:"monthly_spending"`
	Transactions         []TransactionResponse          `json:"transactions"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
