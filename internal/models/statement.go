package models

// CompletionTimeLayout is the fixed format of Transaction.CompletionTime.
const CompletionTimeLayout = "2006-01-02 15:04:05"

// Transaction is one ledger row of an M-Pesa statement.
// Amount fields keep the statement's text ("1,500.00", "-20.00" or "").
type Transaction struct {
	ReceiptNumber     string `json:"receipt_number"`
	CompletionTime    string `json:"completion_time"`
	Details           string `json:"details"`
	TransactionStatus string `json:"transaction_status"`
	PaidIn            string `json:"paid_in"`
	Withdrawn         string `json:"withdrawn"`
	Balance           string `json:"balance"`
}

// StatementHeader holds the customer fields printed on the first page.
type StatementHeader struct {
	CustomerName       string `json:"customer_name"`
	PhoneNumber        string `json:"phone_number"`
	Email              string `json:"email"`
	StatementBeginDate string `json:"statement_begin_date"`
	StatementEndDate   string `json:"statement_end_date"`
}

// SummaryEntry is one row of the per-transaction-type summary table.
type SummaryEntry struct {
	PaidIn  string `json:"paid_in"`
	PaidOut string `json:"paid_out"`
}

// StatementResult is everything read from a statement document.
type StatementResult struct {
	Header StatementHeader
	// Summary is keyed by transaction type label (SEND_MONEY, TOTAL, ...).
	Summary map[string]SummaryEntry
	// SummaryOrder lists Summary labels in the order they first appear.
	SummaryOrder []string
	// Ledger is in page order, then row order within a page.
	Ledger []Transaction
}
