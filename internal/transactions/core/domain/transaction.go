package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultProductName = "Uncategorized"
	DefaultChannel     = "EC"
)

// Transaction is one purchase as stored. Amount stays a decimal until it
// leaves the store for aggregation.
type Transaction struct {
	ClientName    string
	CustomerID    string
	OrderDate     time.Time
	Amount        decimal.Decimal
	ProductName   string
	Channel       string
	ImportBatchID string
	RawData       map[string]string // original CSV row, header -> cell
	DedupeKey     string
}

// RejectedRow reports an input row that could not become a Transaction.
// Line is 1-based and counts the header, so it matches what a spreadsheet
// shows.
type RejectedRow struct {
	Line   int
	Reason string
}

// ImportResult summarizes one import batch.
type ImportResult struct {
	BatchID    string
	Inserted   int
	Duplicates int
	Rejected   []RejectedRow
}

// ImportedEvent is published once an import batch has been written.
type ImportedEvent struct {
	BatchID    string    `json:"batch_id"`
	ClientName string    `json:"client_name"`
	Inserted   int       `json:"inserted"`
	Timestamp  time.Time `json:"timestamp"`
}
