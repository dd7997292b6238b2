package fiber

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type RowErrorResponse struct {
	Line   int    `json:"line" example:"7"`
	Reason string `json:"reason" example:"amount is not a number: \"abc\""`
}

type ImportResponse struct {
	BatchID    string             `json:"batch_id"`
	Inserted   int                `json:"inserted"`
	Duplicates int                `json:"duplicates"`
	Rejected   int                `json:"rejected"`
	Errors     []RowErrorResponse `json:"errors"`
}

// BulkCreateTransactionsRequest represents a JSON import
// @Description Bulk transaction import DTO
type BulkCreateTransactionsRequest struct {
	ClientName   string            `json:"client_name"`
	BatchID      string            `json:"batch_id"`
	Transactions []bulkTransaction `json:"transactions"`
}

type bulkTransaction struct {
	CustomerID  string     `json:"customer_id"`
	OrderDate   string     `json:"order_date"`
	Amount      flexString `json:"amount" swaggertype:"string" example:"1200"`
	ProductName string     `json:"product_name"`
	Channel     string     `json:"channel"`
}

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("amount must be a string or number: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type MapColumnsRequest struct {
	Headers []string       `json:"headers"`
	Preview map[string]any `json:"preview"`
}

type MapColumnsResponse struct {
	Mapping map[string]string `json:"mapping"`
	Missing []string          `json:"missing"`
	Source  string            `json:"source" example:"llm"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_import"`
	Message string `json:"message" example:"client_name is required"`
}
