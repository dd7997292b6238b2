package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingAmount  = errors.New("amount is empty")
	ErrInvalidAmount  = errors.New("amount is not a number")
	ErrNegativeAmount = errors.New("amount is negative")
	ErrAmountTooLarge = errors.New("amount has more than 12 integer digits")
	ErrAmountScale    = errors.New("amount has more than 2 decimal places")
	ErrMissingDate    = errors.New("order date is empty")
	ErrInvalidDate    = errors.New("order date is not a recognized date")
)

// Stored amounts are NUMERIC(14, 2).
const (
	AmountScale         = 2
	AmountIntegerDigits = 12
)

var maxAmount = decimal.New(1, AmountIntegerDigits)

// currency markers removed before parsing; longer ones first so "NT$" wins
// over "$".
var amountNoise = []string{"NT$", "US$", "NTD", "TWD", "$", "¥", "￥", "元", ",", "，", " ", "\u00a0"}

// ParseAmount cleans a money cell ("NT$ 1,200", "1200元") and parses it.
// Values that do not fit the stored column are rejected, not rounded.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, ErrMissingAmount
	}
	for _, noise := range amountNoise {
		s = strings.ReplaceAll(s, noise, "")
	}
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNegativeAmount, raw)
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmountTooLarge, raw)
	}
	if !d.Equal(d.Truncate(AmountScale)) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmountScale, raw)
	}
	return d, nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	"2006/01/02",
	"2006/1/2",
	"2006.01.02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"1/2/2006",
}

// ParseOrderDate accepts the date formats spreadsheets commonly export.
// Values without a zone are read in loc.
func ParseOrderDate(raw string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrMissingDate
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}
