// Package csvfile reads uploaded spreadsheets exported as CSV.
package csvfile

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"smebig-warroom/internal/transactions/core/domain"
)

var ErrNoHeader = errors.New("csv has no header row")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Read parses r into a sheet. The first non-empty record is the header.
// Blank lines are skipped and short rows are kept as they are.
func Read(r io.Reader) (*domain.Sheet, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	sheet := &domain.Sheet{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if blank(rec) {
			continue
		}
		if sheet.Headers == nil {
			for i := range rec {
				rec[i] = strings.TrimSpace(rec[i])
			}
			sheet.Headers = rec
			continue
		}
		sheet.Rows = append(sheet.Rows, rec)
	}

	if len(sheet.Headers) == 0 {
		return nil, ErrNoHeader
	}
	return sheet, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
