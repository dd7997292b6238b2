package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"smebig-warroom/internal/transactions/core/domain"
	"smebig-warroom/internal/transactions/core/ports"
)

var (
	ErrInvalidClient  = errors.New("client_name is required")
	ErrEmptyImport    = errors.New("import contains no data rows")
	ErrMissingColumns = errors.New("required columns are missing")
	ErrInvalidBatchID = errors.New("batch id must be a UUID")
)

const DefaultBatchSize = 1000

type ImportOptions struct {
	BatchSize int            // rows per insert statement, default 1000
	Location  *time.Location // zone for dates without one, default UTC
}

type ImportTransactionsUseCase struct {
	writer   ports.TransactionWriterPort
	notifier ports.ImportNotifierPort
	opts     ImportOptions
	now      func() time.Time
}

// NewImportTransactionsUseCase wires the writer. notifier may be nil.
func NewImportTransactionsUseCase(writer ports.TransactionWriterPort, notifier ports.ImportNotifierPort, opts ImportOptions) *ImportTransactionsUseCase {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &ImportTransactionsUseCase{
		writer:   writer,
		notifier: notifier,
		opts:     opts,
		now:      time.Now,
	}
}

type ImportInput struct {
	ClientName string
	Sheet      domain.Sheet
	Mapping    domain.Mapping // overrides the detected header mapping

	// BatchID reuses an earlier batch so a retried import skips rows that
	// were already written. Empty means a new batch.
	BatchID string

	// Progress, when set, is called after every written batch.
	Progress func(done, total int)
}

// Import maps, validates and writes the sheet. Rows that cannot be parsed
// are reported in the result and never written. If a batch fails, the
// batches before it stay written and the partial result is returned with
// the error.
func (uc *ImportTransactionsUseCase) Import(ctx context.Context, in ImportInput) (*domain.ImportResult, error) {
	client := strings.TrimSpace(in.ClientName)
	if client == "" {
		return nil, ErrInvalidClient
	}
	if len(in.Sheet.Rows) == 0 {
		return nil, ErrEmptyImport
	}

	batchID := strings.TrimSpace(in.BatchID)
	if batchID == "" {
		batchID = uuid.NewString()
	} else if _, err := uuid.Parse(batchID); err != nil {
		return nil, ErrInvalidBatchID
	}

	mapping := domain.DetectColumns(in.Sheet.Headers).Merge(in.Mapping).Restrict(in.Sheet.Headers)
	if missing := mapping.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	txs, rejected := uc.convert(client, batchID, in.Sheet, mapping)

	logger := log.WithFields(log.Fields{
		"component": "import",
		"client":    client,
		"batch_id":  batchID,
	})
	logger.WithFields(log.Fields{
		"rows":     len(in.Sheet.Rows),
		"valid":    len(txs),
		"rejected": len(rejected),
	}).Info("import parsed")

	res := &domain.ImportResult{BatchID: batchID, Rejected: rejected}

	for start := 0; start < len(txs); start += uc.opts.BatchSize {
		end := min(start+uc.opts.BatchSize, len(txs))
		chunk := txs[start:end]

		created, err := uc.writer.InsertBatch(ctx, chunk)
		if err != nil {
			logger.WithError(err).WithField("offset", start).Error("import batch failed")
			return res, fmt.Errorf("write rows %d-%d: %w", start+1, end, err)
		}
		res.Inserted += created
		res.Duplicates += len(chunk) - created

		if in.Progress != nil {
			in.Progress(end, len(txs))
		}
	}

	logger.WithFields(log.Fields{
		"inserted":   res.Inserted,
		"duplicates": res.Duplicates,
	}).Info("import written")

	uc.notify(ctx, logger, client, res)
	return res, nil
}

func (uc *ImportTransactionsUseCase) notify(ctx context.Context, logger *log.Entry, client string, res *domain.ImportResult) {
	if uc.notifier == nil || res.Inserted == 0 {
		return
	}
	evt := domain.ImportedEvent{
		BatchID:    res.BatchID,
		ClientName: client,
		Inserted:   res.Inserted,
		Timestamp:  uc.now().UTC(),
	}
	// the rows are committed; a lost event only delays cache refresh
	if err := uc.notifier.NotifyImported(ctx, evt); err != nil {
		logger.WithError(err).Warn("publish import event failed")
	}
}

func (uc *ImportTransactionsUseCase) convert(client, batchID string, sheet domain.Sheet, m domain.Mapping) ([]domain.Transaction, []domain.RejectedRow) {
	col := make(map[string]int, len(sheet.Headers))
	for i, h := range sheet.Headers {
		if _, dup := col[h]; !dup {
			col[h] = i
		}
	}
	cell := func(row []string, field string) string {
		h, ok := m[field]
		if !ok {
			return ""
		}
		i := col[h]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	txs := make([]domain.Transaction, 0, len(sheet.Rows))
	rejected := make([]domain.RejectedRow, 0)

	for i, row := range sheet.Rows {
		line := i + 2 // header is line 1

		customerID := cell(row, domain.FieldCustomerID)
		if customerID == "" {
			rejected = append(rejected, domain.RejectedRow{Line: line, Reason: "customer id is empty"})
			continue
		}
		orderDate, err := domain.ParseOrderDate(cell(row, domain.FieldOrderDate), uc.opts.Location)
		if err != nil {
			rejected = append(rejected, domain.RejectedRow{Line: line, Reason: err.Error()})
			continue
		}
		amount, err := domain.ParseAmount(cell(row, domain.FieldAmount))
		if err != nil {
			rejected = append(rejected, domain.RejectedRow{Line: line, Reason: err.Error()})
			continue
		}

		product := cell(row, domain.FieldProductName)
		if product == "" {
			product = domain.DefaultProductName
		}
		channel := cell(row, domain.FieldChannel)
		if channel == "" {
			channel = domain.DefaultChannel
		}

		raw := make(map[string]string, len(sheet.Headers))
		for j, h := range sheet.Headers {
			if j < len(row) {
				raw[h] = row[j]
			}
		}

		txs = append(txs, domain.Transaction{
			ClientName:    client,
			CustomerID:    customerID,
			OrderDate:     orderDate.UTC(),
			Amount:        amount,
			ProductName:   product,
			Channel:       channel,
			ImportBatchID: batchID,
			RawData:       raw,
			DedupeKey:     batchID + "|" + strconv.Itoa(line),
		})
	}
	return txs, rejected
}
