package usecase

import (
	"context"

	"smebig-warroom/internal/transactions/core/domain"
)

type BulkItem struct {
	CustomerID  string
	OrderDate   string
	Amount      string
	ProductName string
	Channel     string
}

type BulkInput struct {
	ClientName string
	BatchID    string
	Items      []BulkItem
}

// BulkCreate imports already-structured rows. They go through the same
// parsing and batching as a CSV upload, with canonical field names as
// headers.
func (uc *ImportTransactionsUseCase) BulkCreate(ctx context.Context, in BulkInput) (*domain.ImportResult, error) {
	sheet := domain.Sheet{
		Headers: []string{
			domain.FieldCustomerID,
			domain.FieldOrderDate,
			domain.FieldAmount,
			domain.FieldProductName,
			domain.FieldChannel,
		},
		Rows: make([][]string, 0, len(in.Items)),
	}
	for _, it := range in.Items {
		sheet.Rows = append(sheet.Rows, []string{it.CustomerID, it.OrderDate, it.Amount, it.ProductName, it.Channel})
	}

	return uc.Import(ctx, ImportInput{
		ClientName: in.ClientName,
		Sheet:      sheet,
		BatchID:    in.BatchID,
	})
}
