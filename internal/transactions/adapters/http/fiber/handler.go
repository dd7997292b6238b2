package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"smebig-warroom/internal/transactions/adapters/csvfile"
	"smebig-warroom/internal/transactions/core/domain"
	"smebig-warroom/internal/transactions/core/usecase"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// at most this many row errors are echoed back
const maxRowErrors = 100

type ImportTransactionsUseCase interface {
	Import(ctx context.Context, in usecase.ImportInput) (*domain.ImportResult, error)
	BulkCreate(ctx context.Context, in usecase.BulkInput) (*domain.ImportResult, error)
}

type SuggestMappingUseCase interface {
	Execute(ctx context.Context, in usecase.SuggestMappingInput) (*usecase.MappingSuggestion, error)
}

type TransactionHandler struct {
	importUC  ImportTransactionsUseCase
	mappingUC SuggestMappingUseCase
}

func NewTransactionHandler(importUC ImportTransactionsUseCase, mappingUC SuggestMappingUseCase) *TransactionHandler {
	return &TransactionHandler{importUC: importUC, mappingUC: mappingUC}
}

// ImportCSV godoc
// @Summary Import transactions from CSV
// @Description Accepts a multipart "file" field or a raw text/csv body. Header names are detected; "mapping" overrides them.
// @Tags Transactions
// @Accept mpfd
// @Accept plain
// @Produce json
// @Param client_name query string true "Client name"
// @Param batch_id query string false "Existing batch id to resume"
// @Param mapping query string false "JSON object canonical field -> CSV header"
// @Param file formData file false "CSV file"
// @Success 201 {object} ImportResponse
// @Success 200 {object} ImportResponse "Nothing new inserted"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions/import [post]
func (h *TransactionHandler) ImportCSV(c *fiber.Ctx) error {
	clientName := c.Query("client_name", c.FormValue("client_name"))
	mappingRaw := c.Query("mapping", c.FormValue("mapping"))

	var mapping domain.Mapping
	if mappingRaw != "" {
		if err := json.Unmarshal([]byte(mappingRaw), &mapping); err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_mapping",
				Message: "mapping must be a JSON object of field to header",
			})
		}
	}

	body, err := csvBody(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_csv",
			Message: err.Error(),
		})
	}

	sheet, err := csvfile.Read(body)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_csv",
			Message: err.Error(),
		})
	}

	res, err := h.importUC.Import(c.UserContext(), usecase.ImportInput{
		ClientName: clientName,
		Sheet:      *sheet,
		Mapping:    mapping,
		BatchID:    c.Query("batch_id", ""),
	})
	if err != nil {
		return importError(c, err, res)
	}
	return writeImportResult(c, res)
}

// BulkCreateTransactions godoc
// @Summary Bulk import transactions
// @Description Imports JSON rows through the same validation as CSV uploads
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body BulkCreateTransactionsRequest true "Bulk payload"
// @Success 201 {object} ImportResponse
// @Success 200 {object} ImportResponse "Nothing new inserted"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions/bulk [post]
func (h *TransactionHandler) BulkCreateTransactions(c *fiber.Ctx) error {
	var req BulkCreateTransactionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_json",
			Message: err.Error(),
		})
	}

	if len(req.Transactions) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_import",
			Message: "transactions list is required",
		})
	}

	items := make([]usecase.BulkItem, len(req.Transactions))
	for i, t := range req.Transactions {
		items[i] = usecase.BulkItem{
			CustomerID:  t.CustomerID,
			OrderDate:   t.OrderDate,
			Amount:      string(t.Amount),
			ProductName: t.ProductName,
			Channel:     t.Channel,
		}
	}

	res, err := h.importUC.BulkCreate(c.UserContext(), usecase.BulkInput{
		ClientName: req.ClientName,
		BatchID:    req.BatchID,
		Items:      items,
	})
	if err != nil {
		return importError(c, err, res)
	}
	return writeImportResult(c, res)
}

// MapColumns godoc
// @Summary Suggest a column mapping
// @Description Maps CSV headers onto order_date, customer_id, amount, product_name and channel
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body MapColumnsRequest true "Headers and first data row"
// @Success 200 {object} MapColumnsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions/map-columns [post]
func (h *TransactionHandler) MapColumns(c *fiber.Ctx) error {
	var req MapColumnsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_json",
			Message: err.Error(),
		})
	}

	preview := make(map[string]string, len(req.Preview))
	for k, v := range req.Preview {
		if v != nil {
			preview[k] = fmt.Sprint(v)
		}
	}

	out, err := h.mappingUC.Execute(c.UserContext(), usecase.SuggestMappingInput{
		Headers: req.Headers,
		Preview: preview,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNoHeaders) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_request",
				Message: err.Error(),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	missing := out.Missing
	if missing == nil {
		missing = []string{}
	}
	return c.Status(http.StatusOK).JSON(MapColumnsResponse{
		Mapping: out.Mapping,
		Missing: missing,
		Source:  out.Source,
	})
}

// csvBody returns the uploaded file when the request is multipart, the
// raw body otherwise.
func csvBody(c *fiber.Ctx) (io.Reader, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return nil, errors.New("multipart field \"file\" is required")
		}
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload: %w", err)
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("read upload: %w", err)
		}
		return bytes.NewReader(data), nil
	}

	if len(c.Body()) == 0 {
		return nil, errors.New("request body is empty")
	}
	// the body buffer is reused after the handler returns
	return bytes.NewReader(append([]byte(nil), c.Body()...)), nil
}

func importError(c *fiber.Ctx, err error, partial *domain.ImportResult) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidClient),
		errors.Is(err, usecase.ErrEmptyImport),
		errors.Is(err, usecase.ErrMissingColumns),
		errors.Is(err, usecase.ErrInvalidBatchID):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_import",
			Message: err.Error(),
		})
	default:
		entry := log.WithError(err).WithField("component", "import")
		if partial != nil {
			entry = entry.WithFields(log.Fields{"batch_id": partial.BatchID, "inserted": partial.Inserted})
		}
		entry.Error("import failed")

		resp := ErrorResponse{Error: "internal_server_error"}
		if partial != nil && partial.Inserted > 0 {
			resp.Message = fmt.Sprintf("import stopped after %d rows; retry with batch_id=%s", partial.Inserted, partial.BatchID)
		}
		return c.Status(http.StatusInternalServerError).JSON(resp)
	}
}

func writeImportResult(c *fiber.Ctx, res *domain.ImportResult) error {
	resp := ImportResponse{
		BatchID:    res.BatchID,
		Inserted:   res.Inserted,
		Duplicates: res.Duplicates,
		Rejected:   len(res.Rejected),
		Errors:     make([]RowErrorResponse, 0, min(len(res.Rejected), maxRowErrors)),
	}
	for i, r := range res.Rejected {
		if i == maxRowErrors {
			break
		}
		resp.Errors = append(resp.Errors, RowErrorResponse{Line: r.Line, Reason: r.Reason})
	}

	status := http.StatusCreated
	if res.Inserted == 0 {
		status = http.StatusOK
	}
	return c.Status(status).JSON(resp)
}
