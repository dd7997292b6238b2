package fiber_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	httpadapter "smebig-warroom/internal/transactions/adapters/http/fiber"
	"smebig-warroom/internal/transactions/core/domain"
	"smebig-warroom/internal/transactions/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeImportUseCase struct {
	ImportFunc      func(ctx context.Context, in usecase.ImportInput) (*domain.ImportResult, error)
	BulkCreateFunc  func(ctx context.Context, in usecase.BulkInput) (*domain.ImportResult, error)
	LastImportInput usecase.ImportInput
	LastBulkInput   usecase.BulkInput
	importCalled    bool
}

func (f *fakeImportUseCase) Import(ctx context.Context, in usecase.ImportInput) (*domain.ImportResult, error) {
	f.importCalled = true
	f.LastImportInput = in
	if f.ImportFunc != nil {
		return f.ImportFunc(ctx, in)
	}
	return &domain.ImportResult{BatchID: "b-1", Inserted: len(in.Sheet.Rows)}, nil
}

func (f *fakeImportUseCase) BulkCreate(ctx context.Context, in usecase.BulkInput) (*domain.ImportResult, error) {
	f.LastBulkInput = in
	if f.BulkCreateFunc != nil {
		return f.BulkCreateFunc(ctx, in)
	}
	return &domain.ImportResult{BatchID: "b-1", Inserted: len(in.Items)}, nil
}

type fakeMappingUseCase struct {
	ExecuteFunc func(ctx context.Context, in usecase.SuggestMappingInput) (*usecase.MappingSuggestion, error)
	LastInput   usecase.SuggestMappingInput
}

func (f *fakeMappingUseCase) Execute(ctx context.Context, in usecase.SuggestMappingInput) (*usecase.MappingSuggestion, error) {
	f.LastInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return &usecase.MappingSuggestion{Mapping: domain.DetectColumns(in.Headers), Source: usecase.MappingSourceHeuristic}, nil
}

// helper: create fiber app and routes
func setupTestApp(importUC httpadapter.ImportTransactionsUseCase, mappingUC httpadapter.SuggestMappingUseCase) *fiber.App {
	app := fiber.New()
	h := httpadapter.NewTransactionHandler(importUC, mappingUC)

	app.Post("/transactions/import", h.ImportCSV)
	app.Post("/transactions/bulk", h.BulkCreateTransactions)
	app.Post("/transactions/map-columns", h.MapColumns)

	return app
}

// helper: send JSON request
func doJSON(t *testing.T, app *fiber.App, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	switch b := body.(type) {
	case string:
		buf = strings.NewReader(b)
	default:
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(http.MethodPost, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	respBody, _ := io.ReadAll(resp.Body)
	return resp, respBody
}

const cupetitCSV = "客戶編號,購買日期,購買品項,金額,通路\nC1,2024/01/05,Gift Box,\"1,200\",EC\nC2,2024/01/20,Cookie Tin,800,Store\n"

// ------------------------------------------------------------
// IMPORT: raw body
// ------------------------------------------------------------

func TestImportCSV_RawBody(t *testing.T) {
	uc := &fakeImportUseCase{
		ImportFunc: func(ctx context.Context, in usecase.ImportInput) (*domain.ImportResult, error) {
			return &domain.ImportResult{
				BatchID:  "b-1",
				Inserted: 2,
				Rejected: []domain.RejectedRow{{Line: 4, Reason: "amount is not a number"}},
			}, nil
		},
	}
	app := setupTestApp(uc, &fakeMappingUseCase{})

	params := url.Values{}
	params.Set("client_name", "cupetit")
	params.Set("mapping", `{"channel":"通路"}`)

	req := httptest.NewRequest(http.MethodPost, "/transactions/import?"+params.Encode(), strings.NewReader(cupetitCSV))
	req.Header.Set("Content-Type", "text/csv")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	in := uc.LastImportInput
	if in.ClientName != "cupetit" {
		t.Fatalf("expected client cupetit, got %q", in.ClientName)
	}
	if len(in.Sheet.Headers) != 5 || len(in.Sheet.Rows) != 2 {
		t.Fatalf("unexpected sheet: %+v", in.Sheet)
	}
	if in.Sheet.Rows[0][3] != "1,200" {
		t.Fatalf("expected quoted amount to survive, got %q", in.Sheet.Rows[0][3])
	}
	if in.Mapping[domain.FieldChannel] != "通路" {
		t.Fatalf("expected mapping override, got %v", in.Mapping)
	}

	var body httpadapter.ImportResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.BatchID != "b-1" || body.Inserted != 2 || body.Rejected != 1 || len(body.Errors) != 1 || body.Errors[0].Line != 4 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

// ------------------------------------------------------------
// IMPORT: multipart
// ------------------------------------------------------------

func TestImportCSV_Multipart(t *testing.T) {
	uc := &fakeImportUseCase{}
	app := setupTestApp(uc, &fakeMappingUseCase{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("client_name", "cupetit"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	fw, err := mw.CreateFormFile("file", "transactions.csv")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(cupetitCSV)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/transactions/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, b)
	}
	if uc.LastImportInput.ClientName != "cupetit" || len(uc.LastImportInput.Sheet.Rows) != 2 {
		t.Fatalf("unexpected input: %+v", uc.LastImportInput)
	}
}

func TestImportCSV_NothingNewReturns200(t *testing.T) {
	uc := &fakeImportUseCase{
		ImportFunc: func(ctx context.Context, in usecase.ImportInput) (*domain.ImportResult, error) {
			return &domain.ImportResult{BatchID: "b-1", Duplicates: 2}, nil
		},
	}
	app := setupTestApp(uc, &fakeMappingUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/transactions/import?client_name=cupetit&batch_id=b-1", strings.NewReader(cupetitCSV))
	req.Header.Set("Content-Type", "text/csv")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if uc.LastImportInput.BatchID != "b-1" {
		t.Fatalf("expected batch id to be forwarded, got %q", uc.LastImportInput.BatchID)
	}
}

func TestImportCSV_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"empty_body", "/transactions/import?client_name=cupetit", ""},
		{"bad_mapping", "/transactions/import?client_name=cupetit&mapping=" + url.QueryEscape("[1,2]"), cupetitCSV},
		{"blank_csv", "/transactions/import?client_name=cupetit", "\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeImportUseCase{}
			app := setupTestApp(uc, &fakeMappingUseCase{})

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "text/csv")

			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
			if uc.importCalled {
				t.Fatalf("usecase should not be called")
			}
		})
	}
}

func TestImportCSV_UsecaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid_client", usecase.ErrInvalidClient, http.StatusBadRequest},
		{"missing_columns", usecase.ErrMissingColumns, http.StatusBadRequest},
		{"empty_import", usecase.ErrEmptyImport, http.StatusBadRequest},
		{"bad_batch", usecase.ErrInvalidBatchID, http.StatusBadRequest},
		{"db_failure", errors.New("db failure"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeImportUseCase{
				ImportFunc: func(ctx context.Context, in usecase.ImportInput) (*domain.ImportResult, error) {
					return nil, tt.err
				},
			}
			app := setupTestApp(uc, &fakeMappingUseCase{})

			req := httptest.NewRequest(http.MethodPost, "/transactions/import?client_name=cupetit", strings.NewReader(cupetitCSV))
			req.Header.Set("Content-Type", "text/csv")

			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}
		})
	}
}

func TestImportCSV_PartialFailureNamesBatch(t *testing.T) {
	uc := &fakeImportUseCase{
		ImportFunc: func(ctx context.Context, in usecase.ImportInput) (*domain.ImportResult, error) {
			return &domain.ImportResult{BatchID: "b-9", Inserted: 1000}, errors.New("db failure")
		},
	}
	app := setupTestApp(uc, &fakeMappingUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/transactions/import?client_name=cupetit", strings.NewReader(cupetitCSV))
	req.Header.Set("Content-Type", "text/csv")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	var body httpadapter.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !strings.Contains(body.Message, "batch_id=b-9") {
		t.Fatalf("expected retry hint, got %q", body.Message)
	}
}

// ------------------------------------------------------------
// BULK
// ------------------------------------------------------------

func TestBulkCreateTransactions_Success(t *testing.T) {
	uc := &fakeImportUseCase{}
	app := setupTestApp(uc, &fakeMappingUseCase{})

	body := `{
		"client_name": "cupetit",
		"transactions": [
			{"customer_id": "C1", "order_date": "2024-01-05", "amount": 1200.5, "product_name": "Gift Box"},
			{"customer_id": "C2", "order_date": "2024-01-06", "amount": "NT$ 800", "channel": "Store"}
		]
	}`

	resp, _ := doJSON(t, app, "/transactions/bulk", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	in := uc.LastBulkInput
	if in.ClientName != "cupetit" || len(in.Items) != 2 {
		t.Fatalf("unexpected bulk input: %+v", in)
	}
	if in.Items[0].Amount != "1200.5" || in.Items[1].Amount != "NT$ 800" {
		t.Fatalf("unexpected amounts: %q %q", in.Items[0].Amount, in.Items[1].Amount)
	}
}

func TestBulkCreateTransactions_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid_json", `{"client_name":`},
		{"empty_list", `{"client_name":"cupetit","transactions":[]}`},
		{"bad_amount_type", `{"client_name":"cupetit","transactions":[{"customer_id":"C1","amount":true}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupTestApp(&fakeImportUseCase{}, &fakeMappingUseCase{})

			resp, _ := doJSON(t, app, "/transactions/bulk", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestBulkCreateTransactions_ValidationError(t *testing.T) {
	uc := &fakeImportUseCase{
		BulkCreateFunc: func(ctx context.Context, in usecase.BulkInput) (*domain.ImportResult, error) {
			return nil, usecase.ErrInvalidClient
		},
	}
	app := setupTestApp(uc, &fakeMappingUseCase{})

	resp, _ := doJSON(t, app, "/transactions/bulk", `{"transactions":[{"customer_id":"C1","order_date":"2024-01-05","amount":"5"}]}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// MAP COLUMNS
// ------------------------------------------------------------

func TestMapColumns_Success(t *testing.T) {
	mapping := &fakeMappingUseCase{}
	app := setupTestApp(&fakeImportUseCase{}, mapping)

	resp, raw := doJSON(t, app, "/transactions/map-columns", map[string]any{
		"headers": []string{"Order_Date", "Customer_ID", "Amount"},
		"preview": map[string]any{"Amount": 1200, "Order_Date": "2024-01-05"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if mapping.LastInput.Preview["Amount"] != "1200" {
		t.Fatalf("expected numeric preview stringified, got %q", mapping.LastInput.Preview["Amount"])
	}

	var body httpadapter.MapColumnsResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Mapping["amount"] != "Amount" || body.Source != usecase.MappingSourceHeuristic {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Missing == nil {
		t.Fatalf("expected empty missing list, got null")
	}
}

func TestMapColumns_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"no_headers", usecase.ErrNoHeaders, http.StatusBadRequest},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapping := &fakeMappingUseCase{
				ExecuteFunc: func(ctx context.Context, in usecase.SuggestMappingInput) (*usecase.MappingSuggestion, error) {
					return nil, tt.err
				},
			}
			app := setupTestApp(&fakeImportUseCase{}, mapping)

			resp, _ := doJSON(t, app, "/transactions/map-columns", map[string]any{"headers": []string{}})
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}
		})
	}
}
