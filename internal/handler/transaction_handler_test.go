package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/finza/finza-backend/internal/domain"
	"github.com/finza/finza-backend/internal/repository/ledger"
	"github.com/finza/finza-backend/internal/repository/storage"
	"github.com/finza/finza-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newTransactionFixture() (*TransactionHandler, *ledger.Repository) {
	repo := ledger.New(storage.NewMemoryKV())
	ledgerService := service.NewLedgerService(repo)
	calcService := service.NewCalculationService(repo, repo)
	return NewTransactionHandler(ledgerService, calcService), repo
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestCreateTransaction(t *testing.T) {
	e := echo.New()
	handler, repo := newTransactionFixture()

	body := `{"description":"Venta mostrador","amount":150.5,"type":"income","paymentMethod":"card"}`
	req := jsonRequest(http.MethodPost, "/api/v1/days/2025-03-05/transactions", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("date")
	c.SetParamValues("2025-03-05")

	if err := handler.CreateTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var tx domain.Transaction
	if err := json.Unmarshal(rec.Body.Bytes(), &tx); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if tx.ID == "" {
		t.Error("Expected generated id")
	}
	if !tx.Amount.Equal(decimal.RequireFromString("150.5")) {
		t.Errorf("Expected amount 150.5, got %s", tx.Amount)
	}
	if tx.PaymentMethod == nil || *tx.PaymentMethod != domain.PaymentMethodCard {
		t.Errorf("Expected card payment method, got %v", tx.PaymentMethod)
	}

	day := repo.GetDay("2025-03-05")
	if len(day.Incomes) != 1 {
		t.Errorf("Expected 1 income, got %d", len(day.Incomes))
	}
}

func TestCreateTransaction_Validation(t *testing.T) {
	e := echo.New()
	handler, _ := newTransactionFixture()

	cases := []struct {
		name string
		date string
		body string
	}{
		{"bad date", "not-a-date", `{"description":"x","amount":10,"type":"income"}`},
		{"empty description", "2025-03-05", `{"description":"","amount":10,"type":"income"}`},
		{"negative amount", "2025-03-05", `{"description":"x","amount":-10,"type":"income"}`},
		{"bad type", "2025-03-05", `{"description":"x","amount":10,"type":"transfer"}`},
		{"bad payment method", "2025-03-05", `{"description":"x","amount":10,"type":"income","paymentMethod":"check"}`},
	}

	for _, tc := range cases {
		req := jsonRequest(http.MethodPost, "/api/v1/days/"+tc.date+"/transactions", tc.body)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("date")
		c.SetParamValues(tc.date)

		if err := handler.CreateTransaction(c); err != nil {
			t.Fatalf("%s: expected JSON response, got error: %v", tc.name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", tc.name, rec.Code)
		}
	}
}

func TestGetDayIncludesTotals(t *testing.T) {
	e := echo.New()
	handler, repo := newTransactionFixture()

	repo.AddTransaction("2025-03-05", domain.TransactionInput{
		Description: "Venta",
		Amount:      decimal.NewFromInt(100),
		Type:        domain.TransactionTypeIncome,
	})
	repo.AddTransaction("2025-03-05", domain.TransactionInput{
		Description: "Compra",
		Amount:      decimal.NewFromInt(30),
		Type:        domain.TransactionTypeExpense,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/days/2025-03-05", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("date")
	c.SetParamValues("2025-03-05")

	if err := handler.GetDay(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var day DayResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &day); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !day.Totals.Profit.Equal(decimal.NewFromInt(70)) {
		t.Errorf("Expected profit 70, got %s", day.Totals.Profit)
	}
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	e := echo.New()
	handler, _ := newTransactionFixture()

	req := jsonRequest(http.MethodPut, "/api/v1/days/2025-03-05/transactions/missing", `{"amount":50}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("date", "id")
	c.SetParamValues("2025-03-05", "missing")

	if err := handler.UpdateTransaction(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestDeleteTransaction(t *testing.T) {
	e := echo.New()
	handler, repo := newTransactionFixture()

	tx := repo.AddTransaction("2025-03-05", domain.TransactionInput{
		Description: "Venta",
		Amount:      decimal.NewFromInt(100),
		Type:        domain.TransactionTypeIncome,
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/days/2025-03-05/transactions/"+tx.ID+"?type=income", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("date", "id")
	c.SetParamValues("2025-03-05", tx.ID)

	if err := handler.DeleteTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}
	if len(repo.GetDay("2025-03-05").Incomes) != 0 {
		t.Error("Expected transaction to be deleted")
	}
}

func TestDeleteTransaction_RequiresType(t *testing.T) {
	e := echo.New()
	handler, _ := newTransactionFixture()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/days/2025-03-05/transactions/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("date", "id")
	c.SetParamValues("2025-03-05", "abc")

	if err := handler.DeleteTransaction(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
