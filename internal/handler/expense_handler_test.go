package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finza/finza-backend/internal/domain"
	"github.com/finza/finza-backend/internal/repository/ledger"
	"github.com/finza/finza-backend/internal/repository/storage"
	"github.com/finza/finza-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newExpenseFixture() (*ExpenseHandler, *ledger.Repository) {
	repo := ledger.New(storage.NewMemoryKV())
	return NewExpenseHandler(service.NewLedgerService(repo)), repo
}

func TestCreateFixedExpense(t *testing.T) {
	e := echo.New()
	handler, repo := newExpenseFixture()

	req := jsonRequest(http.MethodPost, "/api/v1/months/2025-03/fixed-expenses", `{"description":"Alquiler","amount":800}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("month")
	c.SetParamValues("2025-03")

	if err := handler.CreateFixedExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var expense domain.FixedExpense
	if err := json.Unmarshal(rec.Body.Bytes(), &expense); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if expense.ID == "" || expense.Month != "2025-03" {
		t.Errorf("Unexpected expense: %+v", expense)
	}
	if len(repo.GetMonth("2025-03").FixedExpenses) != 1 {
		t.Error("Expected expense to be stored")
	}
}

func TestCreateTax_Validation(t *testing.T) {
	e := echo.New()
	handler, _ := newExpenseFixture()

	req := jsonRequest(http.MethodPost, "/api/v1/months/2025-03/taxes", `{"description":"IVA","amount":-1}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("month")
	c.SetParamValues("2025-03")

	if err := handler.CreateTax(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestDeleteVariableExpenseEndpoint(t *testing.T) {
	e := echo.New()
	handler, repo := newExpenseFixture()

	expense := repo.AddVariableExpense("2025-03", domain.ExpenseInput{
		Description: "Reparación",
		Amount:      decimal.NewFromInt(120),
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/months/2025-03/variable-expenses/"+expense.ID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("month", "id")
	c.SetParamValues("2025-03", expense.ID)

	if err := handler.DeleteVariableExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}
	if len(repo.GetMonth("2025-03").VariableExpenses) != 0 {
		t.Error("Expected expense to be deleted")
	}
}

func TestListTaxesEmptyMonth(t *testing.T) {
	e := echo.New()
	handler, _ := newExpenseFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/months/2025-03/taxes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("month")
	c.SetParamValues("2025-03")

	if err := handler.ListTaxes(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("Expected empty array, got %q", body)
	}
}
