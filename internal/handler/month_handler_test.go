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

func newMonthFixture() (*MonthHandler, *ledger.Repository) {
	repo := ledger.New(storage.NewMemoryKV())
	ledgerService := service.NewLedgerService(repo)
	calcService := service.NewCalculationService(repo, repo)
	return NewMonthHandler(ledgerService, calcService), repo
}

func TestListMonths(t *testing.T) {
	e := echo.New()
	handler, repo := newMonthFixture()

	repo.AddTransaction("2024-11-10", domain.TransactionInput{
		Description: "Venta",
		Amount:      decimal.NewFromInt(100),
		Type:        domain.TransactionTypeIncome,
	})
	repo.AddTransaction("2025-01-05", domain.TransactionInput{
		Description: "Venta",
		Amount:      decimal.NewFromInt(50),
		Type:        domain.TransactionTypeIncome,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/months", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListMonths(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var months []string
	if err := json.Unmarshal(rec.Body.Bytes(), &months); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(months) != 2 || months[0] != "2025-01" || months[1] != "2024-11" {
		t.Errorf("Expected [2025-01 2024-11], got %v", months)
	}
}

func TestGetMonth_InvalidKey(t *testing.T) {
	e := echo.New()
	handler, _ := newMonthFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/months/march", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("month")
	c.SetParamValues("march")

	if err := handler.GetMonth(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetMonth_EmptyDefault(t *testing.T) {
	e := echo.New()
	handler, _ := newMonthFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/months/2025-03", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("month")
	c.SetParamValues("2025-03")

	if err := handler.GetMonth(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var month domain.Month
	if err := json.Unmarshal(rec.Body.Bytes(), &month); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if month.Month != "2025-03" {
		t.Errorf("Expected month 2025-03, got %s", month.Month)
	}
	if month.Days == nil || len(month.Days) != 0 {
		t.Errorf("Expected empty days map, got %v", month.Days)
	}
}

func TestGetSummary(t *testing.T) {
	e := echo.New()
	handler, repo := newMonthFixture()

	repo.AddTransaction("2025-03-05", domain.TransactionInput{
		Description: "Venta",
		Amount:      decimal.NewFromInt(500),
		Type:        domain.TransactionTypeIncome,
	})
	repo.AddFixedExpense("2025-03", domain.ExpenseInput{
		Description: "Alquiler",
		Amount:      decimal.NewFromInt(200),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/months/2025-03/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("month")
	c.SetParamValues("2025-03")

	if err := handler.GetSummary(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var summary domain.MonthSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !summary.FinalProfit.Equal(decimal.NewFromInt(300)) {
		t.Errorf("Expected final profit 300, got %s", summary.FinalProfit)
	}
	if len(summary.DailyData) != 1 || summary.DailyData[0].Date != "2025-03-05" {
		t.Errorf("Unexpected daily data: %v", summary.DailyData)
	}
}

func TestGetCalendar(t *testing.T) {
	e := echo.New()
	handler, _ := newMonthFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/months/2024-02/calendar", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("month")
	c.SetParamValues("2024-02")

	if err := handler.GetCalendar(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var calendar CalendarResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &calendar); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if calendar.DaysInMonth != 29 {
		t.Errorf("Expected 29 days in 2024-02, got %d", calendar.DaysInMonth)
	}
	if calendar.PreviousMonth != "2024-01" || calendar.NextMonth != "2024-03" {
		t.Errorf("Unexpected navigation: prev=%s next=%s", calendar.PreviousMonth, calendar.NextMonth)
	}
	if len(calendar.Dates) != 29 || calendar.Dates[0] != "2024-02-01" {
		t.Errorf("Unexpected dates list: %d entries", len(calendar.Dates))
	}
}
