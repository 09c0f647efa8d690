package handler

import (
	"errors"
	"net/http"

	"github.com/finza/finza-backend/internal/domain"
	"github.com/finza/finza-backend/internal/service"
	"github.com/finza/finza-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles day and transaction HTTP requests
type TransactionHandler struct {
	ledgerService *service.LedgerService
	calcService   *service.CalculationService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(ledgerService *service.LedgerService, calcService *service.CalculationService) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		calcService:   calcService,
	}
}

// TransactionRequest represents a transaction creation request
type TransactionRequest struct {
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	PaymentMethod *string         `json:"paymentMethod"`
}

// TransactionUpdateRequest represents a partial transaction update;
// omitted fields stay unchanged
type TransactionUpdateRequest struct {
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod *string          `json:"paymentMethod"`
}

// DayResponse is a Day together with its computed totals.
type DayResponse struct {
	*domain.Day
	Totals domain.DailySummary `json:"totals"`
}

func validateDateParam(c echo.Context) (string, error) {
	date := c.Param("date")
	if !util.IsDateKey(date) {
		return "", NewValidationError(c, "Invalid date", []ValidationError{
			{Field: "date", Message: "Date must be in YYYY-MM-DD format"},
		})
	}
	return date, nil
}

func parsePaymentMethod(c echo.Context, raw *string) (*domain.PaymentMethod, error) {
	if raw == nil {
		return nil, nil
	}
	switch domain.PaymentMethod(*raw) {
	case domain.PaymentMethodCard, domain.PaymentMethodCash:
		method := domain.PaymentMethod(*raw)
		return &method, nil
	default:
		return nil, NewValidationError(c, "Invalid payment method", []ValidationError{
			{Field: "paymentMethod", Message: "Payment method must be card or cash"},
		})
	}
}

// GetDay handles GET /api/v1/days/:date
func (h *TransactionHandler) GetDay(c echo.Context) error {
	date, err := validateDateParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, DayResponse{
		Day:    h.ledgerService.GetDay(date),
		Totals: h.calcService.DayTotals(date),
	})
}

// CreateTransaction handles POST /api/v1/days/:date/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	date, err := validateDateParam(c)
	if err != nil {
		return err
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if req.Description == "" {
		return NewValidationError(c, "Description is required", []ValidationError{
			{Field: "description", Message: "Description cannot be empty"},
		})
	}
	if req.Amount.IsNegative() {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Amount cannot be negative"},
		})
	}
	txType := domain.TransactionType(req.Type)
	if txType != domain.TransactionTypeIncome && txType != domain.TransactionTypeExpense {
		return NewValidationError(c, "Invalid transaction type", []ValidationError{
			{Field: "type", Message: "Type must be income or expense"},
		})
	}
	method, err := parsePaymentMethod(c, req.PaymentMethod)
	if err != nil {
		return err
	}

	tx := h.ledgerService.AddTransaction(date, domain.TransactionInput{
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          txType,
		PaymentMethod: method,
	})
	return c.JSON(http.StatusCreated, tx)
}

// UpdateTransaction handles PUT /api/v1/days/:date/transactions/:id
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	date, err := validateDateParam(c)
	if err != nil {
		return err
	}

	var req TransactionUpdateRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if req.Description != nil && *req.Description == "" {
		return NewValidationError(c, "Description cannot be empty", []ValidationError{
			{Field: "description", Message: "Description cannot be empty"},
		})
	}
	if req.Amount != nil && req.Amount.IsNegative() {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Amount cannot be negative"},
		})
	}
	method, err := parsePaymentMethod(c, req.PaymentMethod)
	if err != nil {
		return err
	}

	tx, err := h.ledgerService.UpdateTransaction(date, c.Param("id"), domain.TransactionUpdate{
		Description:   req.Description,
		Amount:        req.Amount,
		PaymentMethod: method,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		return NewInternalError(c, "Failed to update transaction")
	}
	return c.JSON(http.StatusOK, tx)
}

// DeleteTransaction handles DELETE /api/v1/days/:date/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	date, err := validateDateParam(c)
	if err != nil {
		return err
	}

	txType := domain.TransactionType(c.QueryParam("type"))
	if txType != domain.TransactionTypeIncome && txType != domain.TransactionTypeExpense {
		return NewValidationError(c, "Invalid transaction type", []ValidationError{
			{Field: "type", Message: "Type query parameter must be income or expense"},
		})
	}

	h.ledgerService.DeleteTransaction(date, c.Param("id"), txType)
	return c.NoContent(http.StatusNoContent)
}
