package handler

import (
	"net/http"

	"github.com/finza/finza-backend/internal/domain"
	"github.com/finza/finza-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ExpenseHandler handles fixed expense, variable expense and tax HTTP
// requests. The three entity types share the same creation shape.
type ExpenseHandler struct {
	ledgerService *service.LedgerService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(ledgerService *service.LedgerService) *ExpenseHandler {
	return &ExpenseHandler{ledgerService: ledgerService}
}

// ExpenseRequest represents a fixed expense, variable expense or tax
// creation request
type ExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

func (h *ExpenseHandler) bindExpense(c echo.Context) (domain.ExpenseInput, error) {
	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return domain.ExpenseInput{}, NewValidationError(c, "Invalid request body", nil)
	}
	if req.Description == "" {
		return domain.ExpenseInput{}, NewValidationError(c, "Description is required", []ValidationError{
			{Field: "description", Message: "Description cannot be empty"},
		})
	}
	if req.Amount.IsNegative() {
		return domain.ExpenseInput{}, NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Amount cannot be negative"},
		})
	}
	return domain.ExpenseInput{Description: req.Description, Amount: req.Amount}, nil
}

// ListFixedExpenses handles GET /api/v1/months/:month/fixed-expenses
func (h *ExpenseHandler) ListFixedExpenses(c echo.Context) error {
	month, err := validateMonthParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.ledgerService.GetMonth(month).FixedExpenses)
}

// CreateFixedExpense handles POST /api/v1/months/:month/fixed-expenses
func (h *ExpenseHandler) CreateFixedExpense(c echo.Context) error {
	month, err := validateMonthParam(c)
	if err != nil {
		return err
	}
	input, err := h.bindExpense(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, h.ledgerService.AddFixedExpense(month, input))
}

// DeleteFixedExpense handles DELETE /api/v1/months/:month/fixed-expenses/:id
func (h *ExpenseHandler) DeleteFixedExpense(c echo.Context) error {
	month, err := validateMonthParam(c)
	if err != nil {
		return err
	}
	h.ledgerService.DeleteFixedExpense(month, c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// ListVariableExpenses handles GET /api/v1/months/:month/variable-expenses
func (h *ExpenseHandler) ListVariableExpenses(c echo.Context) error {
	month, err := validateMonthParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.ledgerService.GetMonth(month).VariableExpenses)
}

// CreateVariableExpense handles POST /api/v1/months/:month/variable-expenses
func (h *ExpenseHandler) CreateVariableExpense(c echo.Context) error {
	month, err := validateMonthParam(c)
	if err != nil {
		return err
	}
	input, err := h.bindExpense(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, h.ledgerService.AddVariableExpense(month, input))
}

// DeleteVariableExpense handles DELETE /api/v1/months/:month/variable-expenses/:id
func (h *ExpenseHandler) DeleteVariableExpense(c echo.Context) error {
	month, err := validateMonthParam(c)
	if err != nil {
		return err
	}
	h.ledgerService.DeleteVariableExpense(month, c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// ListTaxes handles GET /api/v1/months/:month/taxes
func (h *ExpenseHandler) ListTaxes(c echo.Context) error {
	month, err := validateMonthParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.ledgerService.GetMonth(month).Taxes)
}

// CreateTax handles POST /api/v1/months/:month/taxes
func (h *ExpenseHandler) CreateTax(c echo.Context) error {
	month, err := validateMonthParam(c)
	if err != nil {
		return err
	}
	input, err := h.bindExpense(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, h.ledgerService.AddTax(month, input))
}

// DeleteTax handles DELETE /api/v1/months/:month/taxes/:id
func (h *ExpenseHandler) DeleteTax(c echo.Context) error {
	month, err := validateMonthParam(c)
	if err != nil {
		return err
	}
	h.ledgerService.DeleteTax(month, c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
