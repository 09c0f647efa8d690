package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/finza/finza-backend/internal/domain"
	"github.com/finza/finza-backend/internal/service"
	"github.com/finza/finza-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BillHandler handles bill HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new BillHandler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// BillRequest represents a bill creation request
type BillRequest struct {
	Creditor    string          `json:"creditor"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"dueDate"`
	Description string          `json:"description"`
}

// ListBills handles GET /api/v1/bills
func (h *BillHandler) ListBills(c echo.Context) error {
	return c.JSON(http.StatusOK, h.billService.ListBills(time.Now()))
}

// CreateBill handles POST /api/v1/bills
func (h *BillHandler) CreateBill(c echo.Context) error {
	var req BillRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if req.Creditor == "" {
		return NewValidationError(c, "Creditor is required", []ValidationError{
			{Field: "creditor", Message: "Creditor cannot be empty"},
		})
	}
	if req.Amount.IsNegative() {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Amount cannot be negative"},
		})
	}
	if !util.IsDateKey(req.DueDate) {
		return NewValidationError(c, "Invalid due date", []ValidationError{
			{Field: "dueDate", Message: "Due date must be in YYYY-MM-DD format"},
		})
	}

	bill := h.billService.AddBill(domain.BillInput{
		Creditor:    req.Creditor,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Description: req.Description,
	}, time.Now())
	return c.JSON(http.StatusCreated, bill)
}

// ToggleBillStatus handles PATCH /api/v1/bills/:id/toggle-status
func (h *BillHandler) ToggleBillStatus(c echo.Context) error {
	bill, err := h.billService.ToggleBillStatus(c.Param("id"), time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Bill not found")
		}
		return NewInternalError(c, "Failed to toggle bill status")
	}
	return c.JSON(http.StatusOK, bill)
}

// DeleteBill handles DELETE /api/v1/bills/:id
func (h *BillHandler) DeleteBill(c echo.Context) error {
	h.billService.DeleteBill(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
