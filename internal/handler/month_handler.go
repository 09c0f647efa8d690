package handler

import (
	"net/http"

	"github.com/finza/finza-backend/internal/service"
	"github.com/finza/finza-backend/internal/util"
	"github.com/labstack/echo/v4"
)

// MonthHandler handles month-related HTTP requests
type MonthHandler struct {
	ledgerService *service.LedgerService
	calcService   *service.CalculationService
}

// NewMonthHandler creates a new MonthHandler
func NewMonthHandler(ledgerService *service.LedgerService, calcService *service.CalculationService) *MonthHandler {
	return &MonthHandler{
		ledgerService: ledgerService,
		calcService:   calcService,
	}
}

// CalendarResponse carries the metadata a client needs to render a
// month grid.
type CalendarResponse struct {
	Month         string   `json:"month"`
	Label         string   `json:"label"`
	DaysInMonth   int      `json:"daysInMonth"`
	FirstWeekday  int      `json:"firstWeekday"` // 0 = Sunday
	Dates         []string `json:"dates"`
	PreviousMonth string   `json:"previousMonth"`
	NextMonth     string   `json:"nextMonth"`
}

func validateMonthParam(c echo.Context) (string, error) {
	month := c.Param("month")
	if !util.IsMonthKey(month) {
		return "", NewValidationError(c, "Invalid month", []ValidationError{
			{Field: "month", Message: "Month must be in YYYY-MM format"},
		})
	}
	return month, nil
}

// ListMonths handles GET /api/v1/months
func (h *MonthHandler) ListMonths(c echo.Context) error {
	return c.JSON(http.StatusOK, h.ledgerService.AvailableMonths())
}

// GetMonth handles GET /api/v1/months/:month
func (h *MonthHandler) GetMonth(c echo.Context) error {
	month, err := validateMonthParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.ledgerService.GetMonth(month))
}

// GetSummary handles GET /api/v1/months/:month/summary
func (h *MonthHandler) GetSummary(c echo.Context) error {
	month, err := validateMonthParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.calcService.CalculateMonthSummary(month))
}

// GetTotals handles GET /api/v1/months/:month/totals
func (h *MonthHandler) GetTotals(c echo.Context) error {
	month, err := validateMonthParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.calcService.CalculateMonthTotals(month))
}

// GetCalendar handles GET /api/v1/months/:month/calendar
func (h *MonthHandler) GetCalendar(c echo.Context) error {
	month, err := validateMonthParam(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CalendarResponse{
		Month:         month,
		Label:         util.FormatMonthYear(month),
		DaysInMonth:   util.DaysInMonth(month),
		FirstWeekday:  util.FirstWeekday(month),
		Dates:         util.MonthDates(month),
		PreviousMonth: util.PreviousMonth(month),
		NextMonth:     util.NextMonth(month),
	})
}
