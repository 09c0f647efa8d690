package handler

import (
	"net/http"
	"time"

	"github.com/finza/finza-backend/internal/service"
	"github.com/finza/finza-backend/internal/util"
	"github.com/labstack/echo/v4"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary handles GET /api/v1/dashboard/summary. The month query
// parameter defaults to the current wall-clock month.
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	month := c.QueryParam("month")
	if month == "" {
		month = util.CurrentMonth()
	}
	if !util.IsMonthKey(month) {
		return NewValidationError(c, "Invalid month", []ValidationError{
			{Field: "month", Message: "Month must be in YYYY-MM format"},
		})
	}

	return c.JSON(http.StatusOK, h.dashboardService.GetSummary(month, time.Now()))
}
