package service

import (
	"time"

	"github.com/finza/finza-backend/internal/domain"
)

// DashboardService composes the dashboard payload: month totals, the
// rule evaluator's notifications and the week series.
type DashboardService struct {
	calcService         *CalculationService
	notificationService *NotificationService
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(calcService *CalculationService, notificationService *NotificationService) *DashboardService {
	return &DashboardService{
		calcService:         calcService,
		notificationService: notificationService,
	}
}

// GetSummary builds the dashboard snapshot for a month at the given
// wall-clock time.
func (s *DashboardService) GetSummary(month string, now time.Time) *domain.DashboardSummary {
	totals := s.calcService.CalculateMonthTotals(month)
	return &domain.DashboardSummary{
		Month:         month,
		Totals:        *totals,
		Notifications: s.notificationService.Evaluate(totals, now),
		Week:          s.calcService.WeekSeries(now),
	}
}
