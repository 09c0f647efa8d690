package service

import (
	"fmt"
	"time"

	"github.com/finza/finza-backend/internal/domain"
	"github.com/finza/finza-backend/internal/util"
	"github.com/shopspring/decimal"
)

// Rule thresholds, as fractions of the month's income
var (
	fixedExpenseRatio = decimal.NewFromFloat(0.3)
	taxRatio          = decimal.NewFromFloat(0.2)
	pendingBillRatio  = decimal.NewFromFloat(0.25)
)

// monthEndReminderDays is the days-remaining cutoff for the end-of-month
// reminder
const monthEndReminderDays = 5

// NotificationService evaluates the advisory rules against a snapshot of
// month totals. It holds no state: notifications are recomputed fresh on
// every dashboard load and never persisted.
type NotificationService struct{}

// NewNotificationService creates a new NotificationService
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// Evaluate runs every rule independently, in listed order, against the
// given totals and wall-clock time. Several rules may fire at once. Ids
// are stable per rule so clients can dedupe across reloads.
func (s *NotificationService) Evaluate(totals *domain.MonthTotals, now time.Time) []domain.Notification {
	notifications := []domain.Notification{}
	add := func(id string, kind domain.NotificationType, title, message string) {
		notifications = append(notifications, domain.Notification{
			ID:        id,
			Type:      kind,
			Title:     title,
			Message:   message,
			Timestamp: now,
			Read:      false,
		})
	}

	// A balance of exactly zero fires neither rule
	if totals.Balance.IsNegative() {
		add("balance-negative", domain.NotificationTypeError,
			"Balance Negativo",
			fmt.Sprintf("Tu balance actual es de %s. Revisa tus gastos.", util.FormatCurrency(totals.Balance)))
	}
	if totals.Balance.IsPositive() {
		add("balance-positive", domain.NotificationTypeSuccess,
			"Balance Positivo",
			fmt.Sprintf("¡Excelente! Tu balance es de %s.", util.FormatCurrency(totals.Balance)))
	}

	if totals.FixedExpenses.GreaterThan(totals.Income.Mul(fixedExpenseRatio)) {
		add("fixed-expenses-high", domain.NotificationTypeWarning,
			"Gastos Fijos Elevados",
			fmt.Sprintf("Tus gastos fijos (%s) representan más del 30%% de tus entradas.", util.FormatCurrency(totals.FixedExpenses)))
	}

	if totals.Taxes.GreaterThan(totals.Income.Mul(taxRatio)) {
		add("taxes-high", domain.NotificationTypeWarning,
			"Impuestos Elevados",
			fmt.Sprintf("Tus impuestos (%s) representan más del 20%% de tus entradas.", util.FormatCurrency(totals.Taxes)))
	}

	if totals.OverdueBills.IsPositive() {
		add("bills-overdue", domain.NotificationTypeError,
			"Cuentas Vencidas",
			fmt.Sprintf("Tienes %s en cuentas vencidas. ¡Paga urgente!", util.FormatCurrency(totals.OverdueBills)))
	}

	if totals.PendingBills.GreaterThan(totals.Income.Mul(pendingBillRatio)) {
		add("bills-pending-high", domain.NotificationTypeWarning,
			"Cuentas Pendientes Elevadas",
			fmt.Sprintf("Tienes %s en cuentas pendientes (más del 25%% de tus entradas).", util.FormatCurrency(totals.PendingBills)))
	}

	// Always relative to the wall-clock month, not the month being viewed
	if daysLeft := util.DaysRemainingInMonth(now); daysLeft <= monthEndReminderDays {
		add("month-ending", domain.NotificationTypeInfo,
			"Fin de Mes Próximo",
			fmt.Sprintf("Quedan %d días para finalizar el mes. Revisa tus pendientes y cuentas a pagar.", daysLeft))
	}

	return notifications
}
