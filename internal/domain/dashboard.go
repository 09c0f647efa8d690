package domain

import "github.com/shopspring/decimal"

// MonthTotals is the calendar screen's wider aggregation. Balance =
// Income - DailyExpenses - FixedExpenses - Taxes - PendingBills, where
// PendingBills sums every bill whose status is not paid. Variable
// expenses are not part of this formula.
type MonthTotals struct {
	Income        decimal.Decimal `json:"income"`
	CardIncome    decimal.Decimal `json:"cardIncome"`
	CashIncome    decimal.Decimal `json:"cashIncome"`
	DailyExpenses decimal.Decimal `json:"dailyExpenses"`
	FixedExpenses decimal.Decimal `json:"fixedExpenses"`
	Taxes         decimal.Decimal `json:"taxes"`
	PendingBills  decimal.Decimal `json:"pendingBills"`
	OverdueBills  decimal.Decimal `json:"overdueBills"`
	Balance       decimal.Decimal `json:"balance"`
}

// DashboardSummary is the dashboard payload: totals for the requested
// month, the rule evaluator's notifications, and a last-seven-days
// series for the week chart.
type DashboardSummary struct {
	Month         string         `json:"month"`
	Totals        MonthTotals    `json:"totals"`
	Notifications []Notification `json:"notifications"`
	Week          []DailySummary `json:"week"`
}
