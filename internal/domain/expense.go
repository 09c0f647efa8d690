package domain

import "github.com/shopspring/decimal"

// FixedExpense is a recurring monthly cost not tied to a specific day.
type FixedExpense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Month       string          `json:"month"` // YYYY-MM
}

// VariableExpense is a non-recurring monthly cost not tied to a specific day.
type VariableExpense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Month       string          `json:"month"`
}

// Tax is a month-scoped tax charge. It enters the calendar balance
// formula but not the month summary.
type Tax struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Month       string          `json:"month"`
}

// ExpenseInput is the shared creation shape for fixed expenses, variable
// expenses and taxes.
type ExpenseInput struct {
	Description string
	Amount      decimal.Decimal
}
