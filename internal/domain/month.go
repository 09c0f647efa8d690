package domain

import "github.com/shopspring/decimal"

// Day groups the transactions recorded on one calendar date. It is keyed
// by its date string inside the owning Month.
type Day struct {
	Date     string         `json:"date"` // YYYY-MM-DD
	Incomes  []*Transaction `json:"incomes"`
	Expenses []*Transaction `json:"expenses"`
}

// Month is the unit of persistence: everything recorded for one YYYY-MM
// key. A Day belongs to the Month whose key equals the first 7 characters
// of its date.
type Month struct {
	Month            string             `json:"month"` // YYYY-MM
	FixedExpenses    []*FixedExpense    `json:"fixedExpenses"`
	VariableExpenses []*VariableExpense `json:"variableExpenses"`
	Taxes            []*Tax             `json:"taxes"`
	Days             map[string]*Day    `json:"days"`
}

// NewMonth returns the empty-shape default for a month key.
func NewMonth(month string) *Month {
	return &Month{
		Month:            month,
		FixedExpenses:    []*FixedExpense{},
		VariableExpenses: []*VariableExpense{},
		Taxes:            []*Tax{},
		Days:             map[string]*Day{},
	}
}

// NewDay returns the empty-shape default for a date.
func NewDay(date string) *Day {
	return &Day{
		Date:     date,
		Incomes:  []*Transaction{},
		Expenses: []*Transaction{},
	}
}

// DailySummary is one row of a month's per-day breakdown.
type DailySummary struct {
	Date     string          `json:"date"`
	Incomes  decimal.Decimal `json:"incomes"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// MonthSummary is the derived view over a Month's collections.
// FinalProfit = TotalIncomes - TotalExpenses - TotalFixedExpenses -
// TotalVariableExpenses. Taxes and bills are not part of this formula;
// they belong to the calendar screen's MonthTotals.
type MonthSummary struct {
	TotalIncomes          decimal.Decimal `json:"totalIncomes"`
	TotalExpenses         decimal.Decimal `json:"totalExpenses"`
	TotalFixedExpenses    decimal.Decimal `json:"totalFixedExpenses"`
	TotalVariableExpenses decimal.Decimal `json:"totalVariableExpenses"`
	FinalProfit           decimal.Decimal `json:"finalProfit"`
	DailyData             []DailySummary  `json:"dailyData"`
}

// LedgerRepository is the storage accessor over the single-slot finance
// store. Reads never fail: a missing month, day or id resolves to an
// empty default or a silent no-op, and a corrupt or unavailable backing
// medium is treated as an empty store.
type LedgerRepository interface {
	GetMonth(month string) *Month
	SaveMonth(month string, data *Month)
	GetDay(date string) *Day
	SaveDay(date string, day *Day)

	AddTransaction(date string, input TransactionInput) *Transaction
	UpdateTransaction(date, id string, updates TransactionUpdate) *Transaction
	DeleteTransaction(date, id string, txType TransactionType)
	SetReceiptKey(date, id string, key *string) *Transaction

	AddFixedExpense(month string, input ExpenseInput) *FixedExpense
	DeleteFixedExpense(month, id string)
	AddVariableExpense(month string, input ExpenseInput) *VariableExpense
	DeleteVariableExpense(month, id string)
	AddTax(month string, input ExpenseInput) *Tax
	DeleteTax(month, id string)

	AvailableMonths() []string
}
