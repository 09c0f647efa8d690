package domain

import "github.com/shopspring/decimal"

type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
	BillStatusOverdue BillStatus = "overdue"
)

// Bill is a payable obligation. Bills live on a single global list, not
// inside a month. Status is derived once at creation (overdue iff the due
// date is already past) and afterwards only toggled between paid and
// pending; it is never re-evaluated as time passes.
type Bill struct {
	ID          string          `json:"id"`
	Creditor    string          `json:"creditor"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"dueDate"` // YYYY-MM-DD
	Status      BillStatus      `json:"status"`
	Description string          `json:"description"`
}

// BillInput is a bill before id and status have been assigned.
type BillInput struct {
	Creditor    string
	Amount      decimal.Decimal
	DueDate     string
	Description string
}

// BillRepository persists the global bill list. Same failure semantics as
// LedgerRepository: reads never fail, unknown ids are silent no-ops.
type BillRepository interface {
	ListBills() []*Bill
	AddBill(input BillInput) *Bill
	ToggleBillStatus(id string) *Bill
	DeleteBill(id string)
}
