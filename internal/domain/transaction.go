package domain

import "github.com/shopspring/decimal"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

// Transaction is a single day-scoped movement. Amount is always
// non-negative; the cash-flow direction is carried by Type.
type Transaction struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Type          TransactionType `json:"type"`
	PaymentMethod *PaymentMethod  `json:"paymentMethod,omitempty"`
	ReceiptKey    *string         `json:"receiptKey,omitempty"`
}

// TransactionInput is a transaction before an id has been assigned.
type TransactionInput struct {
	Description   string
	Amount        decimal.Decimal
	Type          TransactionType
	PaymentMethod *PaymentMethod
}

// TransactionUpdate carries field overwrites; nil fields are left unchanged.
type TransactionUpdate struct {
	Description   *string
	Amount        *decimal.Decimal
	PaymentMethod *PaymentMethod
}
