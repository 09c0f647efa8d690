package service

import (
	"github.com/finza/finza-backend/internal/domain"
)

// LedgerService fronts the storage accessor for the HTTP layer. Input
// validation happens in the handlers; by the time a call reaches this
// layer it follows the accessor's contract, so nothing here can fail
// except an unknown id, reported as domain.ErrNotFound.
type LedgerService struct {
	ledger domain.LedgerRepository
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(ledger domain.LedgerRepository) *LedgerService {
	return &LedgerService{ledger: ledger}
}

// GetMonth returns the month record, empty-shaped when absent.
func (s *LedgerService) GetMonth(month string) *domain.Month {
	return s.ledger.GetMonth(month)
}

// GetDay returns the day record, empty-shaped when absent.
func (s *LedgerService) GetDay(date string) *domain.Day {
	return s.ledger.GetDay(date)
}

// AvailableMonths lists every stored month key, newest first.
func (s *LedgerService) AvailableMonths() []string {
	return s.ledger.AvailableMonths()
}

// AddTransaction stores a transaction on the given date and returns it
// with its assigned id.
func (s *LedgerService) AddTransaction(date string, input domain.TransactionInput) *domain.Transaction {
	return s.ledger.AddTransaction(date, input)
}

// UpdateTransaction applies the non-nil fields of updates to the
// transaction with the given id.
func (s *LedgerService) UpdateTransaction(date, id string, updates domain.TransactionUpdate) (*domain.Transaction, error) {
	tx := s.ledger.UpdateTransaction(date, id, updates)
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	return tx, nil
}

// DeleteTransaction removes the transaction from the collection matching
// its type. Unknown ids are a no-op, mirroring the store's semantics.
func (s *LedgerService) DeleteTransaction(date, id string, txType domain.TransactionType) {
	s.ledger.DeleteTransaction(date, id, txType)
}

// AddFixedExpense appends a fixed expense to the month.
func (s *LedgerService) AddFixedExpense(month string, input domain.ExpenseInput) *domain.FixedExpense {
	return s.ledger.AddFixedExpense(month, input)
}

// DeleteFixedExpense removes a fixed expense by id.
func (s *LedgerService) DeleteFixedExpense(month, id string) {
	s.ledger.DeleteFixedExpense(month, id)
}

// AddVariableExpense appends a variable expense to the month.
func (s *LedgerService) AddVariableExpense(month string, input domain.ExpenseInput) *domain.VariableExpense {
	return s.ledger.AddVariableExpense(month, input)
}

// DeleteVariableExpense removes a variable expense by id.
func (s *LedgerService) DeleteVariableExpense(month, id string) {
	s.ledger.DeleteVariableExpense(month, id)
}

// AddTax appends a tax entry to the month.
func (s *LedgerService) AddTax(month string, input domain.ExpenseInput) *domain.Tax {
	return s.ledger.AddTax(month, input)
}

// DeleteTax removes a tax entry by id.
func (s *LedgerService) DeleteTax(month, id string) {
	s.ledger.DeleteTax(month, id)
}
