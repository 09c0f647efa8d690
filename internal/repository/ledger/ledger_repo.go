// Package ledger implements the finance store accessors over a single
// serialized blob in a KV medium. All reads resolve missing or corrupt
// data to empty defaults and never fail; writes are best-effort with
// last-write-wins semantics.
package ledger

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/finza/finza-backend/internal/domain"
	"github.com/finza/finza-backend/internal/repository/storage"
	"github.com/finza/finza-backend/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	financeDataKey = "finance_data"
	billsDataKey   = "bills_data"
)

// Repository holds every month's data under one KV slot and the global
// bill list under another. A single mutex serializes read-modify-write
// cycles so concurrent HTTP requests cannot interleave on the blob.
type Repository struct {
	kv  storage.KV
	mu  sync.Mutex
	now func() time.Time
}

// New creates a ledger repository over the given medium.
func New(kv storage.KV) *Repository {
	return &Repository{kv: kv, now: time.Now}
}

// newID generates a collection-unique id from a timestamp and a random
// fragment, in that order, so ids sort roughly by creation time.
func (r *Repository) newID() string {
	return fmt.Sprintf("%d-%s", r.now().UnixMilli(), uuid.NewString()[:8])
}

// loadStore reads and decodes the full month map. Missing or corrupt
// blobs are an empty store.
func (r *Repository) loadStore() map[string]*domain.Month {
	data, ok := r.kv.Get(financeDataKey)
	if !ok {
		return map[string]*domain.Month{}
	}
	var store map[string]*domain.Month
	if err := json.Unmarshal(data, &store); err != nil {
		log.Debug().Err(err).Msg("Finance data corrupt, treating as empty")
		return map[string]*domain.Month{}
	}
	if store == nil {
		return map[string]*domain.Month{}
	}
	return store
}

// saveStore persists the full month map. Write failures are logged and
// swallowed: the medium being unavailable must not surface as an error.
func (r *Repository) saveStore(store map[string]*domain.Month) {
	data, err := json.Marshal(store)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to encode finance data")
		return
	}
	if err := r.kv.Put(financeDataKey, data); err != nil {
		log.Warn().Err(err).Msg("Failed to persist finance data")
	}
}

// ensureShape backfills nil collections left behind by older blobs.
func ensureShape(m *domain.Month, month string) *domain.Month {
	if m == nil {
		return domain.NewMonth(month)
	}
	if m.Month == "" {
		m.Month = month
	}
	if m.FixedExpenses == nil {
		m.FixedExpenses = []*domain.FixedExpense{}
	}
	if m.VariableExpenses == nil {
		m.VariableExpenses = []*domain.VariableExpense{}
	}
	if m.Taxes == nil {
		m.Taxes = []*domain.Tax{}
	}
	if m.Days == nil {
		m.Days = map[string]*domain.Day{}
	}
	return m
}

func (r *Repository) getMonth(month string) *domain.Month {
	return ensureShape(r.loadStore()[month], month)
}

func (r *Repository) saveMonth(month string, data *domain.Month) {
	store := r.loadStore()
	store[month] = data
	r.saveStore(store)
}

func (r *Repository) getDay(date string) *domain.Day {
	m := r.getMonth(util.MonthOfDate(date))
	if day, ok := m.Days[date]; ok && day != nil {
		if day.Incomes == nil {
			day.Incomes = []*domain.Transaction{}
		}
		if day.Expenses == nil {
			day.Expenses = []*domain.Transaction{}
		}
		return day
	}
	return domain.NewDay(date)
}

func (r *Repository) saveDay(date string, day *domain.Day) {
	month := util.MonthOfDate(date)
	m := r.getMonth(month)
	m.Days[date] = day
	r.saveMonth(month, m)
}

// GetMonth returns the stored month or its empty-shape default.
func (r *Repository) GetMonth(month string) *domain.Month {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getMonth(month)
}

// SaveMonth replaces the entire month record and persists the store.
func (r *Repository) SaveMonth(month string, data *domain.Month) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveMonth(month, data)
}

// GetDay returns the stored day or its empty-shape default.
func (r *Repository) GetDay(date string) *domain.Day {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getDay(date)
}

// SaveDay replaces the day inside its owning month and persists.
func (r *Repository) SaveDay(date string, day *domain.Day) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveDay(date, day)
}

// AddTransaction assigns an id, appends the transaction to the day's
// income or expense collection by type, persists, and returns the
// stored record.
func (r *Repository) AddTransaction(date string, input domain.TransactionInput) *domain.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := &domain.Transaction{
		ID:            r.newID(),
		Description:   input.Description,
		Amount:        input.Amount,
		Date:          date,
		Type:          input.Type,
		PaymentMethod: input.PaymentMethod,
	}

	day := r.getDay(date)
	if input.Type == domain.TransactionTypeIncome {
		day.Incomes = append(day.Incomes, tx)
	} else {
		day.Expenses = append(day.Expenses, tx)
	}
	r.saveDay(date, day)
	return tx
}

// UpdateTransaction overwrites the non-nil fields of a transaction in
// either collection. Returns the updated record, or nil if the id is
// unknown on that date.
func (r *Repository) UpdateTransaction(date, id string, updates domain.TransactionUpdate) *domain.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := r.getDay(date)
	var updated *domain.Transaction
	apply := func(list []*domain.Transaction) {
		for _, tx := range list {
			if tx.ID != id {
				continue
			}
			if updates.Description != nil {
				tx.Description = *updates.Description
			}
			if updates.Amount != nil {
				tx.Amount = *updates.Amount
			}
			if updates.PaymentMethod != nil {
				tx.PaymentMethod = updates.PaymentMethod
			}
			updated = tx
		}
	}
	apply(day.Incomes)
	apply(day.Expenses)

	if updated == nil {
		return nil
	}
	r.saveDay(date, day)
	return updated
}

// DeleteTransaction removes the transaction by id from the specified
// collection. Unknown ids are a silent no-op.
func (r *Repository) DeleteTransaction(date, id string, txType domain.TransactionType) {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := r.getDay(date)
	if txType == domain.TransactionTypeIncome {
		day.Incomes = removeTransaction(day.Incomes, id)
	} else {
		day.Expenses = removeTransaction(day.Expenses, id)
	}
	r.saveDay(date, day)
}

func removeTransaction(list []*domain.Transaction, id string) []*domain.Transaction {
	kept := make([]*domain.Transaction, 0, len(list))
	for _, tx := range list {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	return kept
}

// SetReceiptKey records (or clears, with nil) the receipt object key on
// a transaction. Returns the transaction, or nil if the id is unknown.
func (r *Repository) SetReceiptKey(date, id string, key *string) *domain.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := r.getDay(date)
	var found *domain.Transaction
	for _, tx := range append(append([]*domain.Transaction{}, day.Incomes...), day.Expenses...) {
		if tx.ID == id {
			tx.ReceiptKey = key
			found = tx
		}
	}
	if found == nil {
		return nil
	}
	r.saveDay(date, day)
	return found
}

// AddFixedExpense appends a fixed expense to the month and persists.
func (r *Repository) AddFixedExpense(month string, input domain.ExpenseInput) *domain.FixedExpense {
	r.mu.Lock()
	defer r.mu.Unlock()

	expense := &domain.FixedExpense{
		ID:          r.newID(),
		Description: input.Description,
		Amount:      input.Amount,
		Month:       month,
	}
	m := r.getMonth(month)
	m.FixedExpenses = append(m.FixedExpenses, expense)
	r.saveMonth(month, m)
	return expense
}

// DeleteFixedExpense removes a fixed expense by id. Silent no-op when
// the id is unknown.
func (r *Repository) DeleteFixedExpense(month, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.getMonth(month)
	kept := make([]*domain.FixedExpense, 0, len(m.FixedExpenses))
	for _, e := range m.FixedExpenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	m.FixedExpenses = kept
	r.saveMonth(month, m)
}

// AddVariableExpense appends a variable expense to the month and persists.
func (r *Repository) AddVariableExpense(month string, input domain.ExpenseInput) *domain.VariableExpense {
	r.mu.Lock()
	defer r.mu.Unlock()

	expense := &domain.VariableExpense{
		ID:          r.newID(),
		Description: input.Description,
		Amount:      input.Amount,
		Month:       month,
	}
	m := r.getMonth(month)
	m.VariableExpenses = append(m.VariableExpenses, expense)
	r.saveMonth(month, m)
	return expense
}

// DeleteVariableExpense removes a variable expense by id.
func (r *Repository) DeleteVariableExpense(month, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.getMonth(month)
	kept := make([]*domain.VariableExpense, 0, len(m.VariableExpenses))
	for _, e := range m.VariableExpenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	m.VariableExpenses = kept
	r.saveMonth(month, m)
}

// AddTax appends a tax charge to the month and persists.
func (r *Repository) AddTax(month string, input domain.ExpenseInput) *domain.Tax {
	r.mu.Lock()
	defer r.mu.Unlock()

	tax := &domain.Tax{
		ID:          r.newID(),
		Description: input.Description,
		Amount:      input.Amount,
		Month:       month,
	}
	m := r.getMonth(month)
	m.Taxes = append(m.Taxes, tax)
	r.saveMonth(month, m)
	return tax
}

// DeleteTax removes a tax charge by id.
func (r *Repository) DeleteTax(month, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.getMonth(month)
	kept := make([]*domain.Tax, 0, len(m.Taxes))
	for _, t := range m.Taxes {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	m.Taxes = kept
	r.saveMonth(month, m)
}

// AvailableMonths lists every stored month key, most recent first.
// Lexicographic descending is chronologically descending for YYYY-MM.
func (r *Repository) AvailableMonths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	store := r.loadStore()
	months := make([]string, 0, len(store))
	for key := range store {
		months = append(months, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}
