package ledger

import (
	"encoding/json"

	"github.com/finza/finza-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// Bills live on a global list under their own KV slot, outside the
// month-keyed finance data.

func (r *Repository) loadBills() []*domain.Bill {
	data, ok := r.kv.Get(billsDataKey)
	if !ok {
		return []*domain.Bill{}
	}
	var bills []*domain.Bill
	if err := json.Unmarshal(data, &bills); err != nil {
		log.Debug().Err(err).Msg("Bill data corrupt, treating as empty")
		return []*domain.Bill{}
	}
	if bills == nil {
		return []*domain.Bill{}
	}
	return bills
}

func (r *Repository) saveBills(bills []*domain.Bill) {
	data, err := json.Marshal(bills)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to encode bill data")
		return
	}
	if err := r.kv.Put(billsDataKey, data); err != nil {
		log.Warn().Err(err).Msg("Failed to persist bill data")
	}
}

// ListBills returns every stored bill in insertion order.
func (r *Repository) ListBills() []*domain.Bill {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadBills()
}

// AddBill assigns an id, derives the initial status (overdue iff the due
// date is already past, otherwise pending), persists, and returns the
// stored record. The status is not re-evaluated afterwards.
func (r *Repository) AddBill(input domain.BillInput) *domain.Bill {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := domain.BillStatusPending
	if input.DueDate < r.now().Format("2006-01-02") {
		status = domain.BillStatusOverdue
	}

	bill := &domain.Bill{
		ID:          r.newID(),
		Creditor:    input.Creditor,
		Amount:      input.Amount,
		DueDate:     input.DueDate,
		Status:      status,
		Description: input.Description,
	}

	bills := append(r.loadBills(), bill)
	r.saveBills(bills)
	return bill
}

// ToggleBillStatus flips a bill between paid and pending: paid bills
// become pending, anything else (pending or overdue) becomes paid.
// Returns the bill, or nil if the id is unknown.
func (r *Repository) ToggleBillStatus(id string) *domain.Bill {
	r.mu.Lock()
	defer r.mu.Unlock()

	bills := r.loadBills()
	var toggled *domain.Bill
	for _, bill := range bills {
		if bill.ID != id {
			continue
		}
		if bill.Status == domain.BillStatusPaid {
			bill.Status = domain.BillStatusPending
		} else {
			bill.Status = domain.BillStatusPaid
		}
		toggled = bill
	}
	if toggled == nil {
		return nil
	}
	r.saveBills(bills)
	return toggled
}

// DeleteBill removes a bill by id. Silent no-op when the id is unknown.
func (r *Repository) DeleteBill(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bills := r.loadBills()
	kept := make([]*domain.Bill, 0, len(bills))
	for _, bill := range bills {
		if bill.ID != id {
			kept = append(kept, bill)
		}
	}
	r.saveBills(kept)
}
