package service

import (
	"time"

	"github.com/finza/finza-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// BillView is a bill enriched with the live distance to its due date.
// The stored status is returned as-is; only daysUntilDue is recomputed
// on every read.
type BillView struct {
	domain.Bill
	DaysUntilDue int `json:"daysUntilDue"`
}

// BillService manages the global bill list.
type BillService struct {
	bills domain.BillRepository
}

// NewBillService creates a new BillService
func NewBillService(bills domain.BillRepository) *BillService {
	return &BillService{bills: bills}
}

// ListBills returns every bill with daysUntilDue computed against now.
func (s *BillService) ListBills(now time.Time) []BillView {
	bills := s.bills.ListBills()
	views := make([]BillView, 0, len(bills))
	for _, bill := range bills {
		views = append(views, BillView{
			Bill:         *bill,
			DaysUntilDue: DaysUntilDue(bill, now),
		})
	}
	return views
}

// AddBill stores a new bill. Status is derived from the due date at this
// moment and never re-evaluated afterwards.
func (s *BillService) AddBill(input domain.BillInput, now time.Time) BillView {
	bill := s.bills.AddBill(input)
	return BillView{Bill: *bill, DaysUntilDue: DaysUntilDue(bill, now)}
}

// ToggleBillStatus flips a bill between paid and unpaid. Paid becomes
// pending; pending and overdue both become paid.
func (s *BillService) ToggleBillStatus(id string, now time.Time) (*BillView, error) {
	bill := s.bills.ToggleBillStatus(id)
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	return &BillView{Bill: *bill, DaysUntilDue: DaysUntilDue(bill, now)}, nil
}

// DeleteBill removes a bill by id. Unknown ids are a no-op.
func (s *BillService) DeleteBill(id string) {
	s.bills.DeleteBill(id)
}

// PendingTotal sums every bill that is not paid.
func (s *BillService) PendingTotal() decimal.Decimal {
	total := decimal.Zero
	for _, bill := range s.bills.ListBills() {
		if bill.Status != domain.BillStatusPaid {
			total = total.Add(bill.Amount)
		}
	}
	return total
}

// DaysUntilDue counts whole calendar days from now's date to the bill's
// due date. Negative when the due date is past, zero when due today.
// Malformed due dates count as zero.
func DaysUntilDue(bill *domain.Bill, now time.Time) int {
	due, err := time.Parse("2006-01-02", bill.DueDate)
	if err != nil {
		return 0
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(due.Sub(today).Hours() / 24)
}
