package service

import (
	"testing"
	"time"

	"github.com/finza/finza-backend/internal/domain"
	"github.com/finza/finza-backend/internal/repository/ledger"
	"github.com/finza/finza-backend/internal/repository/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBillFixture() *BillService {
	return NewBillService(ledger.New(storage.NewMemoryKV()))
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)

	cases := []struct {
		dueDate string
		want    int
	}{
		{"2025-03-20", 5},
		{"2025-03-16", 1},
		{"2025-03-15", 0},
		{"2025-03-10", -5},
		{"2025-04-01", 17},
		{"not-a-date", 0},
	}
	for _, tc := range cases {
		bill := &domain.Bill{DueDate: tc.dueDate}
		assert.Equal(t, tc.want, DaysUntilDue(bill, now), "dueDate %s", tc.dueDate)
	}
}

func TestListBillsComputesDaysUntilDueLive(t *testing.T) {
	svc := newBillFixture()

	svc.AddBill(domain.BillInput{
		Creditor: "Proveedor",
		Amount:   decimal.NewFromInt(500),
		DueDate:  "2025-03-20",
	}, time.Now())

	views := svc.ListBills(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	require.Len(t, views, 1)
	assert.Equal(t, 5, views[0].DaysUntilDue)

	// Same stored bill, later clock: the distance shrinks on read
	views = svc.ListBills(time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC))
	require.Len(t, views, 1)
	assert.Equal(t, 1, views[0].DaysUntilDue)
}

func TestToggleBillStatusUnknownID(t *testing.T) {
	svc := newBillFixture()

	_, err := svc.ToggleBillStatus("missing", time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPendingTotalExcludesPaid(t *testing.T) {
	svc := newBillFixture()
	now := time.Now()

	svc.AddBill(domain.BillInput{Creditor: "A", Amount: decimal.NewFromInt(500), DueDate: "2999-01-01"}, now)
	svc.AddBill(domain.BillInput{Creditor: "B", Amount: decimal.NewFromInt(800), DueDate: "2000-01-01"}, now)
	paid := svc.AddBill(domain.BillInput{Creditor: "C", Amount: decimal.NewFromInt(999), DueDate: "2999-01-01"}, now)
	_, err := svc.ToggleBillStatus(paid.ID, now)
	require.NoError(t, err)

	// Overdue counts as pending until paid
	assert.True(t, svc.PendingTotal().Equal(decimal.NewFromInt(1300)))
}

func TestDeleteBillThroughService(t *testing.T) {
	svc := newBillFixture()
	now := time.Now()

	bill := svc.AddBill(domain.BillInput{Creditor: "A", Amount: decimal.NewFromInt(500), DueDate: "2999-01-01"}, now)
	svc.DeleteBill(bill.ID)

	assert.Empty(t, svc.ListBills(now))
}
