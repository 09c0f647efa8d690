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

func newCalcFixture() (*CalculationService, *ledger.Repository) {
	repo := ledger.New(storage.NewMemoryKV())
	return NewCalculationService(repo, repo), repo
}

func method(m domain.PaymentMethod) *domain.PaymentMethod {
	return &m
}

func addTx(repo *ledger.Repository, date, desc, amount string, txType domain.TransactionType, pm *domain.PaymentMethod) {
	repo.AddTransaction(date, domain.TransactionInput{
		Description:   desc,
		Amount:        decimal.RequireFromString(amount),
		Type:          txType,
		PaymentMethod: pm,
	})
}

func TestDayTotalsProfitIdentity(t *testing.T) {
	svc, repo := newCalcFixture()

	addTx(repo, "2025-03-05", "Venta 1", "120.50", domain.TransactionTypeIncome, method(domain.PaymentMethodCard))
	addTx(repo, "2025-03-05", "Venta 2", "79.50", domain.TransactionTypeIncome, method(domain.PaymentMethodCash))
	addTx(repo, "2025-03-05", "Compra", "60.25", domain.TransactionTypeExpense, nil)

	totals := svc.DayTotals("2025-03-05")
	assert.True(t, totals.Incomes.Equal(decimal.RequireFromString("200")))
	assert.True(t, totals.Expenses.Equal(decimal.RequireFromString("60.25")))
	assert.True(t, totals.Profit.Equal(totals.Incomes.Sub(totals.Expenses)))
}

func TestDayTotalsEmptyDay(t *testing.T) {
	svc, _ := newCalcFixture()

	totals := svc.DayTotals("2025-03-05")
	assert.True(t, totals.Incomes.IsZero())
	assert.True(t, totals.Expenses.IsZero())
	assert.True(t, totals.Profit.IsZero())
}

func TestCalculateMonthSummary(t *testing.T) {
	svc, repo := newCalcFixture()

	addTx(repo, "2025-03-10", "Venta", "500", domain.TransactionTypeIncome, nil)
	addTx(repo, "2025-03-02", "Venta", "300", domain.TransactionTypeIncome, nil)
	addTx(repo, "2025-03-02", "Compra", "100", domain.TransactionTypeExpense, nil)
	repo.AddFixedExpense("2025-03", domain.ExpenseInput{Description: "Alquiler", Amount: decimal.NewFromInt(150)})
	repo.AddVariableExpense("2025-03", domain.ExpenseInput{Description: "Reparación", Amount: decimal.NewFromInt(50)})

	summary := svc.CalculateMonthSummary("2025-03")

	assert.True(t, summary.TotalIncomes.Equal(decimal.NewFromInt(800)))
	assert.True(t, summary.TotalExpenses.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.TotalFixedExpenses.Equal(decimal.NewFromInt(150)))
	assert.True(t, summary.TotalVariableExpenses.Equal(decimal.NewFromInt(50)))
	// finalProfit = incomes - expenses - fixed - variable
	assert.True(t, summary.FinalProfit.Equal(decimal.NewFromInt(500)))

	require.Len(t, summary.DailyData, 2)
	assert.Equal(t, "2025-03-02", summary.DailyData[0].Date)
	assert.Equal(t, "2025-03-10", summary.DailyData[1].Date)
	assert.True(t, summary.DailyData[0].Profit.Equal(decimal.NewFromInt(200)))
}

func TestCalculateMonthSummaryEmptyMonth(t *testing.T) {
	svc, _ := newCalcFixture()

	summary := svc.CalculateMonthSummary("2025-03")
	assert.True(t, summary.FinalProfit.IsZero())
	assert.True(t, summary.TotalIncomes.IsZero())
	assert.Empty(t, summary.DailyData)
}

func TestCalculateMonthTotalsBalanceFormula(t *testing.T) {
	svc, repo := newCalcFixture()

	// entradas = 9000 card + 6000 cash = 15000
	addTx(repo, "2025-03-03", "Ventas tarjeta", "9000", domain.TransactionTypeIncome, method(domain.PaymentMethodCard))
	addTx(repo, "2025-03-04", "Ventas efectivo", "6000", domain.TransactionTypeIncome, method(domain.PaymentMethodCash))
	// salidas = 3500
	addTx(repo, "2025-03-05", "Compras", "3500", domain.TransactionTypeExpense, nil)
	// gastosFijos = 4000, impuestos = 2000
	repo.AddFixedExpense("2025-03", domain.ExpenseInput{Description: "Alquiler", Amount: decimal.NewFromInt(4000)})
	repo.AddTax("2025-03", domain.ExpenseInput{Description: "IVA", Amount: decimal.NewFromInt(2000)})
	// cuentasPendientes = 1700 pendiente + 800 vencida = 2500; la pagada no suma
	repo.AddBill(domain.BillInput{Creditor: "Proveedor A", Amount: decimal.NewFromInt(1700), DueDate: "2999-01-01"})
	repo.AddBill(domain.BillInput{Creditor: "Proveedor B", Amount: decimal.NewFromInt(800), DueDate: "2000-01-01"})
	paid := repo.AddBill(domain.BillInput{Creditor: "Proveedor C", Amount: decimal.NewFromInt(999), DueDate: "2999-01-01"})
	repo.ToggleBillStatus(paid.ID)

	totals := svc.CalculateMonthTotals("2025-03")

	assert.True(t, totals.Income.Equal(decimal.NewFromInt(15000)))
	assert.True(t, totals.CardIncome.Equal(decimal.NewFromInt(9000)))
	assert.True(t, totals.CashIncome.Equal(decimal.NewFromInt(6000)))
	assert.True(t, totals.DailyExpenses.Equal(decimal.NewFromInt(3500)))
	assert.True(t, totals.FixedExpenses.Equal(decimal.NewFromInt(4000)))
	assert.True(t, totals.Taxes.Equal(decimal.NewFromInt(2000)))
	assert.True(t, totals.PendingBills.Equal(decimal.NewFromInt(2500)))
	assert.True(t, totals.OverdueBills.Equal(decimal.NewFromInt(800)))
	// 15000 - 3500 - 4000 - 2000 - 2500 = 3000
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(3000)))
}

func TestCalculateMonthTotalsIncomeWithoutMethod(t *testing.T) {
	svc, repo := newCalcFixture()

	addTx(repo, "2025-03-03", "Venta", "100", domain.TransactionTypeIncome, nil)

	totals := svc.CalculateMonthTotals("2025-03")
	assert.True(t, totals.Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, totals.CardIncome.IsZero())
	assert.True(t, totals.CashIncome.IsZero())
}

func TestWeekSeries(t *testing.T) {
	svc, repo := newCalcFixture()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	addTx(repo, "2025-03-10", "Venta hoy", "100", domain.TransactionTypeIncome, nil)
	addTx(repo, "2025-03-04", "Venta", "50", domain.TransactionTypeIncome, nil)
	addTx(repo, "2025-03-03", "Fuera de rango", "999", domain.TransactionTypeIncome, nil)

	series := svc.WeekSeries(now)
	require.Len(t, series, 7)
	assert.Equal(t, "2025-03-04", series[0].Date)
	assert.Equal(t, "2025-03-10", series[6].Date)
	assert.True(t, series[0].Incomes.Equal(decimal.NewFromInt(50)))
	assert.True(t, series[6].Incomes.Equal(decimal.NewFromInt(100)))
	assert.True(t, series[1].Incomes.IsZero())
}
