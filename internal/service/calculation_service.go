package service

import (
	"sort"
	"time"

	"github.com/finza/finza-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationService derives summary numbers from stored collections
// without mutating them. Every method is a pure read over the ledger.
type CalculationService struct {
	ledger domain.LedgerRepository
	bills  domain.BillRepository
}

// NewCalculationService creates a new CalculationService
func NewCalculationService(ledger domain.LedgerRepository, bills domain.BillRepository) *CalculationService {
	return &CalculationService{
		ledger: ledger,
		bills:  bills,
	}
}

func sumTransactions(list []*domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range list {
		total = total.Add(tx.Amount)
	}
	return total
}

// DayTotals sums a day's collections: profit = incomes - expenses.
func (s *CalculationService) DayTotals(date string) domain.DailySummary {
	day := s.ledger.GetDay(date)
	incomes := sumTransactions(day.Incomes)
	expenses := sumTransactions(day.Expenses)
	return domain.DailySummary{
		Date:     date,
		Incomes:  incomes,
		Expenses: expenses,
		Profit:   incomes.Sub(expenses),
	}
}

// CalculateMonthSummary iterates all days of the month, producing totals
// and a per-day breakdown sorted ascending by date. FinalProfit =
// incomes - daily expenses - fixed expenses - variable expenses.
func (s *CalculationService) CalculateMonthSummary(month string) *domain.MonthSummary {
	m := s.ledger.GetMonth(month)

	totalIncomes := decimal.Zero
	totalExpenses := decimal.Zero
	dailyData := make([]domain.DailySummary, 0, len(m.Days))

	for date, day := range m.Days {
		dayIncomes := sumTransactions(day.Incomes)
		dayExpenses := sumTransactions(day.Expenses)

		totalIncomes = totalIncomes.Add(dayIncomes)
		totalExpenses = totalExpenses.Add(dayExpenses)

		dailyData = append(dailyData, domain.DailySummary{
			Date:     date,
			Incomes:  dayIncomes,
			Expenses: dayExpenses,
			Profit:   dayIncomes.Sub(dayExpenses),
		})
	}

	// Lexicographic order is chronological for YYYY-MM-DD
	sort.Slice(dailyData, func(i, j int) bool {
		return dailyData[i].Date < dailyData[j].Date
	})

	totalFixed := decimal.Zero
	for _, e := range m.FixedExpenses {
		totalFixed = totalFixed.Add(e.Amount)
	}
	totalVariable := decimal.Zero
	for _, e := range m.VariableExpenses {
		totalVariable = totalVariable.Add(e.Amount)
	}

	return &domain.MonthSummary{
		TotalIncomes:          totalIncomes,
		TotalExpenses:         totalExpenses,
		TotalFixedExpenses:    totalFixed,
		TotalVariableExpenses: totalVariable,
		FinalProfit:           totalIncomes.Sub(totalExpenses).Sub(totalFixed).Sub(totalVariable),
		DailyData:             dailyData,
	}
}

// CalculateMonthTotals computes the calendar screen's wider aggregation:
// income split by payment method, fixed expenses and taxes of the month,
// and the global bill sums. Balance = income - daily expenses - fixed
// expenses - taxes - pending bills.
func (s *CalculationService) CalculateMonthTotals(month string) *domain.MonthTotals {
	m := s.ledger.GetMonth(month)

	income := decimal.Zero
	cardIncome := decimal.Zero
	cashIncome := decimal.Zero
	dailyExpenses := decimal.Zero

	for _, day := range m.Days {
		for _, tx := range day.Incomes {
			income = income.Add(tx.Amount)
			if tx.PaymentMethod != nil {
				switch *tx.PaymentMethod {
				case domain.PaymentMethodCard:
					cardIncome = cardIncome.Add(tx.Amount)
				case domain.PaymentMethodCash:
					cashIncome = cashIncome.Add(tx.Amount)
				}
			}
		}
		for _, tx := range day.Expenses {
			dailyExpenses = dailyExpenses.Add(tx.Amount)
		}
	}

	fixedExpenses := decimal.Zero
	for _, e := range m.FixedExpenses {
		fixedExpenses = fixedExpenses.Add(e.Amount)
	}
	taxes := decimal.Zero
	for _, t := range m.Taxes {
		taxes = taxes.Add(t.Amount)
	}

	pendingBills := decimal.Zero
	overdueBills := decimal.Zero
	for _, bill := range s.bills.ListBills() {
		if bill.Status != domain.BillStatusPaid {
			pendingBills = pendingBills.Add(bill.Amount)
		}
		if bill.Status == domain.BillStatusOverdue {
			overdueBills = overdueBills.Add(bill.Amount)
		}
	}

	return &domain.MonthTotals{
		Income:        income,
		CardIncome:    cardIncome,
		CashIncome:    cashIncome,
		DailyExpenses: dailyExpenses,
		FixedExpenses: fixedExpenses,
		Taxes:         taxes,
		PendingBills:  pendingBills,
		OverdueBills:  overdueBills,
		Balance:       income.Sub(dailyExpenses).Sub(fixedExpenses).Sub(taxes).Sub(pendingBills),
	}
}

// WeekSeries returns day totals for the seven dates ending at now's
// date, oldest first, for the dashboard's week chart.
func (s *CalculationService) WeekSeries(now time.Time) []domain.DailySummary {
	series := make([]domain.DailySummary, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		series = append(series, s.DayTotals(date))
	}
	return series
}
