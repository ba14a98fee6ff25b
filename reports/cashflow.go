// Package reports aggregates financial movement across sales, purchases and
// expenses. The arithmetic stays at sums; presentation (PDF, charts) lives
// in the SPA, not here.
package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mts-ml/eManage-sub000/expenses"
	"github.com/mts-ml/eManage-sub000/purchases"
	"github.com/mts-ml/eManage-sub000/sales"
)

// CashFlow summarizes money movement inside a period.
type CashFlow struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	TotalReceived decimal.Decimal `json:"total_received"` // Payments received on sales
	TotalSpent    decimal.Decimal `json:"total_spent"`    // Purchases paid plus expenses paid
	Receivables   decimal.Decimal `json:"receivables"`    // Outstanding on sales
	Payables      decimal.Decimal `json:"payables"`       // Outstanding on purchases plus unpaid expenses
	Net           decimal.Decimal `json:"net"`            // TotalReceived - TotalSpent
}

// Service computes reports from the registries.
type Service struct {
	sales     sales.Repo
	purchases purchases.Repo
	expenses  expenses.Repo
}

func NewService(salesRepo sales.Repo, purchasesRepo purchases.Repo, expensesRepo expenses.Repo) *Service {
	return &Service{
		sales:     salesRepo,
		purchases: purchasesRepo,
		expenses:  expensesRepo,
	}
}

// CashFlow computes the summary over [from, to]. A zero "to" means "now".
func (s *Service) CashFlow(from, to time.Time) (*CashFlow, error) {
	if to.IsZero() {
		to = time.Now()
	}
	report := &CashFlow{
		From:          from,
		To:            to,
		TotalReceived: decimal.Zero,
		TotalSpent:    decimal.Zero,
		Receivables:   decimal.Zero,
		Payables:      decimal.Zero,
	}

	allSales, err := s.sales.List(0, 0)
	if err != nil {
		return nil, err
	}
	for _, sale := range allSales {
		if !inPeriod(sale.Date, from, to) {
			continue
		}
		report.TotalReceived = report.TotalReceived.Add(sale.AmountPaid)
		report.Receivables = report.Receivables.Add(sale.Outstanding())
	}

	allPurchases, err := s.purchases.List(0, 0)
	if err != nil {
		return nil, err
	}
	for _, purchase := range allPurchases {
		if !inPeriod(purchase.Date, from, to) {
			continue
		}
		report.TotalSpent = report.TotalSpent.Add(purchase.AmountPaid)
		report.Payables = report.Payables.Add(purchase.Outstanding())
	}

	allExpenses, err := s.expenses.List(0, 0)
	if err != nil {
		return nil, err
	}
	for _, expense := range allExpenses {
		if !inPeriod(expense.Date, from, to) {
			continue
		}
		if expense.Paid {
			report.TotalSpent = report.TotalSpent.Add(expense.Amount)
		} else {
			report.Payables = report.Payables.Add(expense.Amount)
		}
	}

	report.Net = report.TotalReceived.Sub(report.TotalSpent)
	return report, nil
}

func inPeriod(date, from, to time.Time) bool {
	if !from.IsZero() && date.Before(from) {
		return false
	}
	return !date.After(to)
}
