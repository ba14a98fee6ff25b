package reports_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mts-ml/eManage-sub000/expenses"
	"github.com/mts-ml/eManage-sub000/purchases"
	"github.com/mts-ml/eManage-sub000/reports"
	"github.com/mts-ml/eManage-sub000/sales"
)

func TestCashFlowSummarizesPeriod(t *testing.T) {
	salesRepo := sales.NewInMemoryRepo()
	purchasesRepo := purchases.NewInMemoryRepo()
	expensesRepo := expenses.NewInMemoryRepo()

	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)

	sale := &sales.Sale{
		ID:       "s1",
		ClientID: "c1",
		Date:     jan,
		Items:    []sales.Item{{ProductID: "p1", Quantity: 10, UnitPrice: decimal.RequireFromString("10")}},
	}
	sale.AmountPaid = decimal.RequireFromString("60")
	sale.ComputeTotal() // total 100, 40 outstanding
	require.NoError(t, salesRepo.Upsert(sale))

	outOfPeriod := &sales.Sale{
		ID:       "s2",
		ClientID: "c1",
		Date:     feb,
		Items:    []sales.Item{{ProductID: "p1", Quantity: 1, UnitPrice: decimal.RequireFromString("999")}},
	}
	outOfPeriod.ComputeTotal()
	require.NoError(t, salesRepo.Upsert(outOfPeriod))

	purchase := &purchases.Purchase{
		ID:         "b1",
		SupplierID: "f1",
		Date:       jan,
		Items:      []purchases.Item{{ProductID: "p2", Quantity: 5, UnitPrice: decimal.RequireFromString("6")}},
	}
	purchase.AmountPaid = decimal.RequireFromString("20")
	purchase.ComputeTotal() // total 30, 10 outstanding
	require.NoError(t, purchasesRepo.Upsert(purchase))

	require.NoError(t, expensesRepo.Upsert(&expenses.Expense{
		ID: "e1", Description: "fuel", Amount: decimal.RequireFromString("15"), Date: jan, Paid: true,
	}))
	require.NoError(t, expensesRepo.Upsert(&expenses.Expense{
		ID: "e2", Description: "rent", Amount: decimal.RequireFromString("200"), Date: jan, Paid: false,
	}))

	service := reports.NewService(salesRepo, purchasesRepo, expensesRepo)
	report, err := service.CashFlow(
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	require.True(t, report.TotalReceived.Equal(decimal.RequireFromString("60")), "received = %s", report.TotalReceived)
	require.True(t, report.TotalSpent.Equal(decimal.RequireFromString("35")), "spent = %s", report.TotalSpent)
	require.True(t, report.Receivables.Equal(decimal.RequireFromString("40")), "receivables = %s", report.Receivables)
	require.True(t, report.Payables.Equal(decimal.RequireFromString("210")), "payables = %s", report.Payables)
	require.True(t, report.Net.Equal(decimal.RequireFromString("25")), "net = %s", report.Net)
}

func TestCashFlowEmptyRegistries(t *testing.T) {
	service := reports.NewService(sales.NewInMemoryRepo(), purchases.NewInMemoryRepo(), expenses.NewInMemoryRepo())

	report, err := service.CashFlow(time.Time{}, time.Now())
	require.NoError(t, err)
	require.True(t, report.TotalReceived.IsZero())
	require.True(t, report.TotalSpent.IsZero())
	require.True(t, report.Net.IsZero())
}
