package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mts-ml/eManage-sub000/sales"
)

func saleWithItems(amountPaid string) *sales.Sale {
	return &sales.Sale{
		ID:       "sale-1",
		ClientID: "client-1",
		Date:     time.Now(),
		Items: []sales.Item{
			{ProductID: "p1", Quantity: 3, UnitPrice: decimal.RequireFromString("10.50")},
			{ProductID: "p2", Quantity: 2, UnitPrice: decimal.RequireFromString("4.25")},
		},
		AmountPaid: decimal.RequireFromString(amountPaid),
	}
}

func TestComputeTotalSumsItems(t *testing.T) {
	sale := saleWithItems("0")
	sale.ComputeTotal()

	// 3 x 10.50 + 2 x 4.25 = 40.00
	require.True(t, sale.Total.Equal(decimal.RequireFromString("40.00")),
		"total = %s", sale.Total)
}

func TestPaymentStatusDerivation(t *testing.T) {
	tests := []struct {
		name       string
		amountPaid string
		want       sales.PaymentStatus
	}{
		{"nothing paid", "0", sales.StatusPending},
		{"partially paid", "15.00", sales.StatusPartial},
		{"fully paid", "40.00", sales.StatusPaid},
		{"overpaid", "50.00", sales.StatusPaid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sale := saleWithItems(tc.amountPaid)
			sale.ComputeTotal()
			require.Equal(t, tc.want, sale.Status)
		})
	}
}

func TestEmptySaleIsPending(t *testing.T) {
	sale := &sales.Sale{ID: "sale-1", ClientID: "client-1"}
	sale.ComputeTotal()

	require.True(t, sale.Total.IsZero())
	require.Equal(t, sales.StatusPending, sale.Status)
}

func TestOutstanding(t *testing.T) {
	sale := saleWithItems("15.00")
	sale.ComputeTotal()
	require.True(t, sale.Outstanding().Equal(decimal.RequireFromString("25.00")))

	overpaid := saleWithItems("50.00")
	overpaid.ComputeTotal()
	require.True(t, overpaid.Outstanding().IsZero())
}
