// Package purchases holds purchase orders against suppliers.
package purchases

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mts-ml/eManage-sub000/sales"
)

type Item struct {
	ProductID   string          `json:"product_id"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type Purchase struct {
	ID         string              `json:"id,omitempty"`
	SupplierID string              `json:"supplier_id"`
	Date       time.Time           `json:"date"`
	Items      []Item              `json:"items"`
	Total      decimal.Decimal     `json:"total"`
	AmountPaid decimal.Decimal     `json:"amount_paid"`
	Status     sales.PaymentStatus `json:"status"`
	CreatedAt  time.Time           `json:"created_at,omitempty"`
}

// ComputeTotal sums the items into Total and re-derives Status.
func (p *Purchase) ComputeTotal() {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	p.Total = total

	switch {
	case p.AmountPaid.GreaterThanOrEqual(p.Total) && p.Total.IsPositive():
		p.Status = sales.StatusPaid
	case p.AmountPaid.IsPositive():
		p.Status = sales.StatusPartial
	default:
		p.Status = sales.StatusPending
	}
}

// Outstanding returns the amount still owed to the supplier.
func (p *Purchase) Outstanding() decimal.Decimal {
	outstanding := p.Total.Sub(p.AmountPaid)
	if outstanding.IsNegative() {
		return decimal.Zero
	}
	return outstanding
}
