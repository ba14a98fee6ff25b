// Package sales holds sales orders and their payment state. Totals are
// plain item sums; anything beyond that (discounts, taxes) is out of scope.
package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is derived from the amount paid against the total.
type PaymentStatus string

const (
	StatusPending PaymentStatus = "pending"
	StatusPartial PaymentStatus = "partial"
	StatusPaid    PaymentStatus = "paid"
)

type Item struct {
	ProductID   string          `json:"product_id"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type Sale struct {
	ID         string          `json:"id,omitempty"`
	ClientID   string          `json:"client_id"`
	Date       time.Time       `json:"date"`
	Items      []Item          `json:"items"`
	Total      decimal.Decimal `json:"total"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	Status     PaymentStatus   `json:"status"`
	CreatedAt  time.Time       `json:"created_at,omitempty"`
}

// ComputeTotal sums the items into Total and re-derives Status.
func (s *Sale) ComputeTotal() {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	s.Total = total
	s.Status = derivePaymentStatus(s.Total, s.AmountPaid)
}

// Outstanding returns the amount still owed on the sale.
func (s *Sale) Outstanding() decimal.Decimal {
	outstanding := s.Total.Sub(s.AmountPaid)
	if outstanding.IsNegative() {
		return decimal.Zero
	}
	return outstanding
}

func derivePaymentStatus(total, paid decimal.Decimal) PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(total) && total.IsPositive():
		return StatusPaid
	case paid.IsPositive():
		return StatusPartial
	default:
		return StatusPending
	}
}
