// Package expenses holds operating expenses outside purchases.
package expenses

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"` // e.g. "fuel", "rent", "payroll"
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Paid        bool            `json:"paid"`
	CreatedAt   time.Time       `json:"created_at,omitempty"`
}
