// Package clients holds the customer registry of the distribution business.
package clients

import (
	"time"
)

type Client struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CNPJ      string    `json:"cnpj,omitempty"` // Brazilian company registration number
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
