package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether s is one of the five defined statuses. There is
// no transition graph: any status may move to any other.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Item struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order ids are derived from the creation timestamp, so uniqueness is
// only probabilistic under rapid concurrent checkouts.
type Order struct {
	ID        string          `json:"id"`
	Items     []Item          `json:"items"`
	Customer  Customer        `json:"customer"`
	Total     decimal.Decimal `json:"total"`
	Status    Status          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type NewOrderInput struct {
	Items    []Item
	Customer Customer
	Total    decimal.Decimal
}
