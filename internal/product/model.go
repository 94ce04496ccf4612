package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Badge       *string         `json:"badge"`
	Image       *string         `json:"image"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type NewProductInput struct {
	Name        string
	Category    string
	Price       decimal.Decimal
	Description string
	Badge       *string
	Image       *string
}

// UpdateProductInput carries a partial update: nil fields keep their
// stored value. A non-nil empty Badge clears the badge.
type UpdateProductInput struct {
	Name        *string
	Category    *string
	Price       *decimal.Decimal
	Description *string
	Badge       *string
	Image       *string
}

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
)

// ListOptions narrows and orders a product listing. Zero values mean
// "no filter" / "storage order"; Category "all" is treated as unset.
type ListOptions struct {
	Category string
	Search   string
	Sort     string
}
