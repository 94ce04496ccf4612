package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrValidation      = errors.New("invalid product data")
)
