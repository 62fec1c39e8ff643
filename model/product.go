package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	errEmptyProductName = errors.New("productName must not be empty")
	errNonPositivePrice = errors.New("basePrice must be positive")
)

type Product struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"productName"`
	BasePrice   decimal.Decimal `json:"basePrice"`
}

type CreateProductDto struct {
	ProductName string          `json:"productName"`
	BasePrice   decimal.Decimal `json:"basePrice"`
}

// Validate checks the creation payload. Products are immutable once
// created, so this is the only write-path validation they get.
func (d CreateProductDto) Validate() error {
	if d.ProductName == "" {
		return errEmptyProductName
	}
	if !d.BasePrice.IsPositive() {
		return errNonPositivePrice
	}
	return nil
}
