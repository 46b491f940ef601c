package request

import "github.com/shopspring/decimal"

type Product struct {
	Name        string          `json:"name"        validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"       validate:"required,price"`
}
