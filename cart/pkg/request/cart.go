package request

import "github.com/google/uuid"

type AddCartItem struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  *int32    `json:"quantity"   validate:"omitempty,gte=1"`
}

// ItemQuantity defaults to one item when the field is omitted.
func (r AddCartItem) ItemQuantity() int32 {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}
