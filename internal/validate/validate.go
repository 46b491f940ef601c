package validate

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Price accepts zero so free items stay sellable.
func Price(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return !d.IsNegative()
}

func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("price", Price); err != nil {
		panic(err)
	}
	return validate
}
