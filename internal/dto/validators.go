package dto

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/SscSPs/tradeops_hub/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerOnce sync.Once
var registerErr error

// RegisterBindingValidators teaches gin's validator about decimal.Decimal
// (so numeric tags such as gte=0 apply to it) and adds the "hscode" and
// "percent" tags. Safe to call more than once.
func RegisterBindingValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}
		registerErr = RegisterValidators(v)
	})
	return registerErr
}

// RegisterValidators installs the custom types and tags on v.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	if err := v.RegisterValidation("hscode", validateHSCode); err != nil {
		return fmt.Errorf("register hscode validator: %w", err)
	}
	if err := v.RegisterValidation("percent", validatePercent); err != nil {
		return fmt.Errorf("register percent validator: %w", err)
	}
	return nil
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validateHSCode(fl validator.FieldLevel) bool {
	return domain.IsValidHSCode(fl.Field().String())
}

func validatePercent(fl validator.FieldLevel) bool {
	d, err := domain.ParsePercent(fl.Field().String())
	return err == nil && !d.IsNegative()
}
