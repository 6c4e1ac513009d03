package shop

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Integer covers the counter types used for ids and quantities.
type Integer interface {
	~int | ~int32 | ~int64
}

// RequirePositive checks that a quantity is greater than zero.
func RequirePositive[T Integer](value T, errMsg string) error {
	if value <= 0 {
		return NewInvalidQuantity(errMsg)
	}
	return nil
}

// RequireNonNegative checks that a quantity is zero or greater.
func RequireNonNegative[T Integer](value T, errMsg string) error {
	if value < 0 {
		return NewInvalidQuantity(errMsg)
	}
	return nil
}

// RequireNonNegativeAmount checks that a money amount is zero or greater.
func RequireNonNegativeAmount(value decimal.Decimal, errMsg string) error {
	if value.IsNegative() {
		return NewInvalidInput(errMsg)
	}
	return nil
}

// RequireNotBlank checks that a text field has visible content.
func RequireNotBlank(value, errMsg string) error {
	if strings.TrimSpace(value) == "" {
		return NewInvalidInput(errMsg)
	}
	return nil
}
