package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/breinnndel/storefront/internal/shop"
)

// DefaultWalletLabel is the label printed for digital wallet payments.
const DefaultWalletLabel = "GCASH"

// Payment confirms that an amount was collected.
type Payment struct {
	Reference uuid.UUID
	Method    string
	Amount    decimal.Decimal
	PaidAt    time.Time
}

// Method collects payment for a checkout.
type Method interface {
	// Name is the label shown on confirmations and receipts.
	Name() string

	// Pay collects amount. A failed payment must leave no side effects.
	Pay(amount decimal.Decimal) (Payment, error)
}

// CreditCard always succeeds.
type CreditCard struct{}

func (CreditCard) Name() string { return "Credit Card" }

func (m CreditCard) Pay(amount decimal.Decimal) (Payment, error) {
	return settled(m.Name(), amount), nil
}

// DigitalWallet always succeeds. An empty Label means DefaultWalletLabel.
type DigitalWallet struct {
	Label string
}

func (w DigitalWallet) Name() string {
	if w.Label == "" {
		return DefaultWalletLabel
	}
	return w.Label
}

func (w DigitalWallet) Pay(amount decimal.Decimal) (Payment, error) {
	return settled(w.Name(), amount), nil
}

type funcMethod struct {
	name string
	fn   func(amount decimal.Decimal) error
}

// MethodFunc adapts a function into a Method. A non-nil error from fn
// declines the payment.
func MethodFunc(name string, fn func(amount decimal.Decimal) error) Method {
	return funcMethod{name: name, fn: fn}
}

func (m funcMethod) Name() string { return m.name }

func (m funcMethod) Pay(amount decimal.Decimal) (Payment, error) {
	if err := m.fn(amount); err != nil {
		return Payment{}, shop.Newf(shop.KindPaymentDeclined, "Payment via %s declined: %v", m.name, err)
	}
	return settled(m.name, amount), nil
}

func settled(method string, amount decimal.Decimal) Payment {
	return Payment{
		Reference: shop.NewReference(),
		Method:    method,
		Amount:    amount,
		PaidAt:    time.Now(),
	}
}
