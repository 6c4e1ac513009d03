// Package checkout turns a cart's reservations into a paid sale.
package checkout

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/breinnndel/storefront/internal/cart"
	"github.com/breinnndel/storefront/internal/shop"
)

// ErrMsgCartEmpty is reported when checkout finds nothing to pay for.
const ErrMsgCartEmpty = "Your cart is empty."

// Basket is the cart surface checkout reads and clears.
type Basket interface {
	ID() uuid.UUID
	Total() decimal.Decimal
	View() []cart.LineView
	Clear()
}

// Receipt records a completed sale.
type Receipt struct {
	ID      uuid.UUID
	CartID  uuid.UUID
	Lines   []cart.LineView
	Total   decimal.Decimal
	Payment Payment
}

// Service runs checkouts.
type Service struct {
	logger *zap.Logger
}

// NewService creates a checkout service.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger.Named("checkout")}
}

// Checkout charges the cart total to method, then clears the cart. The
// reserved stock stays sold. An empty cart or a declined payment leaves
// the cart as it was.
func (s *Service) Checkout(b Basket, method Method) (*Receipt, error) {
	log := s.logger.With(zap.Stringer("cart_id", b.ID()), zap.String("method", method.Name()))

	total := b.Total()
	if !total.IsPositive() {
		log.Debug("checkout rejected: empty cart")
		return nil, shop.New(shop.KindEmptyCart, ErrMsgCartEmpty)
	}
	lines := b.View()

	payment, err := method.Pay(total)
	if err != nil {
		log.Warn("payment failed", zap.String("total", total.StringFixed(2)), zap.Error(err))
		var shopErr *shop.Error
		if errors.As(err, &shopErr) {
			return nil, err
		}
		return nil, shop.Newf(shop.KindPaymentDeclined, "Payment via %s declined: %v", method.Name(), err)
	}

	receipt := &Receipt{
		ID:      shop.NewReference(),
		CartID:  b.ID(),
		Lines:   lines,
		Total:   total,
		Payment: payment,
	}
	b.Clear()

	log.Info("checkout completed",
		zap.Stringer("receipt_id", receipt.ID),
		zap.Stringer("payment_ref", payment.Reference),
		zap.String("total", total.StringFixed(2)),
		zap.Int("lines", len(lines)))
	return receipt, nil
}
