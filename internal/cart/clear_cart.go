package cart

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Clear drops every line without returning stock. Used after a sale,
// when the reserved units have been sold.
func (c *Cart) Clear() {
	c.logger.Info("cart cleared", zap.Int("lines", len(c.lines)))
	c.lines = nil
}

// Release returns every line's units to stock and empties the cart. Used
// when a session ends without a sale.
func (c *Cart) Release() error {
	c.reconcile()

	var errs []error
	for _, l := range c.lines {
		if err := c.stock.Release(l.ProductID, l.Quantity); err != nil {
			errs = append(errs, fmt.Errorf("release product %d: %w", l.ProductID, err))
		}
	}
	released := len(c.lines)
	c.lines = nil

	c.logger.Info("cart released", zap.Int("lines", released))
	return errors.Join(errs...)
}
