package cart

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/breinnndel/storefront/internal/shop"
)

// RemoveItem deletes a line and returns its reserved units to stock.
func (c *Cart) RemoveItem(productID int) (Change, error) {
	c.reconcile()
	i := c.index(productID)
	if i < 0 {
		c.logger.Debug("remove item: not in cart", zap.Int("product_id", productID))
		return Change{}, shop.NewNotFoundf(ErrMsgItemNotInCart)
	}

	line := c.lines[i]
	if err := c.stock.Release(productID, line.Quantity); err != nil {
		return Change{}, fmt.Errorf("release product %d: %w", productID, err)
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)

	c.logger.Info("item removed", zap.Int("product_id", productID), zap.Int("quantity", line.Quantity))
	return Change{Kind: ItemRemoved, ProductID: productID, OldQuantity: line.Quantity}, nil
}
