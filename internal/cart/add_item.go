package cart

import (
	"go.uber.org/zap"

	"github.com/breinnndel/storefront/internal/shop"
)

// AddItem reserves qty units of a product. Adding a product that already
// has a line replaces its quantity rather than summing. When the
// reservation fails no line is created and stock is untouched.
func (c *Cart) AddItem(productID, qty int) (Change, error) {
	if err := shop.RequirePositive(qty, ErrMsgQuantityPositive); err != nil {
		return Change{}, err
	}

	c.reconcile()
	if c.index(productID) >= 0 {
		return c.UpdateQuantity(productID, qty)
	}

	if err := c.stock.ReduceStock(productID, qty); err != nil {
		c.logger.Debug("add item rejected", zap.Int("product_id", productID), zap.Int("quantity", qty), zap.Error(err))
		return Change{}, err
	}
	c.lines = append(c.lines, Line{ProductID: productID, Quantity: qty})

	c.logger.Info("item added", zap.Int("product_id", productID), zap.Int("quantity", qty))
	return Change{Kind: ItemAdded, ProductID: productID, NewQuantity: qty}, nil
}
