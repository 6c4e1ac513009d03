package cart

import (
	"go.uber.org/zap"

	"github.com/breinnndel/storefront/internal/shop"
)

// UpdateQuantity resizes an existing reservation. The catalog applies the
// difference in one step, so either both the line and stock move to the
// new quantity or neither does.
func (c *Cart) UpdateQuantity(productID, newQty int) (Change, error) {
	if err := shop.RequirePositive(newQty, ErrMsgQuantityPositive); err != nil {
		return Change{}, err
	}

	c.reconcile()
	i := c.index(productID)
	if i < 0 {
		return Change{}, shop.NewNotFoundf(ErrMsgItemNotInCart)
	}

	old := c.lines[i].Quantity
	if err := c.stock.Swap(productID, old, newQty); err != nil {
		c.logger.Debug("update quantity rejected",
			zap.Int("product_id", productID),
			zap.Int("old_quantity", old),
			zap.Int("new_quantity", newQty),
			zap.Error(err))
		return Change{}, err
	}
	c.lines[i].Quantity = newQty

	c.logger.Info("quantity updated",
		zap.Int("product_id", productID),
		zap.Int("old_quantity", old),
		zap.Int("new_quantity", newQty))
	return Change{Kind: QuantityUpdated, ProductID: productID, OldQuantity: old, NewQuantity: newQty}, nil
}
