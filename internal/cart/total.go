package cart

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// View resolves every line against the catalog's current name and price.
func (c *Cart) View() []LineView {
	c.reconcile()
	views := make([]LineView, 0, len(c.lines))
	for _, l := range c.lines {
		p, err := c.stock.Get(l.ProductID)
		if err != nil {
			c.logger.Error("resolve cart line", zap.Int("product_id", l.ProductID), zap.Error(err))
			continue
		}
		views = append(views, LineView{
			ProductID: l.ProductID,
			Name:      p.Name,
			Quantity:  l.Quantity,
			UnitPrice: p.Price,
			Subtotal:  p.Price.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}
	return views
}

// Total sums quantity times the product's current price. Prices are not
// frozen at reservation time.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range c.View() {
		total = total.Add(v.Subtotal)
	}
	return total
}
