// Package cart implements a buyer's shopping cart. Every line in a cart
// is a reservation: its units have already been taken out of catalog
// stock, and they go back only when the line is removed or released.
package cart

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/breinnndel/storefront/internal/catalog"
	"github.com/breinnndel/storefront/internal/shop"
)

// Inventory is the catalog surface a cart reserves against.
type Inventory interface {
	Get(id int) (catalog.Product, error)
	ReduceStock(id, qty int) error
	Release(id, qty int) error
	Swap(id, from, to int) error
}

// Line is the reservation of Quantity units of one product.
type Line struct {
	ProductID int
	Quantity  int
}

// LineView is a line resolved against the catalog's current state.
type LineView struct {
	ProductID int
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// ChangeKind names the effect of a cart mutation.
type ChangeKind int

const (
	ItemAdded ChangeKind = iota
	QuantityUpdated
	ItemRemoved
)

func (k ChangeKind) String() string {
	switch k {
	case ItemAdded:
		return "ItemAdded"
	case QuantityUpdated:
		return "QuantityUpdated"
	case ItemRemoved:
		return "ItemRemoved"
	default:
		return "Unknown"
	}
}

// Change describes a successful cart mutation.
type Change struct {
	Kind        ChangeKind
	ProductID   int
	OldQuantity int
	NewQuantity int
}

// Cart is owned by a single session and is not safe for concurrent use.
// Products are held by id and resolved on every call, never cached.
type Cart struct {
	id     uuid.UUID
	stock  Inventory
	lines  []Line
	logger *zap.Logger
}

// New creates an empty cart reserving against stock.
func New(id uuid.UUID, stock Inventory, logger *zap.Logger) *Cart {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cart{
		id:     id,
		stock:  stock,
		logger: logger.Named("cart").With(zap.Stringer("cart_id", id)),
	}
}

// ID returns the cart identifier.
func (c *Cart) ID() uuid.UUID {
	return c.id
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	c.reconcile()
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

// Lines returns a copy of the raw reservations.
func (c *Cart) Lines() []Line {
	c.reconcile()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Quantity returns the reserved quantity for a product, or 0.
func (c *Cart) Quantity(productID int) int {
	c.reconcile()
	if i := c.index(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

func (c *Cart) index(productID int) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// reconcile drops lines whose product has been deleted from the catalog.
// Their reservation disappeared with the product, so nothing is released.
func (c *Cart) reconcile() {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if _, err := c.stock.Get(l.ProductID); errors.Is(err, shop.ErrNotFound) {
			c.logger.Warn("product no longer in catalog, dropping cart line",
				zap.Int("product_id", l.ProductID),
				zap.Int("quantity", l.Quantity))
			continue
		}
		kept = append(kept, l)
	}
	c.lines = kept
}
