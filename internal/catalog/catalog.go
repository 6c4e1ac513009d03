package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/hashicorp/go-memdb"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/breinnndel/storefront/internal/shop"
)

const tableProducts = "products"

// Catalog is the authoritative product store. Every mutation runs in a
// single memdb write transaction; memdb admits one writer at a time, so
// a stock check and its subtraction can never interleave with another
// session's.
type Catalog struct {
	db     *memdb.MemDB
	logger *zap.Logger
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableProducts: {
				Name: tableProducts,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}
}

// New creates an empty catalog.
func New(logger *zap.Logger) (*Catalog, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("create product store: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{db: db, logger: logger.Named("catalog")}, nil
}

// ============================================================================
// Queries
// ============================================================================

// Get returns a snapshot of one product.
func (c *Catalog) Get(id int) (Product, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()

	p, err := lookup(txn, id)
	if err != nil {
		return Product{}, err
	}
	return *p, nil
}

// List returns snapshots of every product in insertion order.
func (c *Catalog) List() ([]Product, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()

	products, err := all(txn)
	if err != nil {
		return nil, err
	}
	result := make([]Product, len(products))
	for i, p := range products {
		result[i] = *p
	}
	return result, nil
}

// NextID returns max(existing ids)+1, or 1 for an empty catalog.
func (c *Catalog) NextID() (int, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()
	return nextID(txn)
}

// ============================================================================
// Admin and seller operations
// ============================================================================

// Create adds a product under the next free id.
func (c *Catalog) Create(name string, price decimal.Decimal, stock int, policy Policy) (Product, error) {
	txn := c.db.Txn(true)
	defer txn.Abort()

	id, err := nextID(txn)
	if err != nil {
		return Product{}, err
	}

	product, clamped, err := NewProduct(id, name, price, stock, policy)
	if err != nil {
		return Product{}, err
	}
	if clamped {
		c.logger.Warn("invalid price or stock, clamped to zero",
			zap.Int("product_id", id),
			zap.String("price", price.String()),
			zap.Int("stock", stock))
	}

	if err := txn.Insert(tableProducts, &product); err != nil {
		return Product{}, fmt.Errorf("insert product %d: %w", id, err)
	}
	txn.Commit()

	c.logger.Info("product created",
		zap.Int("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int("stock", product.Stock))
	return product, nil
}

// Delete removes a product unconditionally. Carts holding the id find
// out on their next operation.
func (c *Catalog) Delete(id int) error {
	txn := c.db.Txn(true)
	defer txn.Abort()

	p, err := lookup(txn, id)
	if err != nil {
		return err
	}
	if err := txn.Delete(tableProducts, p); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	txn.Commit()

	c.logger.Info("product deleted", zap.Int("product_id", id))
	return nil
}

// Restock adds qty units to a product's stock. qty must be positive.
func (c *Catalog) Restock(id, qty int) (Product, error) {
	if err := shop.RequirePositive(qty, ErrMsgQuantityPositive); err != nil {
		return Product{}, err
	}
	p, err := c.update(id, func(p *Product) error {
		return addStock(p, qty)
	})
	if err != nil {
		return Product{}, err
	}
	c.logger.Info("product restocked", zap.Int("product_id", id), zap.Int("quantity", qty), zap.Int("stock", p.Stock))
	return p, nil
}

// SetPrice changes a product's unit price. A negative price changes nothing.
func (c *Catalog) SetPrice(id int, price decimal.Decimal) (Product, error) {
	if err := shop.RequireNonNegativeAmount(price, ErrMsgPriceNegative); err != nil {
		return Product{}, err
	}
	p, err := c.update(id, func(p *Product) error {
		p.Price = price
		return nil
	})
	if err != nil {
		return Product{}, err
	}
	c.logger.Info("price set", zap.Int("product_id", id), zap.String("price", price.String()))
	return p, nil
}

// ============================================================================
// Reservations
// ============================================================================

// ReduceStock reserves qty units. It is the only path that takes stock
// away, and it refuses rather than let stock go negative.
func (c *Catalog) ReduceStock(id, qty int) error {
	if err := shop.RequirePositive(qty, ErrMsgQuantityPositive); err != nil {
		return err
	}
	p, err := c.update(id, func(p *Product) error {
		if qty > p.Stock {
			return shop.Newf(shop.KindInsufficientStock, ErrMsgInsufficientStockf, p.Stock, qty)
		}
		p.Stock -= qty
		return nil
	})
	if err != nil {
		return err
	}
	c.logger.Debug("stock reserved", zap.Int("product_id", id), zap.Int("quantity", qty), zap.Int("stock", p.Stock))
	return nil
}

// Release returns qty previously reserved units to stock.
func (c *Catalog) Release(id, qty int) error {
	if err := shop.RequirePositive(qty, ErrMsgQuantityPositive); err != nil {
		return err
	}
	p, err := c.update(id, func(p *Product) error {
		return addStock(p, qty)
	})
	if err != nil {
		return err
	}
	c.logger.Debug("stock released", zap.Int("product_id", id), zap.Int("quantity", qty), zap.Int("stock", p.Stock))
	return nil
}

// Swap resizes an existing reservation from `from` to `to` units in one
// step. The caller's own reservation counts as available. On failure
// nothing changes.
func (c *Catalog) Swap(id, from, to int) error {
	if err := shop.RequireNonNegative(from, ErrMsgReservedNegative); err != nil {
		return err
	}
	if err := shop.RequirePositive(to, ErrMsgQuantityPositive); err != nil {
		return err
	}
	p, err := c.update(id, func(p *Product) error {
		if from > math.MaxInt-p.Stock {
			return shop.Newf(shop.KindInvalidQuantity, ErrMsgStockOverflowf, p.Stock, from)
		}
		available := p.Stock + from
		if to > available {
			return shop.Newf(shop.KindInsufficientStock, ErrMsgInsufficientStockf, available, to)
		}
		p.Stock = available - to
		return nil
	})
	if err != nil {
		return err
	}
	c.logger.Debug("reservation resized",
		zap.Int("product_id", id),
		zap.Int("old_quantity", from),
		zap.Int("new_quantity", to),
		zap.Int("stock", p.Stock))
	return nil
}

// ============================================================================
// Helpers
// ============================================================================

// update applies fn to a copy of the product and stores the copy. Stored
// objects are never modified in place; memdb readers may still hold them.
func (c *Catalog) update(id int, fn func(p *Product) error) (Product, error) {
	txn := c.db.Txn(true)
	defer txn.Abort()

	current, err := lookup(txn, id)
	if err != nil {
		return Product{}, err
	}
	next := *current
	if err := fn(&next); err != nil {
		return Product{}, err
	}
	if err := txn.Insert(tableProducts, &next); err != nil {
		return Product{}, fmt.Errorf("update product %d: %w", id, err)
	}
	txn.Commit()
	return next, nil
}

// addStock raises stock by qty, refusing a sum that does not fit in an int.
func addStock(p *Product, qty int) error {
	if qty > math.MaxInt-p.Stock {
		return shop.Newf(shop.KindInvalidQuantity, ErrMsgStockOverflowf, p.Stock, qty)
	}
	p.Stock += qty
	return nil
}

func lookup(txn *memdb.Txn, id int) (*Product, error) {
	raw, err := txn.First(tableProducts, "id", id)
	if err != nil {
		return nil, fmt.Errorf("lookup product %d: %w", id, err)
	}
	if raw == nil {
		return nil, shop.NewNotFoundf(ErrMsgProductNotFound)
	}
	return raw.(*Product), nil
}

// all returns stored products ordered by id. Ids are always allocated
// above the current maximum, so id order is insertion order.
func all(txn *memdb.Txn) ([]*Product, error) {
	it, err := txn.Get(tableProducts, "id")
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	var products []*Product
	for raw := it.Next(); raw != nil; raw = it.Next() {
		products = append(products, raw.(*Product))
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func nextID(txn *memdb.Txn) (int, error) {
	products, err := all(txn)
	if err != nil {
		return 0, err
	}
	maxID := 0
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1, nil
}
