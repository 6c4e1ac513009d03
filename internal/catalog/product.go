// Package catalog owns the products on sale, their prices and stock levels.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/breinnndel/storefront/internal/shop"
)

// Product is a catalog entry. Values handed out by the catalog are
// snapshots; mutate through Catalog methods only.
type Product struct {
	ID    int
	Name  string
	Price decimal.Decimal
	Stock int
}

// Policy selects how NewProduct treats a negative price or stock.
type Policy int

const (
	// Clamp zeroes both price and stock and proceeds.
	Clamp Policy = iota
	// Strict rejects the product with an INVALID_INPUT error.
	Strict
)

func (p Policy) String() string {
	switch p {
	case Clamp:
		return "clamp"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

// NewProduct validates the fields of a product. The returned bool reports
// whether price and stock were clamped to zero under the Clamp policy.
func NewProduct(id int, name string, price decimal.Decimal, stock int, policy Policy) (Product, bool, error) {
	if err := shop.RequireNotBlank(name, ErrMsgNameRequired); err != nil {
		return Product{}, false, err
	}

	clamped := false
	if price.IsNegative() || stock < 0 {
		if policy == Strict {
			return Product{}, false, shop.NewInvalidInput(ErrMsgInvalidPriceStock)
		}
		price, stock = decimal.Zero, 0
		clamped = true
	}

	return Product{ID: id, Name: name, Price: price, Stock: stock}, clamped, nil
}
