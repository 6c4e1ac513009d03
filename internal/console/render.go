package console

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/breinnndel/storefront/internal/account"
	"github.com/breinnndel/storefront/internal/cart"
	"github.com/breinnndel/storefront/internal/catalog"
	"github.com/breinnndel/storefront/internal/checkout"
	"github.com/breinnndel/storefront/internal/shop"
)

// ANSI color codes
const (
	Green  = "\033[92m"
	Yellow = "\033[93m"
	Cyan   = "\033[96m"
	Red    = "\033[91m"
	Bold   = "\033[1m"
	Reset  = "\033[0m"
)

// Palette colors output when enabled and is a no-op otherwise.
type Palette struct {
	Enabled bool
}

func (p Palette) paint(color, s string) string {
	if !p.Enabled || color == "" {
		return s
	}
	return color + s + Reset
}

// Heading is used for menu titles and section headers.
func (p Palette) Heading(s string) string { return p.paint(Bold+Cyan, s) }

// Success is used for confirmations.
func (p Palette) Success(s string) string { return p.paint(Green, s) }

// Failure is used for rejected operations.
func (p Palette) Failure(s string) string { return p.paint(Red, s) }

// StockColor highlights low and empty stock.
func StockColor(stock int) string {
	switch {
	case stock == 0:
		return Red
	case stock < 5:
		return Yellow
	default:
		return ""
	}
}

// FormatProduct renders one catalog row, e.g.
// "   2 |           Mouse | P350.00 | Stock: 10".
func FormatProduct(p catalog.Product, money shop.Money) string {
	return fmt.Sprintf("%4d | %15s | %s | Stock: %d", p.ID, p.Name, money.Format(p.Price), p.Stock)
}

// FormatProducts renders the whole catalog.
func FormatProducts(products []catalog.Product, money shop.Money, palette Palette) string {
	if len(products) == 0 {
		return "No products available."
	}
	lines := make([]string, len(products))
	for i, p := range products {
		lines[i] = palette.paint(StockColor(p.Stock), FormatProduct(p, money))
	}
	return strings.Join(lines, "\n")
}

// FormatCart renders the cart contents with their live total.
func FormatCart(views []cart.LineView, money shop.Money, palette Palette) string {
	if len(views) == 0 {
		return "Cart is empty."
	}
	lines := []string{"", palette.Heading("--- Cart Contents ---")}
	total := decimal.Zero
	for _, v := range views {
		lines = append(lines, checkout.FormatLine(v, money))
		total = total.Add(v.Subtotal)
	}
	lines = append(lines, fmt.Sprintf("Total: %s", money.Format(total)))
	return strings.Join(lines, "\n")
}

// FormatUsers renders users with their roles.
func FormatUsers(users []account.User) string {
	lines := make([]string, len(users))
	for i, u := range users {
		lines[i] = u.String()
	}
	return strings.Join(lines, "\n")
}

// FormatUsernames renders bare usernames.
func FormatUsernames(users []account.User) string {
	lines := make([]string, len(users))
	for i, u := range users {
		lines[i] = "Username: " + u.Username
	}
	return strings.Join(lines, "\n")
}
