package checkout

import (
	"fmt"
	"strings"

	"github.com/breinnndel/storefront/internal/cart"
	"github.com/breinnndel/storefront/internal/shop"
)

// FormatLine renders one cart line, e.g. "Mouse | Qty: 3 | Subtotal: P1,050.00".
func FormatLine(v cart.LineView, money shop.Money) string {
	return fmt.Sprintf("%s | Qty: %d | Subtotal: %s", v.Name, v.Quantity, money.Format(v.Subtotal))
}

// FormatPayment renders the payment confirmation.
func FormatPayment(p Payment, money shop.Money) string {
	return fmt.Sprintf("Paid %s using %s.", money.Format(p.Amount), p.Method)
}

// FormatReceipt generates the human-readable receipt text.
func FormatReceipt(r *Receipt, money shop.Money) string {
	var lines []string

	shortID := r.ID.String()
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	lines = append(lines, "--- Receipt ---")
	lines = append(lines, fmt.Sprintf("Receipt: %s", shortID))
	for _, v := range r.Lines {
		lines = append(lines, FormatLine(v, money))
	}
	lines = append(lines, fmt.Sprintf("Total Paid: %s", money.Format(r.Total)))
	lines = append(lines, fmt.Sprintf("Payment: %s", r.Payment.Method))
	lines = append(lines, "Thank you!")

	return strings.Join(lines, "\n")
}
