package shop

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money renders decimal amounts with a currency symbol and the digit
// grouping of a locale.
type Money struct {
	symbol string
	group  string
	point  string
}

// NewMoney creates a formatter for the given symbol and locale. The
// locale's separators are read off a sample rendering; the amounts
// themselves never pass through a float.
func NewMoney(symbol string, tag language.Tag) Money {
	sample := message.NewPrinter(tag).Sprintf("%v", number.Decimal(1234.5, number.Scale(2)))
	group, point := separators(sample)
	return Money{symbol: symbol, group: group, point: point}
}

// Format renders amount with exactly two fraction digits, e.g. "P1,050.00".
func (m Money) Format(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	if m.point == "" {
		return m.symbol + fixed
	}

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	return m.symbol + sign + groupDigits(whole, m.group) + m.point + frac
}

// Symbol returns the currency symbol.
func (m Money) Symbol() string {
	return m.symbol
}

// separators extracts the grouping and decimal separators from a
// rendering of 1234.50. Locales without ASCII digits fall back to "," and ".".
func separators(sample string) (group, point string) {
	one := strings.IndexByte(sample, '1')
	two := strings.IndexByte(sample, '2')
	four := strings.IndexByte(sample, '4')
	five := strings.IndexByte(sample, '5')
	if one < 0 || two < one || four < two || five < four {
		return ",", "."
	}
	return sample[one+1 : two], sample[four+1 : five]
}

func groupDigits(whole, sep string) string {
	if len(whole) <= 3 || sep == "" {
		return whole
	}
	var b strings.Builder
	for i := range len(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteByte(whole[i])
	}
	return b.String()
}
