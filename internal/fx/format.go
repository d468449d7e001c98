package fx

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/marlonbarreto-git/tejaco-ledger/internal/domain"
)

var currencySymbols = map[domain.Currency]string{
	domain.USD: "$",
	domain.SGD: "S$",
	domain.PHP: "₱",
	domain.MYR: "RM",
	domain.IDR: "Rp",
	domain.THB: "฿",
	domain.VND: "₫",
}

// Decimals returns the display precision for a currency. IDR and VND
// amounts are quoted in whole units; everything else uses cents.
func Decimals(c domain.Currency) int32 {
	switch c {
	case domain.IDR, domain.VND:
		return 0
	}
	return 2
}

// Symbol returns the display symbol for a currency.
func Symbol(c domain.Currency) string {
	return currencySymbols[c]
}

// Format renders an amount as a human-readable money string with the
// currency's symbol, thousands separators, and fixed precision.
func Format(amount float64, c domain.Currency) string {
	fixed := decimal.NewFromFloat(amount).StringFixed(Decimals(c))

	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(currencySymbols[c])
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
