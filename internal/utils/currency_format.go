package utils

import (
	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given number of decimal places.
// Example: 12.3456 with precision 2 returns "12.35".
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatCurrency renders an amount for display, e.g. "$1,200.50" or "-$35.00".
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	intPart, frac := fixed[:len(fixed)-3], fixed[len(fixed)-3:]

	grouped := make([]byte, 0, len(intPart)+len(intPart)/3)
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, intPart[i])
	}
	return sign + symbol + string(grouped) + frac
}
