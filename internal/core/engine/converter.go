package engine

import "github.com/shopspring/decimal"

// Tolerance is the monetary comparison epsilon: any difference below one cent
// is treated as zero.
var Tolerance = decimal.New(1, -2)

// Convert normalizes amount from fromCurrency into toCurrency. rates maps a
// foreign currency code to how many of its units equal one unit of toCurrency
// (e.g. rates["THB"] = 38.5 means 1 base unit = 38.5 THB).
//
// Conversion degrades gracefully: if no rate is known, or the rate is zero or
// negative, the amount is returned unconverted. An unconvertible foreign
// expense counts at face value rather than vanishing from totals.
func Convert(amount decimal.Decimal, fromCurrency, toCurrency string, rates map[string]decimal.Decimal) decimal.Decimal {
	if fromCurrency == toCurrency {
		return amount
	}
	rate, ok := rates[fromCurrency]
	if !ok || rate.LessThanOrEqual(decimal.Zero) {
		return amount
	}
	return amount.Div(rate)
}
