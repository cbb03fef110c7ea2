package utils

import (
	"github.com/shopspring/decimal"

	"github.com/tripweave/tripsplit/internal/core/engine"
)

// BalanceStatus is the three-way presentation classification of a balance.
type BalanceStatus string

const (
	BalanceOwed    BalanceStatus = "owed"    // the entity is owed money
	BalanceOwes    BalanceStatus = "owes"    // the entity owes money
	BalanceSettled BalanceStatus = "settled" // within one cent of zero
)

// ClassifyBalance maps a balance to its presentation status using the engine's
// one-cent tolerance.
func ClassifyBalance(balance decimal.Decimal) BalanceStatus {
	switch {
	case balance.GreaterThan(engine.Tolerance):
		return BalanceOwed
	case balance.LessThan(engine.Tolerance.Neg()):
		return BalanceOwes
	default:
		return BalanceSettled
	}
}

// FormatSignedAmount renders a balance with an explicit sign prefix.
// Example: FormatSignedAmount(50, "EUR") returns "+50.00 EUR",
// FormatSignedAmount(-12.345, "EUR") returns "-12.35 EUR". Amounts within the
// one-cent tolerance render unsigned as "0.00".
func FormatSignedAmount(amount decimal.Decimal, currencyCode string) string {
	switch ClassifyBalance(amount) {
	case BalanceOwed:
		return "+" + amount.Round(2).StringFixed(2) + " " + currencyCode
	case BalanceOwes:
		return "-" + amount.Abs().Round(2).StringFixed(2) + " " + currencyCode
	default:
		return "0.00 " + currencyCode
	}
}
