package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the database representation of an expense. The distribution is
// stored as a JSONB document; its shape is owned by the domain layer.
type Expense struct {
	ExpenseID        string          `json:"expenseID"`
	TripID           string          `json:"tripID"`
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currencyCode"`
	PaidBy           string          `json:"paidBy"`
	Category         string          `json:"category"`
	ExpenseDate      time.Time       `json:"expenseDate"`
	DistributionJSON []byte          `json:"-"` // JSONB column
	AuditFields
}
