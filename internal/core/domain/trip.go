package domain

import "github.com/shopspring/decimal"

// TrackingMode determines the unit of balance tracking for a trip: per
// individual participant, or collapsed per family.
type TrackingMode string

const (
	TrackIndividuals TrackingMode = "individuals"
	TrackFamilies    TrackingMode = "families"
)

// Trip groups participants, expenses and settlements under one shared ledger.
type Trip struct {
	TripID          string       `json:"tripID"`          // Primary Key (e.g., UUID)
	Name            string       `json:"name"`            // Display name (Not Null)
	DefaultCurrency string       `json:"defaultCurrency"` // Base currency; all balances are expressed in it
	TrackingMode    TrackingMode `json:"trackingMode"`    // individuals or families
	// ExchangeRates maps a foreign currency code to how many units of that
	// currency equal one unit of DefaultCurrency (e.g. {"THB": 38.5}).
	ExchangeRates map[string]decimal.Decimal `json:"exchangeRates"`
	AuditFields
}
