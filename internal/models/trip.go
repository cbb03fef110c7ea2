package models

// Trip is the database representation of a trip. Exchange rates are stored as
// a JSONB object mapping currency codes to rates.
type Trip struct {
	TripID            string `json:"tripID"`
	Name              string `json:"name"`
	DefaultCurrency   string `json:"defaultCurrency"`
	TrackingMode      string `json:"trackingMode"`
	ExchangeRatesJSON []byte `json:"-"` // JSONB column
	AuditFields
}
