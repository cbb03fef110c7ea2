package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tripweave/tripsplit/internal/core/domain"
	"github.com/tripweave/tripsplit/internal/models"
)

// ToModelTrip converts a domain Trip to a model Trip, serializing the
// exchange-rate map for the JSONB column.
func ToModelTrip(d domain.Trip) (models.Trip, error) {
	rates := d.ExchangeRates
	if rates == nil {
		rates = map[string]decimal.Decimal{}
	}
	ratesJSON, err := json.Marshal(rates)
	if err != nil {
		return models.Trip{}, fmt.Errorf("failed to marshal exchange rates: %w", err)
	}
	return models.Trip{
		TripID:            d.TripID,
		Name:              d.Name,
		DefaultCurrency:   d.DefaultCurrency,
		TrackingMode:      string(d.TrackingMode),
		ExchangeRatesJSON: ratesJSON,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainTrip converts a model Trip to a domain Trip.
func ToDomainTrip(m models.Trip) (domain.Trip, error) {
	rates := map[string]decimal.Decimal{}
	if len(m.ExchangeRatesJSON) > 0 {
		if err := json.Unmarshal(m.ExchangeRatesJSON, &rates); err != nil {
			return domain.Trip{}, fmt.Errorf("failed to unmarshal exchange rates for trip %s: %w", m.TripID, err)
		}
	}
	return domain.Trip{
		TripID:          m.TripID,
		Name:            m.Name,
		DefaultCurrency: m.DefaultCurrency,
		TrackingMode:    domain.TrackingMode(m.TrackingMode),
		ExchangeRates:   rates,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}, nil
}
