package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tripweave/tripsplit/internal/core/domain"
)

// CreateTripRequest defines the structure for creating a new trip.
type CreateTripRequest struct {
	Name            string                     `json:"name" binding:"required,max=120"`
	DefaultCurrency string                     `json:"defaultCurrency" binding:"required,len=3,uppercase"`
	TrackingMode    string                     `json:"trackingMode" binding:"required,trackingmode"`
	ExchangeRates   map[string]decimal.Decimal `json:"exchangeRates"`
}

// UpdateTripRequest defines the structure for updating a trip. Nil fields are
// left unchanged.
type UpdateTripRequest struct {
	Name          *string                    `json:"name,omitempty" binding:"omitempty,max=120"`
	TrackingMode  *string                    `json:"trackingMode,omitempty" binding:"omitempty,trackingmode"`
	ExchangeRates map[string]decimal.Decimal `json:"exchangeRates,omitempty"`
}

// TripResponse defines the structure for API responses containing trip details.
type TripResponse struct {
	TripID          string                     `json:"tripID"`
	Name            string                     `json:"name"`
	DefaultCurrency string                     `json:"defaultCurrency"`
	TrackingMode    string                     `json:"trackingMode"`
	ExchangeRates   map[string]decimal.Decimal `json:"exchangeRates"`
}

// ToTripResponse converts a domain.Trip to TripResponse DTO
func ToTripResponse(trip *domain.Trip) TripResponse {
	return TripResponse{
		TripID:          trip.TripID,
		Name:            trip.Name,
		DefaultCurrency: trip.DefaultCurrency,
		TrackingMode:    string(trip.TrackingMode),
		ExchangeRates:   trip.ExchangeRates,
	}
}

// ToListTripResponse converts a slice of domain.Trip to a slice of TripResponse DTOs.
func ToListTripResponse(trips []domain.Trip) []TripResponse {
	responses := make([]TripResponse, len(trips))
	for i := range trips {
		responses[i] = ToTripResponse(&trips[i])
	}
	return responses
}
