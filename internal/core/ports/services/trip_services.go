package services

import (
	"context"

	"github.com/tripweave/tripsplit/internal/core/domain"
	"github.com/tripweave/tripsplit/internal/dto"
)

// TripReaderSvc defines read operations for trip data
type TripReaderSvc interface {
	// GetTripByID retrieves a specific trip by its ID.
	GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTrips retrieves all trips.
	ListTrips(ctx context.Context) ([]domain.Trip, error)
}

// TripWriterSvc defines write operations for trip data
type TripWriterSvc interface {
	// CreateTrip persists a new trip.
	CreateTrip(ctx context.Context, req dto.CreateTripRequest, creatorUserID string) (*domain.Trip, error)

	// UpdateTrip applies changes to a trip's name, tracking mode or exchange rates.
	UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, updaterUserID string) (*domain.Trip, error)
}

// TripSvcFacade combines all trip-related service interfaces
type TripSvcFacade interface {
	TripReaderSvc
	TripWriterSvc
}
