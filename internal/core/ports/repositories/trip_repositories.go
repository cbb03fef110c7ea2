package repositories

import (
	"context"

	"github.com/tripweave/tripsplit/internal/core/domain"
)

// TripRepository defines persistence operations for trips.
type TripRepository interface {
	// SaveTrip persists a new trip.
	SaveTrip(ctx context.Context, trip domain.Trip) error

	// FindTripByID retrieves a trip by its ID.
	// Returns apperrors.ErrNotFound if no trip exists.
	FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTrips retrieves all trips.
	ListTrips(ctx context.Context) ([]domain.Trip, error)

	// UpdateTrip persists changes to an existing trip.
	UpdateTrip(ctx context.Context, trip domain.Trip) error
}
