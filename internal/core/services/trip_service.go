package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tripweave/tripsplit/internal/apperrors"
	"github.com/tripweave/tripsplit/internal/core/domain"
	portsrepo "github.com/tripweave/tripsplit/internal/core/ports/repositories"
	portssvc "github.com/tripweave/tripsplit/internal/core/ports/services"
	"github.com/tripweave/tripsplit/internal/dto"
)

// tripService implements the TripSvcFacade interface
type tripService struct {
	BaseService
	tripRepo portsrepo.TripRepository
}

// NewTripService creates a new trip service with the provided dependencies
func NewTripService(tripRepo portsrepo.TripRepository) portssvc.TripSvcFacade {
	return &tripService{tripRepo: tripRepo}
}

// Ensure tripService implements the TripSvcFacade interface
var _ portssvc.TripSvcFacade = (*tripService)(nil)

// validateExchangeRates rejects rate maps with malformed codes or non-positive
// rates. A missing map is fine; conversion falls back to face value.
func validateExchangeRates(rates map[string]decimal.Decimal) error {
	for code, rate := range rates {
		if len(code) != 3 {
			return fmt.Errorf("%w: exchange rate currency code '%s' must be 3 letters", apperrors.ErrValidation, code)
		}
		if rate.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: exchange rate for '%s' must be positive", apperrors.ErrValidation, code)
		}
	}
	return nil
}

// CreateTrip persists a new trip.
func (s *tripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest, creatorUserID string) (*domain.Trip, error) {
	if err := validateExchangeRates(req.ExchangeRates); err != nil {
		return nil, err
	}

	now := time.Now()
	trip := domain.Trip{
		TripID:          uuid.NewString(),
		Name:            req.Name,
		DefaultCurrency: req.DefaultCurrency,
		TrackingMode:    domain.TrackingMode(req.TrackingMode),
		ExchangeRates:   req.ExchangeRates,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		s.LogError(ctx, err, "Failed to save trip", slog.String("trip_id", trip.TripID))
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	s.LogInfo(ctx, "Trip created", slog.String("trip_id", trip.TripID))
	return &trip, nil
}

// GetTripByID retrieves a specific trip by its ID.
func (s *tripService) GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find trip by ID", slog.String("trip_id", tripID))
		}
		return nil, err
	}
	return trip, nil
}

// ListTrips retrieves all trips.
func (s *tripService) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.tripRepo.ListTrips(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list trips")
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// UpdateTrip applies changes to a trip's name, tracking mode or exchange rates.
func (s *tripService) UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, updaterUserID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		trip.Name = *req.Name
	}
	if req.TrackingMode != nil {
		trip.TrackingMode = domain.TrackingMode(*req.TrackingMode)
	}
	if req.ExchangeRates != nil {
		if err := validateExchangeRates(req.ExchangeRates); err != nil {
			return nil, err
		}
		trip.ExchangeRates = req.ExchangeRates
	}
	trip.LastUpdatedAt = time.Now()
	trip.LastUpdatedBy = updaterUserID

	if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
		s.LogError(ctx, err, "Failed to update trip", slog.String("trip_id", tripID))
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	s.LogInfo(ctx, "Trip updated", slog.String("trip_id", tripID))
	return trip, nil
}
