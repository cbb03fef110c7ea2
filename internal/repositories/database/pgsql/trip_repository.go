package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tripweave/tripsplit/internal/apperrors"
	"github.com/tripweave/tripsplit/internal/core/domain"
	portsrepo "github.com/tripweave/tripsplit/internal/core/ports/repositories"
	"github.com/tripweave/tripsplit/internal/models"
	"github.com/tripweave/tripsplit/internal/utils/mapping"
)

type PgxTripRepository struct {
	BaseRepository
}

// newPgxTripRepository creates a new repository for trip data.
func newPgxTripRepository(pool *pgxpool.Pool) portsrepo.TripRepository {
	return &PgxTripRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TripRepository = (*PgxTripRepository)(nil)

// SaveTrip inserts a new trip.
func (r *PgxTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	modelTrip, err := mapping.ToModelTrip(trip)
	if err != nil {
		return fmt.Errorf("failed to map trip %s: %w", trip.TripID, err)
	}

	query := `
		INSERT INTO trips (trip_id, name, default_currency, tracking_mode, exchange_rates, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err = r.Pool.Exec(ctx, query,
		modelTrip.TripID,
		modelTrip.Name,
		modelTrip.DefaultCurrency,
		modelTrip.TrackingMode,
		modelTrip.ExchangeRatesJSON,
		modelTrip.CreatedAt,
		modelTrip.CreatedBy,
		modelTrip.LastUpdatedAt,
		modelTrip.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: trip with ID %s already exists", apperrors.ErrDuplicate, modelTrip.TripID)
			}
		}
		return fmt.Errorf("failed to save trip %s: %w", modelTrip.TripID, err)
	}
	return nil
}

// FindTripByID retrieves a trip by its ID.
func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	query := `
		SELECT trip_id, name, default_currency, tracking_mode, exchange_rates, created_at, created_by, last_updated_at, last_updated_by
		FROM trips
		WHERE trip_id = $1;
	`
	var modelTrip models.Trip
	err := r.Pool.QueryRow(ctx, query, tripID).Scan(
		&modelTrip.TripID,
		&modelTrip.Name,
		&modelTrip.DefaultCurrency,
		&modelTrip.TrackingMode,
		&modelTrip.ExchangeRatesJSON,
		&modelTrip.CreatedAt,
		&modelTrip.CreatedBy,
		&modelTrip.LastUpdatedAt,
		&modelTrip.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find trip by ID %s: %w", tripID, err)
	}

	domainTrip, err := mapping.ToDomainTrip(modelTrip)
	if err != nil {
		return nil, fmt.Errorf("failed to map trip %s: %w", tripID, err)
	}
	return &domainTrip, nil
}

// ListTrips retrieves all trips ordered by creation time.
func (r *PgxTripRepository) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	query := `
		SELECT trip_id, name, default_currency, tracking_mode, exchange_rates, created_at, created_by, last_updated_at, last_updated_by
		FROM trips
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	modelTrips, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Trip, error) {
		var trip models.Trip
		err := row.Scan(
			&trip.TripID,
			&trip.Name,
			&trip.DefaultCurrency,
			&trip.TrackingMode,
			&trip.ExchangeRatesJSON,
			&trip.CreatedAt,
			&trip.CreatedBy,
			&trip.LastUpdatedAt,
			&trip.LastUpdatedBy,
		)
		return trip, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Trip{}, nil
		}
		return nil, fmt.Errorf("failed to scan trips: %w", err)
	}

	domainTrips := make([]domain.Trip, 0, len(modelTrips))
	for _, modelTrip := range modelTrips {
		domainTrip, err := mapping.ToDomainTrip(modelTrip)
		if err != nil {
			return nil, fmt.Errorf("failed to map trip %s: %w", modelTrip.TripID, err)
		}
		domainTrips = append(domainTrips, domainTrip)
	}
	return domainTrips, nil
}

// UpdateTrip persists changes to an existing trip.
func (r *PgxTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	modelTrip, err := mapping.ToModelTrip(trip)
	if err != nil {
		return fmt.Errorf("failed to map trip %s: %w", trip.TripID, err)
	}

	query := `
		UPDATE trips
		SET name = $2, default_currency = $3, tracking_mode = $4, exchange_rates = $5, last_updated_at = $6, last_updated_by = $7
		WHERE trip_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelTrip.TripID,
		modelTrip.Name,
		modelTrip.DefaultCurrency,
		modelTrip.TrackingMode,
		modelTrip.ExchangeRatesJSON,
		modelTrip.LastUpdatedAt,
		modelTrip.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to update trip %s: %w", modelTrip.TripID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
