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

type PgxFamilyRepository struct {
	BaseRepository
}

// newPgxFamilyRepository creates a new repository for family data.
func newPgxFamilyRepository(pool *pgxpool.Pool) portsrepo.FamilyRepository {
	return &PgxFamilyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.FamilyRepository = (*PgxFamilyRepository)(nil)

// SaveFamily inserts or updates a family.
func (r *PgxFamilyRepository) SaveFamily(ctx context.Context, family domain.Family) error {
	modelFam := mapping.ToModelFamily(family)

	query := `
		INSERT INTO families (family_id, trip_id, name, adults, children, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (family_id) DO UPDATE SET
			name = EXCLUDED.name,
			adults = EXCLUDED.adults,
			children = EXCLUDED.children,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelFam.FamilyID,
		modelFam.TripID,
		modelFam.Name,
		modelFam.Adults,
		modelFam.Children,
		modelFam.CreatedAt,
		modelFam.CreatedBy,
		modelFam.LastUpdatedAt,
		modelFam.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23503" { // Foreign key violation
				return fmt.Errorf("%w: trip for family %s does not exist", apperrors.ErrValidation, modelFam.FamilyID)
			}
		}
		return fmt.Errorf("failed to save family %s: %w", modelFam.FamilyID, err)
	}
	return nil
}

// FindFamilyByID retrieves a family by its ID.
func (r *PgxFamilyRepository) FindFamilyByID(ctx context.Context, familyID string) (*domain.Family, error) {
	query := `
		SELECT family_id, trip_id, name, adults, children, created_at, created_by, last_updated_at, last_updated_by
		FROM families
		WHERE family_id = $1;
	`
	var modelFam models.Family
	err := r.Pool.QueryRow(ctx, query, familyID).Scan(
		&modelFam.FamilyID,
		&modelFam.TripID,
		&modelFam.Name,
		&modelFam.Adults,
		&modelFam.Children,
		&modelFam.CreatedAt,
		&modelFam.CreatedBy,
		&modelFam.LastUpdatedAt,
		&modelFam.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find family by ID %s: %w", familyID, err)
	}

	domainFam := mapping.ToDomainFamily(modelFam)
	return &domainFam, nil
}

// ListFamiliesByTrip retrieves all families of a trip.
func (r *PgxFamilyRepository) ListFamiliesByTrip(ctx context.Context, tripID string) ([]domain.Family, error) {
	query := `
		SELECT family_id, trip_id, name, adults, children, created_at, created_by, last_updated_at, last_updated_by
		FROM families
		WHERE trip_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query families for trip %s: %w", tripID, err)
	}
	defer rows.Close()

	modelFams, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Family, error) {
		var family models.Family
		err := row.Scan(
			&family.FamilyID,
			&family.TripID,
			&family.Name,
			&family.Adults,
			&family.Children,
			&family.CreatedAt,
			&family.CreatedBy,
			&family.LastUpdatedAt,
			&family.LastUpdatedBy,
		)
		return family, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Family{}, nil
		}
		return nil, fmt.Errorf("failed to scan families: %w", err)
	}

	return mapping.ToDomainFamilySlice(modelFams), nil
}

// DeleteFamily removes a family. Members keep their rows; the FK is severed
// by the ON DELETE SET NULL constraint on participants.family_id.
func (r *PgxFamilyRepository) DeleteFamily(ctx context.Context, familyID string) error {
	query := `DELETE FROM families WHERE family_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, familyID)
	if err != nil {
		return fmt.Errorf("failed to delete family %s: %w", familyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
