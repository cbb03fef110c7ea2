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

type PgxParticipantRepository struct {
	BaseRepository
}

// newPgxParticipantRepository creates a new repository for participant data.
func newPgxParticipantRepository(pool *pgxpool.Pool) portsrepo.ParticipantRepository {
	return &PgxParticipantRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ParticipantRepository = (*PgxParticipantRepository)(nil)

// SaveParticipant inserts or updates a participant.
func (r *PgxParticipantRepository) SaveParticipant(ctx context.Context, participant domain.Participant) error {
	modelPart := mapping.ToModelParticipant(participant)

	query := `
		INSERT INTO participants (participant_id, trip_id, name, is_adult, family_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (participant_id) DO UPDATE SET
			name = EXCLUDED.name,
			is_adult = EXCLUDED.is_adult,
			family_id = EXCLUDED.family_id,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelPart.ParticipantID,
		modelPart.TripID,
		modelPart.Name,
		modelPart.IsAdult,
		modelPart.FamilyID,
		modelPart.CreatedAt,
		modelPart.CreatedBy,
		modelPart.LastUpdatedAt,
		modelPart.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23503" { // Foreign key violation
				return fmt.Errorf("%w: trip or family for participant %s does not exist", apperrors.ErrValidation, modelPart.ParticipantID)
			}
		}
		return fmt.Errorf("failed to save participant %s: %w", modelPart.ParticipantID, err)
	}
	return nil
}

// FindParticipantByID retrieves a participant by its ID.
func (r *PgxParticipantRepository) FindParticipantByID(ctx context.Context, participantID string) (*domain.Participant, error) {
	query := `
		SELECT participant_id, trip_id, name, is_adult, family_id, created_at, created_by, last_updated_at, last_updated_by
		FROM participants
		WHERE participant_id = $1;
	`
	var modelPart models.Participant
	err := r.Pool.QueryRow(ctx, query, participantID).Scan(
		&modelPart.ParticipantID,
		&modelPart.TripID,
		&modelPart.Name,
		&modelPart.IsAdult,
		&modelPart.FamilyID,
		&modelPart.CreatedAt,
		&modelPart.CreatedBy,
		&modelPart.LastUpdatedAt,
		&modelPart.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find participant by ID %s: %w", participantID, err)
	}

	domainPart := mapping.ToDomainParticipant(modelPart)
	return &domainPart, nil
}

// ListParticipantsByTrip retrieves all participants of a trip.
func (r *PgxParticipantRepository) ListParticipantsByTrip(ctx context.Context, tripID string) ([]domain.Participant, error) {
	query := `
		SELECT participant_id, trip_id, name, is_adult, family_id, created_at, created_by, last_updated_at, last_updated_by
		FROM participants
		WHERE trip_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants for trip %s: %w", tripID, err)
	}
	defer rows.Close()

	modelParts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Participant, error) {
		var participant models.Participant
		err := row.Scan(
			&participant.ParticipantID,
			&participant.TripID,
			&participant.Name,
			&participant.IsAdult,
			&participant.FamilyID,
			&participant.CreatedAt,
			&participant.CreatedBy,
			&participant.LastUpdatedAt,
			&participant.LastUpdatedBy,
		)
		return participant, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Participant{}, nil
		}
		return nil, fmt.Errorf("failed to scan participants: %w", err)
	}

	return mapping.ToDomainParticipantSlice(modelParts), nil
}

// DeleteParticipant removes a participant.
func (r *PgxParticipantRepository) DeleteParticipant(ctx context.Context, participantID string) error {
	query := `DELETE FROM participants WHERE participant_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, participantID)
	if err != nil {
		return fmt.Errorf("failed to delete participant %s: %w", participantID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
