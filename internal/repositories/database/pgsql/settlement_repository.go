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

type PgxSettlementRepository struct {
	BaseRepository
}

// newPgxSettlementRepository creates a new repository for settlement data.
func newPgxSettlementRepository(pool *pgxpool.Pool) portsrepo.SettlementRepository {
	return &PgxSettlementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SettlementRepository = (*PgxSettlementRepository)(nil)

// SaveSettlement inserts a new settlement.
func (r *PgxSettlementRepository) SaveSettlement(ctx context.Context, settlement domain.Settlement) error {
	modelSet := mapping.ToModelSettlement(settlement)

	query := `
		INSERT INTO settlements (settlement_id, trip_id, from_participant_id, to_participant_id, amount, currency_code, settlement_date, note, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelSet.SettlementID,
		modelSet.TripID,
		modelSet.FromParticipantID,
		modelSet.ToParticipantID,
		modelSet.Amount,
		modelSet.CurrencyCode,
		modelSet.SettlementDate,
		modelSet.Note,
		modelSet.CreatedAt,
		modelSet.CreatedBy,
		modelSet.LastUpdatedAt,
		modelSet.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: settlement with ID %s already exists", apperrors.ErrDuplicate, modelSet.SettlementID)
			}
			if pgErr.Code == "23503" { // Foreign key violation
				return fmt.Errorf("%w: trip or participant for settlement %s does not exist", apperrors.ErrValidation, modelSet.SettlementID)
			}
		}
		return fmt.Errorf("failed to save settlement %s: %w", modelSet.SettlementID, err)
	}
	return nil
}

// ListSettlementsByTrip retrieves all settlements of a trip in recorded order.
func (r *PgxSettlementRepository) ListSettlementsByTrip(ctx context.Context, tripID string) ([]domain.Settlement, error) {
	query := `
		SELECT settlement_id, trip_id, from_participant_id, to_participant_id, amount, currency_code, settlement_date, note, created_at, created_by, last_updated_at, last_updated_by
		FROM settlements
		WHERE trip_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query settlements for trip %s: %w", tripID, err)
	}
	defer rows.Close()

	modelSets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Settlement, error) {
		var settlement models.Settlement
		err := row.Scan(
			&settlement.SettlementID,
			&settlement.TripID,
			&settlement.FromParticipantID,
			&settlement.ToParticipantID,
			&settlement.Amount,
			&settlement.CurrencyCode,
			&settlement.SettlementDate,
			&settlement.Note,
			&settlement.CreatedAt,
			&settlement.CreatedBy,
			&settlement.LastUpdatedAt,
			&settlement.LastUpdatedBy,
		)
		return settlement, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Settlement{}, nil
		}
		return nil, fmt.Errorf("failed to scan settlements: %w", err)
	}

	return mapping.ToDomainSettlementSlice(modelSets), nil
}

// DeleteSettlement removes a settlement.
func (r *PgxSettlementRepository) DeleteSettlement(ctx context.Context, settlementID string) error {
	query := `DELETE FROM settlements WHERE settlement_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, settlementID)
	if err != nil {
		return fmt.Errorf("failed to delete settlement %s: %w", settlementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
