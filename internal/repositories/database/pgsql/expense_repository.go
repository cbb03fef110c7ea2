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

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

// SaveExpense inserts or updates an expense together with its distribution.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	modelExp, err := mapping.ToModelExpense(expense)
	if err != nil {
		return fmt.Errorf("failed to map expense %s: %w", expense.ExpenseID, err)
	}

	query := `
		INSERT INTO expenses (expense_id, trip_id, amount, currency_code, paid_by, category, expense_date, distribution, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (expense_id) DO UPDATE SET
			amount = EXCLUDED.amount,
			currency_code = EXCLUDED.currency_code,
			paid_by = EXCLUDED.paid_by,
			category = EXCLUDED.category,
			expense_date = EXCLUDED.expense_date,
			distribution = EXCLUDED.distribution,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err = r.Pool.Exec(ctx, query,
		modelExp.ExpenseID,
		modelExp.TripID,
		modelExp.Amount,
		modelExp.CurrencyCode,
		modelExp.PaidBy,
		modelExp.Category,
		modelExp.ExpenseDate,
		modelExp.DistributionJSON,
		modelExp.CreatedAt,
		modelExp.CreatedBy,
		modelExp.LastUpdatedAt,
		modelExp.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23503" { // Foreign key violation
				return fmt.Errorf("%w: trip or payer for expense %s does not exist", apperrors.ErrValidation, modelExp.ExpenseID)
			}
		}
		return fmt.Errorf("failed to save expense %s: %w", modelExp.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT expense_id, trip_id, amount, currency_code, paid_by, category, expense_date, distribution, created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE expense_id = $1;
	`
	var modelExp models.Expense
	err := r.Pool.QueryRow(ctx, query, expenseID).Scan(
		&modelExp.ExpenseID,
		&modelExp.TripID,
		&modelExp.Amount,
		&modelExp.CurrencyCode,
		&modelExp.PaidBy,
		&modelExp.Category,
		&modelExp.ExpenseDate,
		&modelExp.DistributionJSON,
		&modelExp.CreatedAt,
		&modelExp.CreatedBy,
		&modelExp.LastUpdatedAt,
		&modelExp.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}

	domainExp, err := mapping.ToDomainExpense(modelExp)
	if err != nil {
		return nil, fmt.Errorf("failed to map expense %s: %w", expenseID, err)
	}
	return &domainExp, nil
}

// ListExpensesByTrip retrieves all expenses of a trip ordered by expense date.
func (r *PgxExpenseRepository) ListExpensesByTrip(ctx context.Context, tripID string) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, trip_id, amount, currency_code, paid_by, category, expense_date, distribution, created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE trip_id = $1
		ORDER BY expense_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for trip %s: %w", tripID, err)
	}
	defer rows.Close()

	modelExps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		var expense models.Expense
		err := row.Scan(
			&expense.ExpenseID,
			&expense.TripID,
			&expense.Amount,
			&expense.CurrencyCode,
			&expense.PaidBy,
			&expense.Category,
			&expense.ExpenseDate,
			&expense.DistributionJSON,
			&expense.CreatedAt,
			&expense.CreatedBy,
			&expense.LastUpdatedAt,
			&expense.LastUpdatedBy,
		)
		return expense, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Expense{}, nil
		}
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}

	domainExps := make([]domain.Expense, 0, len(modelExps))
	for _, modelExp := range modelExps {
		domainExp, err := mapping.ToDomainExpense(modelExp)
		if err != nil {
			return nil, fmt.Errorf("failed to map expense %s: %w", modelExp.ExpenseID, err)
		}
		domainExps = append(domainExps, domainExp)
	}
	return domainExps, nil
}

// DeleteExpense removes an expense.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	query := `DELETE FROM expenses WHERE expense_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
