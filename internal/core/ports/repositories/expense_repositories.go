package repositories

import (
	"context"

	"github.com/tripweave/tripsplit/internal/core/domain"
)

// ExpenseRepository defines persistence operations for expenses.
type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// FindExpenseByID retrieves an expense by its ID.
	// Returns apperrors.ErrNotFound if no expense exists.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpensesByTrip retrieves all expenses of a trip ordered by expense date.
	ListExpensesByTrip(ctx context.Context, tripID string) ([]domain.Expense, error)

	DeleteExpense(ctx context.Context, expenseID string) error
}
