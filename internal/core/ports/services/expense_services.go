package services

import (
	"context"

	"github.com/tripweave/tripsplit/internal/core/domain"
	"github.com/tripweave/tripsplit/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a specific expense by its ID.
	GetExpenseByID(ctx context.Context, tripID, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves all expenses of a trip.
	ListExpenses(ctx context.Context, tripID string) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpense validates and persists a new expense, including the
	// split-sum preconditions the allocation engine trusts.
	CreateExpense(ctx context.Context, tripID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// DeleteExpense removes an expense from a trip.
	DeleteExpense(ctx context.Context, tripID, expenseID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
