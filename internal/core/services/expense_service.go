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
	"github.com/tripweave/tripsplit/internal/core/engine"
	portsrepo "github.com/tripweave/tripsplit/internal/core/ports/repositories"
	portssvc "github.com/tripweave/tripsplit/internal/core/ports/services"
	"github.com/tripweave/tripsplit/internal/dto"
)

var percentTotal = decimal.NewFromInt(100)

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo     portsrepo.ExpenseRepository
	tripRepo        portsrepo.TripRepository
	participantRepo portsrepo.ParticipantRepository
	familyRepo      portsrepo.FamilyRepository
}

// NewExpenseService creates a new expense service with the provided dependencies
func NewExpenseService(expenseRepo portsrepo.ExpenseRepository, tripRepo portsrepo.TripRepository, participantRepo portsrepo.ParticipantRepository, familyRepo portsrepo.FamilyRepository) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo:     expenseRepo,
		tripRepo:        tripRepo,
		participantRepo: participantRepo,
		familyRepo:      familyRepo,
	}
}

// Ensure expenseService implements the ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense validates and persists a new expense. The split-sum checks
// here are the only place they happen: the allocation engine trusts stored
// distributions and never re-validates them.
func (s *expenseService) CreateExpense(ctx context.Context, tripID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: trip %s not found", apperrors.ErrNotFound, tripID)
		}
		return nil, err
	}

	participants, err := s.participantRepo.ListParticipantsByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants for validation: %w", err)
	}
	families, err := s.familyRepo.ListFamiliesByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load families for validation: %w", err)
	}

	participantIDs := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		participantIDs[p.ParticipantID] = struct{}{}
	}
	familyIDs := make(map[string]struct{}, len(families))
	for _, f := range families {
		familyIDs[f.FamilyID] = struct{}{}
	}

	if _, ok := participantIDs[req.PaidBy]; !ok {
		return nil, fmt.Errorf("%w: payer %s is not a participant of trip %s", apperrors.ErrValidation, req.PaidBy, tripID)
	}

	distribution := req.Distribution.ToDomainDistribution()
	if err := validateDistribution(distribution, req.Amount, participantIDs, familyIDs); err != nil {
		return nil, err
	}
	distribution = distribution.Normalize(participants)

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:    uuid.NewString(),
		TripID:       tripID,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		PaidBy:       req.PaidBy,
		Category:     req.Category,
		ExpenseDate:  req.ExpenseDate,
		Distribution: distribution,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense",
			slog.String("trip_id", tripID),
			slog.String("expense_id", expense.ExpenseID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created",
		slog.String("trip_id", tripID),
		slog.String("expense_id", expense.ExpenseID),
		slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

// validateDistribution enforces the structural and split-sum preconditions of
// a distribution against the trip roster.
func validateDistribution(d domain.Distribution, amount decimal.Decimal, participantIDs, familyIDs map[string]struct{}) error {
	checkParticipants := func(ids []string) error {
		for _, id := range ids {
			if _, ok := participantIDs[id]; !ok {
				return fmt.Errorf("%w: unknown participant %s in distribution", apperrors.ErrValidation, id)
			}
		}
		return nil
	}
	checkFamilies := func(ids []string) error {
		for _, id := range ids {
			if _, ok := familyIDs[id]; !ok {
				return fmt.Errorf("%w: unknown family %s in distribution", apperrors.ErrValidation, id)
			}
		}
		return nil
	}
	splitIDs := func(splits []domain.SplitValue) []string {
		ids := make([]string, len(splits))
		for i, sv := range splits {
			ids[i] = sv.EntityID
		}
		return ids
	}
	sumSplits := func(splits ...[]domain.SplitValue) decimal.Decimal {
		total := decimal.Zero
		for _, list := range splits {
			for _, sv := range list {
				if sv.Value.LessThan(decimal.Zero) {
					total = decimal.NewFromInt(-1)
					return total
				}
				total = total.Add(sv.Value)
			}
		}
		return total
	}

	allowParticipants := d.Type == domain.DistributionIndividuals || d.Type == domain.DistributionMixed
	allowFamilies := d.Type == domain.DistributionFamilies || d.Type == domain.DistributionMixed

	if !allowParticipants && (len(d.ParticipantIDs) > 0 || len(d.ParticipantSplits) > 0) {
		return fmt.Errorf("%w: participant entries are not allowed in a %s distribution", apperrors.ErrValidation, d.Type)
	}
	if !allowFamilies && (len(d.FamilyIDs) > 0 || len(d.FamilySplits) > 0) {
		return fmt.Errorf("%w: family entries are not allowed in a %s distribution", apperrors.ErrValidation, d.Type)
	}

	switch d.SplitMode {
	case domain.SplitEqual:
		if len(d.ParticipantIDs)+len(d.FamilyIDs) == 0 {
			return fmt.Errorf("%w: equal distribution lists no entities", apperrors.ErrValidation)
		}
		if err := checkParticipants(d.ParticipantIDs); err != nil {
			return err
		}
		if err := checkFamilies(d.FamilyIDs); err != nil {
			return err
		}

	case domain.SplitPercentage:
		if len(d.ParticipantSplits)+len(d.FamilySplits) == 0 {
			return fmt.Errorf("%w: percentage distribution lists no splits", apperrors.ErrValidation)
		}
		if err := checkParticipants(splitIDs(d.ParticipantSplits)); err != nil {
			return err
		}
		if err := checkFamilies(splitIDs(d.FamilySplits)); err != nil {
			return err
		}
		total := sumSplits(d.ParticipantSplits, d.FamilySplits)
		if total.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: percentage splits must be non-negative", apperrors.ErrValidation)
		}
		if total.Sub(percentTotal).Abs().GreaterThan(engine.Tolerance) {
			return fmt.Errorf("%w: percentage splits sum to %s, expected 100", apperrors.ErrValidation, total.String())
		}

	case domain.SplitAmount:
		if len(d.ParticipantSplits)+len(d.FamilySplits) == 0 {
			return fmt.Errorf("%w: amount distribution lists no splits", apperrors.ErrValidation)
		}
		if err := checkParticipants(splitIDs(d.ParticipantSplits)); err != nil {
			return err
		}
		if err := checkFamilies(splitIDs(d.FamilySplits)); err != nil {
			return err
		}
		total := sumSplits(d.ParticipantSplits, d.FamilySplits)
		if total.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: amount splits must be non-negative", apperrors.ErrValidation)
		}
		if total.Sub(amount).Abs().GreaterThan(engine.Tolerance) {
			return fmt.Errorf("%w: amount splits sum to %s, expected %s", apperrors.ErrValidation, total.String(), amount.String())
		}

	default:
		return fmt.Errorf("%w: unknown split mode '%s'", apperrors.ErrValidation, d.SplitMode)
	}

	return nil
}

// GetExpenseByID retrieves a specific expense by its ID.
func (s *expenseService) GetExpenseByID(ctx context.Context, tripID, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense", slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	if expense.TripID != tripID {
		return nil, fmt.Errorf("%w: expense %s not found in trip %s", apperrors.ErrNotFound, expenseID, tripID)
	}
	return expense, nil
}

// ListExpenses retrieves all expenses of a trip.
func (s *expenseService) ListExpenses(ctx context.Context, tripID string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpensesByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("trip_id", tripID))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// DeleteExpense removes an expense from a trip.
func (s *expenseService) DeleteExpense(ctx context.Context, tripID, expenseID string) error {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return err
	}
	if expense.TripID != tripID {
		return fmt.Errorf("%w: expense %s not found in trip %s", apperrors.ErrNotFound, expenseID, tripID)
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense",
			slog.String("trip_id", tripID),
			slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.LogInfo(ctx, "Expense deleted",
		slog.String("trip_id", tripID),
		slog.String("expense_id", expenseID))
	return nil
}
