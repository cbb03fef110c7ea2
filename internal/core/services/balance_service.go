package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tripweave/tripsplit/internal/apperrors"
	"github.com/tripweave/tripsplit/internal/core/domain"
	"github.com/tripweave/tripsplit/internal/core/engine"
	portsrepo "github.com/tripweave/tripsplit/internal/core/ports/repositories"
	portssvc "github.com/tripweave/tripsplit/internal/core/ports/services"
)

// balanceService implements the BalanceSvcFacade interface. It is the only
// call site of the engine package: it loads a trip's collections and hands
// them over, nothing is cached between calls.
type balanceService struct {
	BaseService
	tripRepo        portsrepo.TripRepository
	participantRepo portsrepo.ParticipantRepository
	familyRepo      portsrepo.FamilyRepository
	expenseRepo     portsrepo.ExpenseRepository
	settlementRepo  portsrepo.SettlementRepository
}

// NewBalanceService creates a new balance service with the provided dependencies
func NewBalanceService(repos portsrepo.RepositoryProvider) portssvc.BalanceSvcFacade {
	return &balanceService{
		tripRepo:        repos.TripRepo,
		participantRepo: repos.ParticipantRepo,
		familyRepo:      repos.FamilyRepo,
		expenseRepo:     repos.ExpenseRepo,
		settlementRepo:  repos.SettlementRepo,
	}
}

// Ensure balanceService implements the BalanceSvcFacade interface
var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// CalculateTripBalances folds the trip's expenses and settlements into
// per-entity net balances.
func (s *balanceService) CalculateTripBalances(ctx context.Context, tripID string) (*domain.BalanceCalculation, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: trip %s not found", apperrors.ErrNotFound, tripID)
		}
		return nil, err
	}

	participants, err := s.participantRepo.ListParticipantsByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	families, err := s.familyRepo.ListFamiliesByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load families: %w", err)
	}
	expenses, err := s.expenseRepo.ListExpensesByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	settlements, err := s.settlementRepo.ListSettlementsByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settlements: %w", err)
	}

	calculation := engine.CalculateBalances(expenses, participants, families, trip.TrackingMode, settlements, trip.DefaultCurrency, trip.ExchangeRates)

	if len(calculation.Warnings) > 0 {
		s.LogInfo(ctx, "Balance calculation dropped unresolved references",
			slog.String("trip_id", tripID),
			slog.Int("warnings", len(calculation.Warnings)))
	}
	return &calculation, nil
}

// SuggestSettlementPlan reduces the trip's current balances to a short list of
// payments that settles everyone.
func (s *balanceService) SuggestSettlementPlan(ctx context.Context, tripID string) (*domain.OptimalSettlementPlan, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: trip %s not found", apperrors.ErrNotFound, tripID)
		}
		return nil, err
	}

	calculation, err := s.CalculateTripBalances(ctx, tripID)
	if err != nil {
		return nil, err
	}

	plan := engine.CalculateOptimalSettlement(calculation.Balances, trip.DefaultCurrency)

	s.LogDebug(ctx, "Settlement plan computed",
		slog.String("trip_id", tripID),
		slog.Int("transactions", plan.TotalTransactions))
	return &plan, nil
}
