package services

import (
	"context"

	"github.com/tripweave/tripsplit/internal/core/domain"
)

// BalanceSvcFacade exposes the expense-allocation and debt-settlement engine
// over a trip's persisted collections. Both operations are pure recomputations;
// nothing is cached or patched incrementally.
type BalanceSvcFacade interface {
	// CalculateTripBalances folds the trip's expenses and settlements into
	// per-entity net balances.
	CalculateTripBalances(ctx context.Context, tripID string) (*domain.BalanceCalculation, error)

	// SuggestSettlementPlan reduces the trip's current balances to a short
	// list of payments that settles everyone.
	SuggestSettlementPlan(ctx context.Context, tripID string) (*domain.OptimalSettlementPlan, error)
}
