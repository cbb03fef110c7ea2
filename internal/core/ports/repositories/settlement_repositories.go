package repositories

import (
	"context"

	"github.com/tripweave/tripsplit/internal/core/domain"
)

// SettlementRepository defines persistence operations for recorded settlements.
type SettlementRepository interface {
	SaveSettlement(ctx context.Context, settlement domain.Settlement) error

	// ListSettlementsByTrip retrieves all settlements of a trip in recorded order.
	ListSettlementsByTrip(ctx context.Context, tripID string) ([]domain.Settlement, error)

	DeleteSettlement(ctx context.Context, settlementID string) error
}
