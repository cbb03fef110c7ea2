package services

import (
	"context"

	"github.com/tripweave/tripsplit/internal/core/domain"
	"github.com/tripweave/tripsplit/internal/dto"
)

// SettlementReaderSvc defines read operations for recorded settlements.
type SettlementReaderSvc interface {
	// ListSettlements retrieves all settlements of a trip in recorded order.
	ListSettlements(ctx context.Context, tripID string) ([]domain.Settlement, error)
}

// SettlementWriterSvc defines write operations for recorded settlements.
type SettlementWriterSvc interface {
	// RecordSettlement persists a real-world payment between two participants.
	RecordSettlement(ctx context.Context, tripID string, req dto.CreateSettlementRequest, creatorUserID string) (*domain.Settlement, error)

	// DeleteSettlement removes a mistakenly recorded settlement.
	DeleteSettlement(ctx context.Context, tripID, settlementID string) error
}

// SettlementSvcFacade combines all settlement-related service interfaces
type SettlementSvcFacade interface {
	SettlementReaderSvc
	SettlementWriterSvc
}
