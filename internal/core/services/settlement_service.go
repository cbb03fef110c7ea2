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
	portsrepo "github.com/tripweave/tripsplit/internal/core/ports/repositories"
	portssvc "github.com/tripweave/tripsplit/internal/core/ports/services"
	"github.com/tripweave/tripsplit/internal/dto"
)

// settlementService implements the SettlementSvcFacade interface
type settlementService struct {
	BaseService
	settlementRepo  portsrepo.SettlementRepository
	tripRepo        portsrepo.TripRepository
	participantRepo portsrepo.ParticipantRepository
}

// NewSettlementService creates a new settlement service with the provided dependencies
func NewSettlementService(settlementRepo portsrepo.SettlementRepository, tripRepo portsrepo.TripRepository, participantRepo portsrepo.ParticipantRepository) portssvc.SettlementSvcFacade {
	return &settlementService{
		settlementRepo:  settlementRepo,
		tripRepo:        tripRepo,
		participantRepo: participantRepo,
	}
}

// Ensure settlementService implements the SettlementSvcFacade interface
var _ portssvc.SettlementSvcFacade = (*settlementService)(nil)

// RecordSettlement persists a real-world payment between two participants.
// Settlements are applied to balances at face value, so they must be recorded
// in the trip's base currency.
func (s *settlementService) RecordSettlement(ctx context.Context, tripID string, req dto.CreateSettlementRequest, creatorUserID string) (*domain.Settlement, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: settlement amount must be positive", apperrors.ErrValidation)
	}
	if req.FromParticipantID == req.ToParticipantID {
		return nil, fmt.Errorf("%w: a settlement cannot pay a participant back to themselves", apperrors.ErrValidation)
	}

	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: trip %s not found", apperrors.ErrNotFound, tripID)
		}
		return nil, err
	}
	if req.CurrencyCode != trip.DefaultCurrency {
		return nil, fmt.Errorf("%w: settlements must be recorded in the trip currency %s", apperrors.ErrValidation, trip.DefaultCurrency)
	}

	for _, participantID := range []string{req.FromParticipantID, req.ToParticipantID} {
		participant, err := s.participantRepo.FindParticipantByID(ctx, participantID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: participant %s not found", apperrors.ErrValidation, participantID)
			}
			return nil, err
		}
		if participant.TripID != tripID {
			return nil, fmt.Errorf("%w: participant %s belongs to a different trip", apperrors.ErrValidation, participantID)
		}
	}

	now := time.Now()
	settlement := domain.Settlement{
		SettlementID:      uuid.NewString(),
		TripID:            tripID,
		FromParticipantID: req.FromParticipantID,
		ToParticipantID:   req.ToParticipantID,
		Amount:            req.Amount,
		CurrencyCode:      req.CurrencyCode,
		SettlementDate:    req.SettlementDate,
		Note:              req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.settlementRepo.SaveSettlement(ctx, settlement); err != nil {
		s.LogError(ctx, err, "Failed to save settlement",
			slog.String("trip_id", tripID),
			slog.String("settlement_id", settlement.SettlementID))
		return nil, fmt.Errorf("failed to record settlement: %w", err)
	}

	s.LogInfo(ctx, "Settlement recorded",
		slog.String("trip_id", tripID),
		slog.String("settlement_id", settlement.SettlementID),
		slog.String("amount", settlement.Amount.String()))
	return &settlement, nil
}

// DeleteSettlement removes a mistakenly recorded settlement.
func (s *settlementService) DeleteSettlement(ctx context.Context, tripID, settlementID string) error {
	settlements, err := s.settlementRepo.ListSettlementsByTrip(ctx, tripID)
	if err != nil {
		return fmt.Errorf("failed to list settlements: %w", err)
	}
	found := false
	for _, settlement := range settlements {
		if settlement.SettlementID == settlementID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: settlement %s not found in trip %s", apperrors.ErrNotFound, settlementID, tripID)
	}

	if err := s.settlementRepo.DeleteSettlement(ctx, settlementID); err != nil {
		s.LogError(ctx, err, "Failed to delete settlement",
			slog.String("trip_id", tripID),
			slog.String("settlement_id", settlementID))
		return fmt.Errorf("failed to delete settlement: %w", err)
	}

	s.LogInfo(ctx, "Settlement deleted",
		slog.String("trip_id", tripID),
		slog.String("settlement_id", settlementID))
	return nil
}

// ListSettlements retrieves all settlements of a trip in recorded order.
func (s *settlementService) ListSettlements(ctx context.Context, tripID string) ([]domain.Settlement, error) {
	settlements, err := s.settlementRepo.ListSettlementsByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list settlements", slog.String("trip_id", tripID))
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	if settlements == nil {
		return []domain.Settlement{}, nil
	}
	return settlements, nil
}
