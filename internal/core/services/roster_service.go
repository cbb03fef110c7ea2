package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tripweave/tripsplit/internal/apperrors"
	"github.com/tripweave/tripsplit/internal/core/domain"
	portsrepo "github.com/tripweave/tripsplit/internal/core/ports/repositories"
	portssvc "github.com/tripweave/tripsplit/internal/core/ports/services"
	"github.com/tripweave/tripsplit/internal/dto"
)

// rosterService implements the RosterSvcFacade interface. Participants and
// families share one service because membership checks cross both.
type rosterService struct {
	BaseService
	participantRepo portsrepo.ParticipantRepository
	familyRepo      portsrepo.FamilyRepository
	tripRepo        portsrepo.TripRepository
}

// NewRosterService creates a new roster service with the provided dependencies
func NewRosterService(participantRepo portsrepo.ParticipantRepository, familyRepo portsrepo.FamilyRepository, tripRepo portsrepo.TripRepository) portssvc.RosterSvcFacade {
	return &rosterService{
		participantRepo: participantRepo,
		familyRepo:      familyRepo,
		tripRepo:        tripRepo,
	}
}

// Ensure rosterService implements the RosterSvcFacade interface
var _ portssvc.RosterSvcFacade = (*rosterService)(nil)

// ensureTripExists verifies the trip before attaching roster entries to it.
func (s *rosterService) ensureTripExists(ctx context.Context, tripID string) error {
	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: trip %s not found", apperrors.ErrNotFound, tripID)
		}
		return err
	}
	return nil
}

// AddParticipant adds a participant to a trip.
func (s *rosterService) AddParticipant(ctx context.Context, tripID string, req dto.CreateParticipantRequest, creatorUserID string) (*domain.Participant, error) {
	if err := s.ensureTripExists(ctx, tripID); err != nil {
		return nil, err
	}

	if req.FamilyID != "" {
		family, err := s.familyRepo.FindFamilyByID(ctx, req.FamilyID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: family %s not found", apperrors.ErrValidation, req.FamilyID)
			}
			return nil, err
		}
		if family.TripID != tripID {
			return nil, fmt.Errorf("%w: family %s belongs to a different trip", apperrors.ErrValidation, req.FamilyID)
		}
	}

	now := time.Now()
	participant := domain.Participant{
		ParticipantID: uuid.NewString(),
		TripID:        tripID,
		Name:          req.Name,
		IsAdult:       req.IsAdult != nil && *req.IsAdult,
		FamilyID:      req.FamilyID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.participantRepo.SaveParticipant(ctx, participant); err != nil {
		s.LogError(ctx, err, "Failed to save participant",
			slog.String("trip_id", tripID),
			slog.String("participant_id", participant.ParticipantID))
		return nil, fmt.Errorf("failed to add participant: %w", err)
	}

	s.LogInfo(ctx, "Participant added",
		slog.String("trip_id", tripID),
		slog.String("participant_id", participant.ParticipantID))
	return &participant, nil
}

// ListParticipants retrieves all participants of a trip.
func (s *rosterService) ListParticipants(ctx context.Context, tripID string) ([]domain.Participant, error) {
	participants, err := s.participantRepo.ListParticipantsByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list participants", slog.String("trip_id", tripID))
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	if participants == nil {
		return []domain.Participant{}, nil
	}
	return participants, nil
}

// RemoveParticipant removes a participant from a trip.
func (s *rosterService) RemoveParticipant(ctx context.Context, tripID, participantID string) error {
	participant, err := s.participantRepo.FindParticipantByID(ctx, participantID)
	if err != nil {
		return err
	}
	if participant.TripID != tripID {
		return fmt.Errorf("%w: participant %s not found in trip %s", apperrors.ErrNotFound, participantID, tripID)
	}

	if err := s.participantRepo.DeleteParticipant(ctx, participantID); err != nil {
		s.LogError(ctx, err, "Failed to delete participant",
			slog.String("trip_id", tripID),
			slog.String("participant_id", participantID))
		return fmt.Errorf("failed to remove participant: %w", err)
	}

	s.LogInfo(ctx, "Participant removed",
		slog.String("trip_id", tripID),
		slog.String("participant_id", participantID))
	return nil
}

// AddFamily adds a family to a trip.
func (s *rosterService) AddFamily(ctx context.Context, tripID string, req dto.CreateFamilyRequest, creatorUserID string) (*domain.Family, error) {
	if err := s.ensureTripExists(ctx, tripID); err != nil {
		return nil, err
	}

	now := time.Now()
	family := domain.Family{
		FamilyID: uuid.NewString(),
		TripID:   tripID,
		Name:     req.Name,
		Adults:   req.Adults,
		Children: req.Children,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.familyRepo.SaveFamily(ctx, family); err != nil {
		s.LogError(ctx, err, "Failed to save family",
			slog.String("trip_id", tripID),
			slog.String("family_id", family.FamilyID))
		return nil, fmt.Errorf("failed to add family: %w", err)
	}

	s.LogInfo(ctx, "Family added",
		slog.String("trip_id", tripID),
		slog.String("family_id", family.FamilyID))
	return &family, nil
}

// ListFamilies retrieves all families of a trip.
func (s *rosterService) ListFamilies(ctx context.Context, tripID string) ([]domain.Family, error) {
	families, err := s.familyRepo.ListFamiliesByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list families", slog.String("trip_id", tripID))
		return nil, fmt.Errorf("failed to list families: %w", err)
	}
	if families == nil {
		return []domain.Family{}, nil
	}
	return families, nil
}

// RemoveFamily removes a family from a trip. Its members stay on the roster as
// standalone participants.
func (s *rosterService) RemoveFamily(ctx context.Context, tripID, familyID string) error {
	family, err := s.familyRepo.FindFamilyByID(ctx, familyID)
	if err != nil {
		return err
	}
	if family.TripID != tripID {
		return fmt.Errorf("%w: family %s not found in trip %s", apperrors.ErrNotFound, familyID, tripID)
	}

	if err := s.familyRepo.DeleteFamily(ctx, familyID); err != nil {
		s.LogError(ctx, err, "Failed to delete family",
			slog.String("trip_id", tripID),
			slog.String("family_id", familyID))
		return fmt.Errorf("failed to remove family: %w", err)
	}

	s.LogInfo(ctx, "Family removed",
		slog.String("trip_id", tripID),
		slog.String("family_id", familyID))
	return nil
}
