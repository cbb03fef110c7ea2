package repositories

import (
	"context"

	"github.com/tripweave/tripsplit/internal/core/domain"
)

// ParticipantRepository defines persistence operations for trip participants.
type ParticipantRepository interface {
	SaveParticipant(ctx context.Context, participant domain.Participant) error

	// FindParticipantByID retrieves a participant by its ID.
	// Returns apperrors.ErrNotFound if no participant exists.
	FindParticipantByID(ctx context.Context, participantID string) (*domain.Participant, error)

	// ListParticipantsByTrip retrieves all participants of a trip.
	ListParticipantsByTrip(ctx context.Context, tripID string) ([]domain.Participant, error)

	DeleteParticipant(ctx context.Context, participantID string) error
}

// FamilyRepository defines persistence operations for trip families.
type FamilyRepository interface {
	SaveFamily(ctx context.Context, family domain.Family) error

	// FindFamilyByID retrieves a family by its ID.
	// Returns apperrors.ErrNotFound if no family exists.
	FindFamilyByID(ctx context.Context, familyID string) (*domain.Family, error)

	// ListFamiliesByTrip retrieves all families of a trip.
	ListFamiliesByTrip(ctx context.Context, tripID string) ([]domain.Family, error)

	DeleteFamily(ctx context.Context, familyID string) error
}
