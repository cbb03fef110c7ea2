package services

import (
	"context"

	"github.com/tripweave/tripsplit/internal/core/domain"
	"github.com/tripweave/tripsplit/internal/dto"
)

// RosterReaderSvc defines read operations for a trip's participants and families.
type RosterReaderSvc interface {
	// ListParticipants retrieves all participants of a trip.
	ListParticipants(ctx context.Context, tripID string) ([]domain.Participant, error)

	// ListFamilies retrieves all families of a trip.
	ListFamilies(ctx context.Context, tripID string) ([]domain.Family, error)
}

// RosterWriterSvc defines write operations for a trip's participants and families.
type RosterWriterSvc interface {
	// AddParticipant adds a participant to a trip.
	AddParticipant(ctx context.Context, tripID string, req dto.CreateParticipantRequest, creatorUserID string) (*domain.Participant, error)

	// RemoveParticipant removes a participant from a trip.
	RemoveParticipant(ctx context.Context, tripID, participantID string) error

	// AddFamily adds a family to a trip.
	AddFamily(ctx context.Context, tripID string, req dto.CreateFamilyRequest, creatorUserID string) (*domain.Family, error)

	// RemoveFamily removes a family from a trip.
	RemoveFamily(ctx context.Context, tripID, familyID string) error
}

// RosterSvcFacade combines all roster-related service interfaces
type RosterSvcFacade interface {
	RosterReaderSvc
	RosterWriterSvc
}
