package dto

import "github.com/tripweave/tripsplit/internal/core/domain"

// CreateParticipantRequest defines the structure for adding a participant to a trip.
type CreateParticipantRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	IsAdult  *bool  `json:"isAdult" binding:"required"`
	FamilyID string `json:"familyID,omitempty"`
}

// ParticipantResponse defines the structure for API responses containing participant details.
type ParticipantResponse struct {
	ParticipantID string `json:"participantID"`
	TripID        string `json:"tripID"`
	Name          string `json:"name"`
	IsAdult       bool   `json:"isAdult"`
	FamilyID      string `json:"familyID,omitempty"`
}

// ToParticipantResponse converts a domain.Participant to ParticipantResponse DTO
func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ParticipantID: p.ParticipantID,
		TripID:        p.TripID,
		Name:          p.Name,
		IsAdult:       p.IsAdult,
		FamilyID:      p.FamilyID,
	}
}

// ToListParticipantResponse converts a slice of domain.Participant to DTOs.
func ToListParticipantResponse(participants []domain.Participant) []ParticipantResponse {
	responses := make([]ParticipantResponse, len(participants))
	for i := range participants {
		responses[i] = ToParticipantResponse(&participants[i])
	}
	return responses
}

// CreateFamilyRequest defines the structure for adding a family to a trip.
type CreateFamilyRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Adults   int    `json:"adults" binding:"required,min=1"`
	Children int    `json:"children" binding:"min=0"`
}

// FamilyResponse defines the structure for API responses containing family details.
type FamilyResponse struct {
	FamilyID string `json:"familyID"`
	TripID   string `json:"tripID"`
	Name     string `json:"name"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
}

// ToFamilyResponse converts a domain.Family to FamilyResponse DTO
func ToFamilyResponse(f *domain.Family) FamilyResponse {
	return FamilyResponse{
		FamilyID: f.FamilyID,
		TripID:   f.TripID,
		Name:     f.Name,
		Adults:   f.Adults,
		Children: f.Children,
	}
}

// ToListFamilyResponse converts a slice of domain.Family to DTOs.
func ToListFamilyResponse(families []domain.Family) []FamilyResponse {
	responses := make([]FamilyResponse, len(families))
	for i := range families {
		responses[i] = ToFamilyResponse(&families[i])
	}
	return responses
}
