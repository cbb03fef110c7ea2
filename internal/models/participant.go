package models

// Participant is the database representation of a trip participant.
// FamilyID is nullable: participants without a family stand alone.
type Participant struct {
	ParticipantID string  `json:"participantID"`
	TripID        string  `json:"tripID"`
	Name          string  `json:"name"`
	IsAdult       bool    `json:"isAdult"`
	FamilyID      *string `json:"familyID"` // Nullable FK -> families
	AuditFields
}
