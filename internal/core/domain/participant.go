package domain

// Participant is a person taking part in a trip. A participant may belong to a
// family; under families tracking their balance collapses into that family's.
type Participant struct {
	ParticipantID string `json:"participantID"` // Primary Key (e.g., UUID)
	TripID        string `json:"tripID"`        // FK -> Trip.tripID (Not Null)
	Name          string `json:"name"`
	IsAdult       bool   `json:"isAdult"`
	FamilyID      string `json:"familyID"` // FK -> Family.familyID; empty = unaffiliated
	AuditFields
}

// HasFamily reports whether the participant belongs to a family.
func (p Participant) HasFamily() bool {
	return p.FamilyID != ""
}
