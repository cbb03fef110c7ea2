package models

// Family is the database representation of a trip family.
type Family struct {
	FamilyID string `json:"familyID"`
	TripID   string `json:"tripID"`
	Name     string `json:"name"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	AuditFields
}
