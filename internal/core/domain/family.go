package domain

// Family is a household travelling together. Under families tracking the
// family is the balance-holding entity for all of its members.
type Family struct {
	FamilyID string `json:"familyID"` // Primary Key (e.g., UUID)
	TripID   string `json:"tripID"`   // FK -> Trip.tripID (Not Null)
	Name     string `json:"name"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	AuditFields
}

// Size returns the family head-count used for size-weighted shares.
func (f Family) Size() int {
	return f.Adults + f.Children
}
