package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SplitMode determines how a distribution divides an expense total.
type SplitMode string

const (
	SplitEqual      SplitMode = "equal"
	SplitPercentage SplitMode = "percentage"
	SplitAmount     SplitMode = "amount"
)

// DistributionType discriminates the Distribution tagged union.
type DistributionType string

const (
	DistributionIndividuals DistributionType = "individuals"
	DistributionFamilies    DistributionType = "families"
	DistributionMixed       DistributionType = "mixed"
)

// SplitValue is one (entity id, value) pair of an explicit percentage or
// custom-amount split.
type SplitValue struct {
	EntityID string          `json:"entityID"`
	Value    decimal.Decimal `json:"value"`
}

// Distribution describes which entities share an expense and how. It is a
// tagged union on Type: individuals distributions use ParticipantIDs, families
// distributions use FamilyIDs, mixed distributions use both. When SplitMode is
// not equal, ParticipantSplits/FamilySplits carry the explicit values.
//
// Invariant: percentages sum to 100 and custom amounts sum to the expense
// amount. This is enforced by the caller (see ExpenseService), never by the
// share allocator.
type Distribution struct {
	Type                 DistributionType `json:"type"`
	SplitMode            SplitMode        `json:"splitMode"`
	ParticipantIDs       []string         `json:"participantIDs,omitempty"`
	FamilyIDs            []string         `json:"familyIDs,omitempty"`
	AccountForFamilySize bool             `json:"accountForFamilySize,omitempty"`
	ParticipantSplits    []SplitValue     `json:"participantSplits,omitempty"`
	FamilySplits         []SplitValue     `json:"familySplits,omitempty"`
}

// Normalize removes participants from a mixed distribution whose family is
// already listed, so a family member never receives a standalone share on top
// of their family's. The allocator repeats this check defensively.
func (d Distribution) Normalize(participants []Participant) Distribution {
	if d.Type != DistributionMixed {
		return d
	}

	listedFamilies := make(map[string]struct{}, len(d.FamilyIDs))
	for _, id := range d.FamilyIDs {
		listedFamilies[id] = struct{}{}
	}
	familyByParticipant := make(map[string]string, len(participants))
	for _, p := range participants {
		familyByParticipant[p.ParticipantID] = p.FamilyID
	}

	covered := func(participantID string) bool {
		familyID := familyByParticipant[participantID]
		if familyID == "" {
			return false
		}
		_, ok := listedFamilies[familyID]
		return ok
	}

	out := d
	out.ParticipantIDs = nil
	for _, id := range d.ParticipantIDs {
		if !covered(id) {
			out.ParticipantIDs = append(out.ParticipantIDs, id)
		}
	}
	out.ParticipantSplits = nil
	for _, split := range d.ParticipantSplits {
		if !covered(split.EntityID) {
			out.ParticipantSplits = append(out.ParticipantSplits, split)
		}
	}
	return out
}

// Expense is a single shared cost paid by one participant and divided among
// entities according to its Distribution.
type Expense struct {
	ExpenseID    string          `json:"expenseID"`    // Primary Key (e.g., UUID)
	TripID       string          `json:"tripID"`       // FK -> Trip.tripID (Not Null)
	Amount       decimal.Decimal `json:"amount"`       // Positive value
	CurrencyCode string          `json:"currencyCode"` // Currency the expense was paid in
	PaidBy       string          `json:"paidBy"`       // FK -> Participant.participantID
	Category     string          `json:"category"`
	ExpenseDate  time.Time       `json:"expenseDate"`
	Distribution Distribution    `json:"distribution"`
	AuditFields
}
