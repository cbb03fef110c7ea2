package engine

import (
	"github.com/shopspring/decimal"

	"github.com/tripweave/tripsplit/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// AllocateShares returns each entity's owed share of one expense, keyed by the
// id that holds the balance under the given tracking mode: participant ids
// under individuals tracking, family ids (or the participant's own id when
// unaffiliated) under families tracking.
//
// Unknown participant or family ids are silently skipped; no entry is added
// for them. For percentage and amount split modes the values are trusted as-is
// (the caller guarantees they sum correctly). For equal mode the returned
// shares sum to the expense amount within Tolerance as long as every listed id
// resolves.
func AllocateShares(expense domain.Expense, participants []domain.Participant, families []domain.Family, mode domain.TrackingMode) map[string]decimal.Decimal {
	participantsByID := make(map[string]domain.Participant, len(participants))
	for _, p := range participants {
		participantsByID[p.ParticipantID] = p
	}
	familiesByID := make(map[string]domain.Family, len(families))
	for _, f := range families {
		familiesByID[f.FamilyID] = f
	}

	shares := make(map[string]decimal.Decimal)
	d := expense.Distribution

	switch d.Type {
	case domain.DistributionIndividuals:
		allocateIndividuals(shares, expense, d, participantsByID, mode)
	case domain.DistributionFamilies:
		allocateFamilies(shares, expense, d, familiesByID)
	case domain.DistributionMixed:
		allocateMixed(shares, expense, d, participantsByID, familiesByID, mode)
	}
	return shares
}

// entityKey resolves the balance-holding entity id for a participant share.
func entityKey(p domain.Participant, mode domain.TrackingMode) string {
	if mode == domain.TrackFamilies && p.HasFamily() {
		return p.FamilyID
	}
	return p.ParticipantID
}

func addShare(shares map[string]decimal.Decimal, entityID string, amount decimal.Decimal) {
	shares[entityID] = shares[entityID].Add(amount)
}

func allocateIndividuals(shares map[string]decimal.Decimal, expense domain.Expense, d domain.Distribution, participantsByID map[string]domain.Participant, mode domain.TrackingMode) {
	switch d.SplitMode {
	case domain.SplitEqual:
		if len(d.ParticipantIDs) == 0 {
			return
		}
		perHead := expense.Amount.Div(decimal.NewFromInt(int64(len(d.ParticipantIDs))))
		for _, id := range d.ParticipantIDs {
			p, ok := participantsByID[id]
			if !ok {
				continue
			}
			addShare(shares, entityKey(p, mode), perHead)
		}
	case domain.SplitPercentage:
		for _, split := range d.ParticipantSplits {
			p, ok := participantsByID[split.EntityID]
			if !ok {
				continue
			}
			addShare(shares, entityKey(p, mode), expense.Amount.Mul(split.Value).Div(hundred))
		}
	case domain.SplitAmount:
		for _, split := range d.ParticipantSplits {
			p, ok := participantsByID[split.EntityID]
			if !ok {
				continue
			}
			addShare(shares, entityKey(p, mode), split.Value)
		}
	}
}

func allocateFamilies(shares map[string]decimal.Decimal, expense domain.Expense, d domain.Distribution, familiesByID map[string]domain.Family) {
	switch d.SplitMode {
	case domain.SplitEqual:
		if len(d.FamilyIDs) == 0 {
			return
		}
		if d.AccountForFamilySize {
			// Per-person rate over every member of the listed families; each
			// family's share is proportional to its head-count.
			totalHeads := 0
			for _, id := range d.FamilyIDs {
				if f, ok := familiesByID[id]; ok {
					totalHeads += f.Size()
				}
			}
			if totalHeads == 0 {
				return
			}
			perHead := expense.Amount.Div(decimal.NewFromInt(int64(totalHeads)))
			for _, id := range d.FamilyIDs {
				f, ok := familiesByID[id]
				if !ok {
					continue
				}
				addShare(shares, f.FamilyID, perHead.Mul(decimal.NewFromInt(int64(f.Size()))))
			}
			return
		}
		// Families as equal-weight units regardless of size.
		perFamily := expense.Amount.Div(decimal.NewFromInt(int64(len(d.FamilyIDs))))
		for _, id := range d.FamilyIDs {
			if _, ok := familiesByID[id]; !ok {
				continue
			}
			addShare(shares, id, perFamily)
		}
	case domain.SplitPercentage:
		for _, split := range d.FamilySplits {
			if _, ok := familiesByID[split.EntityID]; !ok {
				continue
			}
			addShare(shares, split.EntityID, expense.Amount.Mul(split.Value).Div(hundred))
		}
	case domain.SplitAmount:
		for _, split := range d.FamilySplits {
			if _, ok := familiesByID[split.EntityID]; !ok {
				continue
			}
			addShare(shares, split.EntityID, split.Value)
		}
	}
}

func allocateMixed(shares map[string]decimal.Decimal, expense domain.Expense, d domain.Distribution, participantsByID map[string]domain.Participant, familiesByID map[string]domain.Family, mode domain.TrackingMode) {
	listedFamilies := make(map[string]struct{}, len(d.FamilyIDs))
	for _, id := range d.FamilyIDs {
		listedFamilies[id] = struct{}{}
	}

	// A member of a listed family never receives a standalone share on top of
	// their family's, even if the distribution lists them individually.
	standalone := func(id string) (domain.Participant, bool) {
		p, ok := participantsByID[id]
		if !ok {
			return domain.Participant{}, false
		}
		if p.HasFamily() {
			if _, listed := listedFamilies[p.FamilyID]; listed {
				return domain.Participant{}, false
			}
		}
		return p, true
	}

	familyWeight := func(f domain.Family) int64 {
		if d.AccountForFamilySize {
			return int64(f.Size())
		}
		return 1
	}

	switch d.SplitMode {
	case domain.SplitEqual:
		// Standalone participants and listed families share one pool: the
		// per-unit rate spans both.
		var units int64
		var standaloneIDs []string
		for _, id := range d.ParticipantIDs {
			if _, ok := standalone(id); ok {
				standaloneIDs = append(standaloneIDs, id)
				units++
			}
		}
		for _, id := range d.FamilyIDs {
			if f, ok := familiesByID[id]; ok {
				units += familyWeight(f)
			}
		}
		if units == 0 {
			return
		}
		perUnit := expense.Amount.Div(decimal.NewFromInt(units))
		for _, id := range standaloneIDs {
			p, _ := standalone(id)
			addShare(shares, entityKey(p, mode), perUnit)
		}
		for _, id := range d.FamilyIDs {
			f, ok := familiesByID[id]
			if !ok {
				continue
			}
			addShare(shares, f.FamilyID, perUnit.Mul(decimal.NewFromInt(familyWeight(f))))
		}
	case domain.SplitPercentage:
		for _, split := range d.ParticipantSplits {
			p, ok := standalone(split.EntityID)
			if !ok {
				continue
			}
			addShare(shares, entityKey(p, mode), expense.Amount.Mul(split.Value).Div(hundred))
		}
		for _, split := range d.FamilySplits {
			if _, ok := familiesByID[split.EntityID]; !ok {
				continue
			}
			addShare(shares, split.EntityID, expense.Amount.Mul(split.Value).Div(hundred))
		}
	case domain.SplitAmount:
		for _, split := range d.ParticipantSplits {
			p, ok := standalone(split.EntityID)
			if !ok {
				continue
			}
			addShare(shares, entityKey(p, mode), split.Value)
		}
		for _, split := range d.FamilySplits {
			if _, ok := familiesByID[split.EntityID]; !ok {
				continue
			}
			addShare(shares, split.EntityID, split.Value)
		}
	}
}
