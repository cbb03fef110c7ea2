package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweave/tripsplit/internal/core/domain"
	"github.com/tripweave/tripsplit/internal/core/engine"
)

func participant(id, familyID string) domain.Participant {
	return domain.Participant{ParticipantID: id, Name: id, IsAdult: true, FamilyID: familyID}
}

func family(id string, adults, children int) domain.Family {
	return domain.Family{FamilyID: id, Name: id, Adults: adults, Children: children}
}

func expenseWith(amount float64, d domain.Distribution) domain.Expense {
	return domain.Expense{
		ExpenseID:    "exp-1",
		Amount:       decimal.NewFromFloat(amount),
		CurrencyCode: "EUR",
		PaidBy:       "alice",
		Distribution: d,
	}
}

func assertShare(t *testing.T, shares map[string]decimal.Decimal, entityID string, want float64) {
	t.Helper()
	got, ok := shares[entityID]
	require.True(t, ok, "missing share for %s", entityID)
	assert.True(t, got.Sub(decimal.NewFromFloat(want)).Abs().LessThanOrEqual(engine.Tolerance),
		"share[%s] = %s, want %v", entityID, got, want)
}

func assertConservation(t *testing.T, shares map[string]decimal.Decimal, total float64) {
	t.Helper()
	sum := decimal.Zero
	for _, share := range shares {
		sum = sum.Add(share)
	}
	assert.True(t, sum.Sub(decimal.NewFromFloat(total)).Abs().LessThanOrEqual(engine.Tolerance),
		"shares sum to %s, want %v", sum, total)
}

func TestAllocateShares_IndividualsEqual(t *testing.T) {
	participants := []domain.Participant{participant("alice", ""), participant("bob", "")}
	exp := expenseWith(100, domain.Distribution{
		Type:           domain.DistributionIndividuals,
		SplitMode:      domain.SplitEqual,
		ParticipantIDs: []string{"alice", "bob"},
	})

	shares := engine.AllocateShares(exp, participants, nil, domain.TrackIndividuals)

	require.Len(t, shares, 2)
	assertShare(t, shares, "alice", 50)
	assertShare(t, shares, "bob", 50)
	assertConservation(t, shares, 100)
}

func TestAllocateShares_IndividualsEqual_FamilyTrackingRemapsAndSums(t *testing.T) {
	participants := []domain.Participant{
		participant("alice", "smiths"),
		participant("bob", "smiths"),
		participant("carol", ""),
	}
	families := []domain.Family{family("smiths", 2, 0)}
	exp := expenseWith(90, domain.Distribution{
		Type:           domain.DistributionIndividuals,
		SplitMode:      domain.SplitEqual,
		ParticipantIDs: []string{"alice", "bob", "carol"},
	})

	shares := engine.AllocateShares(exp, participants, families, domain.TrackFamilies)

	// Alice and Bob's shares land on their family entity and sum up.
	require.Len(t, shares, 2)
	assertShare(t, shares, "smiths", 60)
	assertShare(t, shares, "carol", 30)
	assertConservation(t, shares, 90)
}

func TestAllocateShares_IndividualsPercentage(t *testing.T) {
	participants := []domain.Participant{participant("alice", ""), participant("bob", "")}
	exp := expenseWith(200, domain.Distribution{
		Type:      domain.DistributionIndividuals,
		SplitMode: domain.SplitPercentage,
		ParticipantSplits: []domain.SplitValue{
			{EntityID: "alice", Value: decimal.NewFromInt(60)},
			{EntityID: "bob", Value: decimal.NewFromInt(40)},
		},
	})

	shares := engine.AllocateShares(exp, participants, nil, domain.TrackIndividuals)

	assertShare(t, shares, "alice", 120)
	assertShare(t, shares, "bob", 80)
}

func TestAllocateShares_IndividualsAmountVerbatim(t *testing.T) {
	participants := []domain.Participant{participant("alice", ""), participant("bob", "")}
	exp := expenseWith(100, domain.Distribution{
		Type:      domain.DistributionIndividuals,
		SplitMode: domain.SplitAmount,
		ParticipantSplits: []domain.SplitValue{
			{EntityID: "alice", Value: decimal.NewFromFloat(72.50)},
			{EntityID: "bob", Value: decimal.NewFromFloat(27.50)},
		},
	})

	shares := engine.AllocateShares(exp, participants, nil, domain.TrackIndividuals)

	assertShare(t, shares, "alice", 72.50)
	assertShare(t, shares, "bob", 27.50)
}

func TestAllocateShares_FamiliesEqualUnitWeight(t *testing.T) {
	families := []domain.Family{family("smiths", 2, 1), family("joneses", 1, 0)}
	exp := expenseWith(100, domain.Distribution{
		Type:      domain.DistributionFamilies,
		SplitMode: domain.SplitEqual,
		FamilyIDs: []string{"smiths", "joneses"},
	})

	shares := engine.AllocateShares(exp, nil, families, domain.TrackFamilies)

	// Size is ignored without accountForFamilySize.
	assertShare(t, shares, "smiths", 50)
	assertShare(t, shares, "joneses", 50)
}

func TestAllocateShares_FamiliesEqualAccountForFamilySize(t *testing.T) {
	families := []domain.Family{family("smiths", 2, 1), family("solo", 1, 0)}
	exp := expenseWith(400, domain.Distribution{
		Type:                 domain.DistributionFamilies,
		SplitMode:            domain.SplitEqual,
		FamilyIDs:            []string{"smiths", "solo"},
		AccountForFamilySize: true,
	})

	shares := engine.AllocateShares(exp, nil, families, domain.TrackFamilies)

	assertShare(t, shares, "smiths", 300)
	assertShare(t, shares, "solo", 100)
	assertConservation(t, shares, 400)
}

func TestAllocateShares_FamiliesPercentage(t *testing.T) {
	families := []domain.Family{family("smiths", 2, 0), family("joneses", 2, 2)}
	exp := expenseWith(80, domain.Distribution{
		Type:      domain.DistributionFamilies,
		SplitMode: domain.SplitPercentage,
		FamilySplits: []domain.SplitValue{
			{EntityID: "smiths", Value: decimal.NewFromInt(25)},
			{EntityID: "joneses", Value: decimal.NewFromInt(75)},
		},
	})

	shares := engine.AllocateShares(exp, nil, families, domain.TrackFamilies)

	assertShare(t, shares, "smiths", 20)
	assertShare(t, shares, "joneses", 60)
}

func TestAllocateShares_MixedEqual_SharedPool(t *testing.T) {
	participants := []domain.Participant{
		participant("alice", "smiths"),
		participant("bob", "smiths"),
		participant("carol", ""),
	}
	families := []domain.Family{family("smiths", 2, 0)}
	exp := expenseWith(90, domain.Distribution{
		Type:                 domain.DistributionMixed,
		SplitMode:            domain.SplitEqual,
		ParticipantIDs:       []string{"carol"},
		FamilyIDs:            []string{"smiths"},
		AccountForFamilySize: true,
	})

	shares := engine.AllocateShares(exp, participants, families, domain.TrackFamilies)

	// Per-person rate spans Carol plus both family members: 90 / 3 = 30.
	assertShare(t, shares, "carol", 30)
	assertShare(t, shares, "smiths", 60)
	assertConservation(t, shares, 90)
}

func TestAllocateShares_MixedEqual_FamilyAsSingleUnit(t *testing.T) {
	participants := []domain.Participant{participant("carol", "")}
	families := []domain.Family{family("smiths", 2, 2)}
	exp := expenseWith(100, domain.Distribution{
		Type:           domain.DistributionMixed,
		SplitMode:      domain.SplitEqual,
		ParticipantIDs: []string{"carol"},
		FamilyIDs:      []string{"smiths"},
	})

	shares := engine.AllocateShares(exp, participants, families, domain.TrackIndividuals)

	// Without accountForFamilySize the family weighs the same as one person.
	assertShare(t, shares, "carol", 50)
	assertShare(t, shares, "smiths", 50)
}

func TestAllocateShares_MixedDedup_FamilyMemberGetsNoStandaloneShare(t *testing.T) {
	participants := []domain.Participant{
		participant("alice", "smiths"),
		participant("bob", "smiths"),
		participant("carol", ""),
	}
	families := []domain.Family{family("smiths", 2, 0)}
	// Alice is listed individually even though her family is also listed.
	exp := expenseWith(90, domain.Distribution{
		Type:                 domain.DistributionMixed,
		SplitMode:            domain.SplitEqual,
		ParticipantIDs:       []string{"alice", "carol"},
		FamilyIDs:            []string{"smiths"},
		AccountForFamilySize: true,
	})

	shares := engine.AllocateShares(exp, participants, families, domain.TrackFamilies)

	_, aliceListed := shares["alice"]
	assert.False(t, aliceListed, "family member must not receive a standalone share")
	assertShare(t, shares, "carol", 30)
	assertShare(t, shares, "smiths", 60)
	assertConservation(t, shares, 90)
}

func TestAllocateShares_MixedAmount_DedupOnExplicitSplits(t *testing.T) {
	participants := []domain.Participant{
		participant("alice", "smiths"),
		participant("carol", ""),
	}
	families := []domain.Family{family("smiths", 2, 0)}
	exp := expenseWith(100, domain.Distribution{
		Type:      domain.DistributionMixed,
		SplitMode: domain.SplitAmount,
		ParticipantSplits: []domain.SplitValue{
			{EntityID: "alice", Value: decimal.NewFromInt(40)}, // covered by her family
			{EntityID: "carol", Value: decimal.NewFromInt(30)},
		},
		FamilyIDs:    []string{"smiths"},
		FamilySplits: []domain.SplitValue{{EntityID: "smiths", Value: decimal.NewFromInt(70)}},
	})

	shares := engine.AllocateShares(exp, participants, families, domain.TrackFamilies)

	require.Len(t, shares, 2)
	assertShare(t, shares, "carol", 30)
	assertShare(t, shares, "smiths", 70)
}

func TestAllocateShares_UnknownIDsSilentlySkipped(t *testing.T) {
	participants := []domain.Participant{participant("alice", "")}
	exp := expenseWith(100, domain.Distribution{
		Type:           domain.DistributionIndividuals,
		SplitMode:      domain.SplitEqual,
		ParticipantIDs: []string{"alice", "ghost"},
	})

	shares := engine.AllocateShares(exp, participants, nil, domain.TrackIndividuals)

	require.Len(t, shares, 1)
	// Divisor stays the listed count; the unknown id simply gets no entry.
	assertShare(t, shares, "alice", 50)
}

func TestAllocateShares_EmptyDistribution(t *testing.T) {
	exp := expenseWith(100, domain.Distribution{
		Type:      domain.DistributionIndividuals,
		SplitMode: domain.SplitEqual,
	})

	shares := engine.AllocateShares(exp, nil, nil, domain.TrackIndividuals)

	assert.Empty(t, shares)
}
