package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweave/tripsplit/internal/core/domain"
	"github.com/tripweave/tripsplit/internal/core/engine"
)

func findBalance(t *testing.T, balances []domain.Balance, entityID string) domain.Balance {
	t.Helper()
	for _, b := range balances {
		if b.EntityID == entityID {
			return b
		}
	}
	t.Fatalf("no balance entry for %s", entityID)
	return domain.Balance{}
}

func assertAmount(t *testing.T, got decimal.Decimal, want float64) {
	t.Helper()
	assert.True(t, got.Sub(decimal.NewFromFloat(want)).Abs().LessThanOrEqual(engine.Tolerance),
		"amount = %s, want %v", got, want)
}

func TestCalculateBalances_SingleEqualExpense(t *testing.T) {
	participants := []domain.Participant{participant("alice", ""), participant("bob", "")}
	expenses := []domain.Expense{
		{
			ExpenseID:    "exp-1",
			Amount:       decimal.NewFromInt(100),
			CurrencyCode: "EUR",
			PaidBy:       "alice",
			Distribution: domain.Distribution{
				Type:           domain.DistributionIndividuals,
				SplitMode:      domain.SplitEqual,
				ParticipantIDs: []string{"alice", "bob"},
			},
		},
	}

	result := engine.CalculateBalances(expenses, participants, nil, domain.TrackIndividuals, nil, "EUR", nil)

	require.Len(t, result.Balances, 2)
	alice := findBalance(t, result.Balances, "alice")
	bob := findBalance(t, result.Balances, "bob")
	assertAmount(t, alice.TotalPaid, 100)
	assertAmount(t, alice.TotalShare, 50)
	assertAmount(t, alice.Balance, 50)
	assertAmount(t, bob.Balance, -50)

	// Creditors first.
	assert.Equal(t, "alice", result.Balances[0].EntityID)

	require.NotNil(t, result.SuggestedNextPayer)
	assert.Equal(t, "bob", result.SuggestedNextPayer.EntityID)
	assertAmount(t, result.TotalExpenses, 100)
	assert.Empty(t, result.Warnings)
}

func TestCalculateBalances_CurrencyConversionAtTotalLevel(t *testing.T) {
	participants := []domain.Participant{participant("alice", ""), participant("bob", "")}
	rates := map[string]decimal.Decimal{"USD": decimal.NewFromFloat(1.1)}
	expenses := []domain.Expense{
		{
			ExpenseID:    "exp-usd",
			Amount:       decimal.NewFromInt(200),
			CurrencyCode: "USD",
			PaidBy:       "alice",
			Distribution: domain.Distribution{
				Type:           domain.DistributionIndividuals,
				SplitMode:      domain.SplitEqual,
				ParticipantIDs: []string{"alice", "bob"},
			},
		},
	}

	result := engine.CalculateBalances(expenses, participants, nil, domain.TrackIndividuals, nil, "EUR", rates)

	// 200 / 1.1 = 181.82 in base currency.
	assertAmount(t, result.TotalExpenses, 181.82)
	assertAmount(t, findBalance(t, result.Balances, "bob").TotalShare, 90.91)
}

func TestCalculateBalances_AmountSplitsScaleWithConversion(t *testing.T) {
	participants := []domain.Participant{participant("alice", ""), participant("bob", "")}
	rates := map[string]decimal.Decimal{"USD": decimal.NewFromInt(2)}
	expenses := []domain.Expense{
		{
			ExpenseID:    "exp-usd",
			Amount:       decimal.NewFromInt(100),
			CurrencyCode: "USD",
			PaidBy:       "alice",
			Distribution: domain.Distribution{
				Type:      domain.DistributionIndividuals,
				SplitMode: domain.SplitAmount,
				ParticipantSplits: []domain.SplitValue{
					{EntityID: "alice", Value: decimal.NewFromInt(70)},
					{EntityID: "bob", Value: decimal.NewFromInt(30)},
				},
			},
		},
	}

	result := engine.CalculateBalances(expenses, participants, nil, domain.TrackIndividuals, nil, "EUR", rates)

	// All shares of one expense scale by the same conversion factor.
	assertAmount(t, findBalance(t, result.Balances, "alice").TotalShare, 35)
	assertAmount(t, findBalance(t, result.Balances, "bob").TotalShare, 15)
	assertAmount(t, findBalance(t, result.Balances, "alice").Balance, 15)
}

func TestCalculateBalances_SettlementsOffsetBalances(t *testing.T) {
	participants := []domain.Participant{participant("alice", ""), participant("bob", "")}
	expenses := []domain.Expense{
		{
			ExpenseID:    "exp-1",
			Amount:       decimal.NewFromInt(100),
			CurrencyCode: "EUR",
			PaidBy:       "alice",
			Distribution: domain.Distribution{
				Type:           domain.DistributionIndividuals,
				SplitMode:      domain.SplitEqual,
				ParticipantIDs: []string{"alice", "bob"},
			},
		},
	}
	settlements := []domain.Settlement{
		{
			SettlementID:      "set-1",
			FromParticipantID: "bob",
			ToParticipantID:   "alice",
			Amount:            decimal.NewFromInt(50),
			CurrencyCode:      "EUR",
		},
	}

	result := engine.CalculateBalances(expenses, participants, nil, domain.TrackIndividuals, settlements, "EUR", nil)

	assertAmount(t, findBalance(t, result.Balances, "alice").Balance, 0)
	assertAmount(t, findBalance(t, result.Balances, "bob").Balance, 0)
	assert.Nil(t, result.SuggestedNextPayer)
}

func TestCalculateBalances_FamiliesTracking(t *testing.T) {
	participants := []domain.Participant{
		participant("alice", "smiths"),
		participant("bob", "smiths"),
		participant("carol", ""),
	}
	families := []domain.Family{family("smiths", 2, 0)}
	expenses := []domain.Expense{
		{
			ExpenseID:    "exp-1",
			Amount:       decimal.NewFromInt(90),
			CurrencyCode: "EUR",
			PaidBy:       "carol",
			Distribution: domain.Distribution{
				Type:           domain.DistributionIndividuals,
				SplitMode:      domain.SplitEqual,
				ParticipantIDs: []string{"alice", "bob", "carol"},
			},
		},
	}

	result := engine.CalculateBalances(expenses, participants, families, domain.TrackFamilies, nil, "EUR", nil)

	// Two tracked entities: the family and the standalone participant.
	require.Len(t, result.Balances, 2)
	smiths := findBalance(t, result.Balances, "smiths")
	assert.True(t, smiths.IsFamily)
	assertAmount(t, smiths.Balance, -60)
	assertAmount(t, findBalance(t, result.Balances, "carol").Balance, 60)
}

func TestCalculateBalances_UnknownPayerSkipsExpenseWithWarning(t *testing.T) {
	participants := []domain.Participant{participant("alice", ""), participant("bob", "")}
	expenses := []domain.Expense{
		{
			ExpenseID:    "exp-ghost",
			Amount:       decimal.NewFromInt(100),
			CurrencyCode: "EUR",
			PaidBy:       "ghost",
			Distribution: domain.Distribution{
				Type:           domain.DistributionIndividuals,
				SplitMode:      domain.SplitEqual,
				ParticipantIDs: []string{"alice", "bob"},
			},
		},
	}

	result := engine.CalculateBalances(expenses, participants, nil, domain.TrackIndividuals, nil, "EUR", nil)

	assertAmount(t, findBalance(t, result.Balances, "alice").Balance, 0)
	assertAmount(t, findBalance(t, result.Balances, "bob").Balance, 0)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "ghost")
}

func TestCalculateBalances_UnresolvedSettlementSkippedWithWarning(t *testing.T) {
	participants := []domain.Participant{participant("alice", "")}
	settlements := []domain.Settlement{
		{
			SettlementID:      "set-ghost",
			FromParticipantID: "ghost",
			ToParticipantID:   "alice",
			Amount:            decimal.NewFromInt(10),
		},
	}

	result := engine.CalculateBalances(nil, participants, nil, domain.TrackIndividuals, settlements, "EUR", nil)

	assertAmount(t, findBalance(t, result.Balances, "alice").Balance, 0)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "set-ghost")
}

func TestCalculateBalances_EmptyInputs(t *testing.T) {
	result := engine.CalculateBalances(nil, nil, nil, domain.TrackIndividuals, nil, "EUR", nil)

	assert.Empty(t, result.Balances)
	assert.True(t, result.TotalExpenses.IsZero())
	assert.Nil(t, result.SuggestedNextPayer)
}

func TestCalculateBalances_Idempotent(t *testing.T) {
	participants := []domain.Participant{
		participant("alice", "smiths"),
		participant("bob", ""),
		participant("carol", ""),
	}
	families := []domain.Family{family("smiths", 1, 2)}
	rates := map[string]decimal.Decimal{"USD": decimal.NewFromFloat(1.1)}
	expenses := []domain.Expense{
		{
			ExpenseID:    "exp-1",
			Amount:       decimal.NewFromInt(120),
			CurrencyCode: "USD",
			PaidBy:       "bob",
			Distribution: domain.Distribution{
				Type:           domain.DistributionIndividuals,
				SplitMode:      domain.SplitEqual,
				ParticipantIDs: []string{"alice", "bob", "carol"},
			},
		},
	}
	settlements := []domain.Settlement{
		{
			SettlementID:      "set-1",
			FromParticipantID: "carol",
			ToParticipantID:   "bob",
			Amount:            decimal.NewFromInt(10),
		},
	}

	first := engine.CalculateBalances(expenses, participants, families, domain.TrackFamilies, settlements, "EUR", rates)
	second := engine.CalculateBalances(expenses, participants, families, domain.TrackFamilies, settlements, "EUR", rates)

	assert.Equal(t, first, second)
}
