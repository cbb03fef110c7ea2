package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweave/tripsplit/internal/core/domain"
	"github.com/tripweave/tripsplit/internal/core/engine"
)

func balanceOf(entityID string, amount float64) domain.Balance {
	return domain.Balance{EntityID: entityID, Name: entityID, Balance: decimal.NewFromFloat(amount)}
}

func TestCalculateOptimalSettlement_SinglePair(t *testing.T) {
	balances := []domain.Balance{balanceOf("alice", 50), balanceOf("bob", -50)}

	plan := engine.CalculateOptimalSettlement(balances, "EUR")

	require.Equal(t, 1, plan.TotalTransactions)
	txn := plan.Transactions[0]
	assert.Equal(t, "bob", txn.FromID)
	assert.Equal(t, "alice", txn.ToID)
	assertAmount(t, txn.Amount, 50)
	assert.Equal(t, "EUR", plan.CurrencyCode)
}

func TestCalculateOptimalSettlement_ThreeParties(t *testing.T) {
	balances := []domain.Balance{
		balanceOf("alice", 60),
		balanceOf("bob", -40),
		balanceOf("carol", -20),
	}

	plan := engine.CalculateOptimalSettlement(balances, "EUR")

	require.Equal(t, 2, plan.TotalTransactions)
	// Largest debtor first.
	assert.Equal(t, "bob", plan.Transactions[0].FromID)
	assertAmount(t, plan.Transactions[0].Amount, 40)
	assert.Equal(t, "carol", plan.Transactions[1].FromID)
	assertAmount(t, plan.Transactions[1].Amount, 20)

	sum := decimal.Zero
	for _, txn := range plan.Transactions {
		sum = sum.Add(txn.Amount)
	}
	assertAmount(t, sum, 60)
}

func TestCalculateOptimalSettlement_WithinToleranceIsSettled(t *testing.T) {
	balances := []domain.Balance{balanceOf("alice", 0.005), balanceOf("bob", -0.005)}

	plan := engine.CalculateOptimalSettlement(balances, "EUR")

	assert.Zero(t, plan.TotalTransactions)
	assert.Empty(t, plan.Transactions)
}

func TestCalculateOptimalSettlement_EmptyInput(t *testing.T) {
	plan := engine.CalculateOptimalSettlement(nil, "EUR")

	assert.Zero(t, plan.TotalTransactions)
	assert.NotNil(t, plan.Transactions)
}

func TestCalculateOptimalSettlement_ZeroSumProperty(t *testing.T) {
	balances := []domain.Balance{
		balanceOf("alice", 100),
		balanceOf("bob", 25.50),
		balanceOf("carol", -60),
		balanceOf("dave", -40),
		balanceOf("erin", -25.50),
	}

	plan := engine.CalculateOptimalSettlement(balances, "EUR")

	// Applying every suggested payment drives every entity to zero.
	remaining := make(map[string]decimal.Decimal, len(balances))
	for _, b := range balances {
		remaining[b.EntityID] = b.Balance
	}
	for _, txn := range plan.Transactions {
		remaining[txn.FromID] = remaining[txn.FromID].Add(txn.Amount)
		remaining[txn.ToID] = remaining[txn.ToID].Sub(txn.Amount)
	}
	for entityID, rem := range remaining {
		assert.True(t, rem.Abs().LessThanOrEqual(engine.Tolerance),
			"entity %s left with %s after settlement", entityID, rem)
	}
}

func TestCalculateOptimalSettlement_DoesNotMutateInput(t *testing.T) {
	balances := []domain.Balance{balanceOf("alice", 30), balanceOf("bob", -30)}

	_ = engine.CalculateOptimalSettlement(balances, "EUR")

	assertAmount(t, balances[0].Balance, 30)
	assertAmount(t, balances[1].Balance, -30)
}

func TestCalculateOptimalSettlement_AmountsRoundedToCents(t *testing.T) {
	balances := []domain.Balance{
		balanceOf("alice", 33.333333),
		balanceOf("bob", -33.333333),
	}

	plan := engine.CalculateOptimalSettlement(balances, "EUR")

	require.Equal(t, 1, plan.TotalTransactions)
	assert.True(t, plan.Transactions[0].Amount.Equal(decimal.NewFromFloat(33.33)),
		"amount = %s, want 33.33", plan.Transactions[0].Amount)
}
