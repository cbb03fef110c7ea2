package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tripweave/tripsplit/internal/core/domain"
)

// CalculateOptimalSettlement reduces a set of net balances to a short list of
// payments that zeroes every entity out, using greedy largest-debtor against
// largest-creditor matching. Entities already within Tolerance of zero are
// ignored.
//
// The matching order is part of the contract: debtors ascending (most negative
// first), creditors descending, re-sorted after every transaction. The greedy
// heuristic is not guaranteed to hit the theoretical minimum transaction count
// in every topology, but its output is deterministic. The currency label is
// cosmetic; no conversion happens here.
func CalculateOptimalSettlement(balances []domain.Balance, currencyCode string) domain.OptimalSettlementPlan {
	var debtors, creditors []domain.Balance
	for _, b := range balances {
		switch {
		case b.Balance.LessThan(Tolerance.Neg()):
			debtors = append(debtors, b)
		case b.Balance.GreaterThan(Tolerance):
			creditors = append(creditors, b)
		}
	}

	transactions := make([]domain.SettlementTransaction, 0)

	for len(debtors) > 0 && len(creditors) > 0 {
		sort.SliceStable(debtors, func(i, j int) bool {
			return debtors[i].Balance.LessThan(debtors[j].Balance)
		})
		sort.SliceStable(creditors, func(i, j int) bool {
			return creditors[i].Balance.GreaterThan(creditors[j].Balance)
		})

		debtor := &debtors[0]
		creditor := &creditors[0]

		amount := decimal.Min(debtor.Balance.Neg(), creditor.Balance).Round(2)
		transactions = append(transactions, domain.SettlementTransaction{
			FromID:       debtor.EntityID,
			FromName:     debtor.Name,
			FromIsFamily: debtor.IsFamily,
			ToID:         creditor.EntityID,
			ToName:       creditor.Name,
			ToIsFamily:   creditor.IsFamily,
			Amount:       amount,
		})

		debtor.Balance = debtor.Balance.Add(amount)
		creditor.Balance = creditor.Balance.Sub(amount)

		// Each transaction fully settles at least one side, so the loop
		// always terminates.
		if debtor.Balance.Abs().LessThanOrEqual(Tolerance) {
			debtors = debtors[1:]
		}
		if creditor.Balance.Abs().LessThanOrEqual(Tolerance) {
			creditors = creditors[1:]
		}
	}

	return domain.OptimalSettlementPlan{
		Transactions:      transactions,
		TotalTransactions: len(transactions),
		CurrencyCode:      currencyCode,
	}
}
