package engine

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tripweave/tripsplit/internal/core/domain"
)

// CalculateBalances folds all expenses and settlements of a trip into one net
// balance per tracked entity.
//
// Every tracked entity is seeded with a zero balance first: all families plus
// unaffiliated participants under families tracking, every participant under
// individuals tracking. Expense amounts are converted to the base currency
// once, at the total level; the shares of one expense are scaled by the same
// factor so they always stay proportional to each other. Settlements are
// applied at face value in recorded order.
//
// Unresolvable references never fail the calculation: the affected expense or
// settlement is dropped and reported in Warnings.
func CalculateBalances(expenses []domain.Expense, participants []domain.Participant, families []domain.Family, mode domain.TrackingMode, settlements []domain.Settlement, baseCurrency string, rates map[string]decimal.Decimal) domain.BalanceCalculation {
	entries, index := seedBalances(participants, families, mode)

	participantsByID := make(map[string]domain.Participant, len(participants))
	for _, p := range participants {
		participantsByID[p.ParticipantID] = p
	}

	// Resolve a participant reference to the index of its tracked entity.
	resolve := func(participantID string) (int, bool) {
		p, ok := participantsByID[participantID]
		if !ok {
			return 0, false
		}
		idx, ok := index[entityKey(p, mode)]
		return idx, ok
	}

	var warnings []string
	totalExpenses := decimal.Zero

	for _, expense := range expenses {
		converted := Convert(expense.Amount, expense.CurrencyCode, baseCurrency, rates)
		totalExpenses = totalExpenses.Add(converted)

		payerIdx, ok := resolve(expense.PaidBy)
		if !ok {
			// Crediting nobody while still booking shares would break the
			// zero-sum of the trip, so the whole expense is dropped.
			warnings = append(warnings, fmt.Sprintf("expense %s: payer %s is not a tracked entity, expense skipped", expense.ExpenseID, expense.PaidBy))
			continue
		}
		entries[payerIdx].TotalPaid = entries[payerIdx].TotalPaid.Add(converted)

		shares := AllocateShares(expense, participants, families, mode)

		// Shares come back in the expense currency; scale them all by the one
		// conversion factor of this expense.
		factor := decimal.NewFromInt(1)
		if !converted.Equal(expense.Amount) && expense.Amount.IsPositive() {
			factor = converted.Div(expense.Amount)
		}

		entityIDs := make([]string, 0, len(shares))
		for entityID := range shares {
			entityIDs = append(entityIDs, entityID)
		}
		sort.Strings(entityIDs)
		for _, entityID := range entityIDs {
			idx, ok := index[entityID]
			if !ok {
				warnings = append(warnings, fmt.Sprintf("expense %s: share for unknown entity %s dropped", expense.ExpenseID, entityID))
				continue
			}
			entries[idx].TotalShare = entries[idx].TotalShare.Add(shares[entityID].Mul(factor))
		}
	}

	for i := range entries {
		entries[i].Balance = entries[i].TotalPaid.Sub(entries[i].TotalShare)
	}

	// Settlements are assumed to be recorded in the base currency and are
	// applied at face value, in recorded order.
	for _, settlement := range settlements {
		fromIdx, fromOK := resolve(settlement.FromParticipantID)
		toIdx, toOK := resolve(settlement.ToParticipantID)
		if !fromOK || !toOK {
			warnings = append(warnings, fmt.Sprintf("settlement %s: unresolved party, settlement skipped", settlement.SettlementID))
			continue
		}
		entries[fromIdx].Balance = entries[fromIdx].Balance.Add(settlement.Amount)
		entries[toIdx].Balance = entries[toIdx].Balance.Sub(settlement.Amount)
	}

	var suggested *domain.Balance
	for i := range entries {
		if !entries[i].Balance.IsNegative() {
			continue
		}
		if suggested == nil || entries[i].Balance.LessThan(suggested.Balance) {
			candidate := entries[i]
			suggested = &candidate
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Balance.GreaterThan(entries[j].Balance)
	})

	return domain.BalanceCalculation{
		Balances:           entries,
		TotalExpenses:      totalExpenses,
		SuggestedNextPayer: suggested,
		Warnings:           warnings,
	}
}

// seedBalances creates a zero balance for every tracked entity, in a stable
// order: families first (as given), then standalone participants.
func seedBalances(participants []domain.Participant, families []domain.Family, mode domain.TrackingMode) ([]domain.Balance, map[string]int) {
	var entries []domain.Balance
	index := make(map[string]int)

	add := func(entityID, name string, isFamily bool) {
		if _, exists := index[entityID]; exists {
			return
		}
		index[entityID] = len(entries)
		entries = append(entries, domain.Balance{
			EntityID:   entityID,
			Name:       name,
			TotalPaid:  decimal.Zero,
			TotalShare: decimal.Zero,
			Balance:    decimal.Zero,
			IsFamily:   isFamily,
		})
	}

	if mode == domain.TrackFamilies {
		for _, f := range families {
			add(f.FamilyID, f.Name, true)
		}
		for _, p := range participants {
			if !p.HasFamily() {
				add(p.ParticipantID, p.Name, false)
			}
		}
		return entries, index
	}

	for _, p := range participants {
		add(p.ParticipantID, p.Name, false)
	}
	return entries, index
}
