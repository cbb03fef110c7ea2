package domain

import "github.com/shopspring/decimal"

// Balance is the computed standing of one tracked entity (participant or
// family). Positive = the entity is owed money, negative = it owes money.
type Balance struct {
	EntityID   string          `json:"entityID"`
	Name       string          `json:"name"`
	TotalPaid  decimal.Decimal `json:"totalPaid"`
	TotalShare decimal.Decimal `json:"totalShare"`
	Balance    decimal.Decimal `json:"balance"` // totalPaid - totalShare
	IsFamily   bool            `json:"isFamily"`
}

// BalanceCalculation is the output of the balance aggregator.
type BalanceCalculation struct {
	Balances      []Balance       `json:"balances"`      // Sorted descending, creditors first
	TotalExpenses decimal.Decimal `json:"totalExpenses"` // Sum of expenses in base currency
	// SuggestedNextPayer is the entity with the most negative balance, nil
	// when nobody owes anything.
	SuggestedNextPayer *Balance `json:"suggestedNextPayer"`
	// Warnings lists entity references that were silently dropped during
	// aggregation (unknown participants, families, payers).
	Warnings []string `json:"warnings,omitempty"`
}

// SettlementTransaction is one suggested payment of a settlement plan.
type SettlementTransaction struct {
	FromID       string          `json:"fromID"`
	FromName     string          `json:"fromName"`
	FromIsFamily bool            `json:"fromIsFamily"`
	ToID         string          `json:"toID"`
	ToName       string          `json:"toName"`
	ToIsFamily   bool            `json:"toIsFamily"`
	Amount       decimal.Decimal `json:"amount"`
}

// OptimalSettlementPlan is the output of the settlement optimizer: the fewest
// payments the greedy matcher found to zero out all balances.
type OptimalSettlementPlan struct {
	Transactions      []SettlementTransaction `json:"transactions"`
	TotalTransactions int                     `json:"totalTransactions"`
	CurrencyCode      string                  `json:"currencyCode"`
}
