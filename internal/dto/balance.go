package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tripweave/tripsplit/internal/core/domain"
	"github.com/tripweave/tripsplit/internal/utils"
)

// BalanceResponse is one entity's standing in a balance report. Amounts are in
// the trip's base currency; positive balance = the entity is owed money.
type BalanceResponse struct {
	EntityID         string          `json:"entityID"`
	Name             string          `json:"name"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	TotalShare       decimal.Decimal `json:"totalShare"`
	Balance          decimal.Decimal `json:"balance"`
	FormattedBalance string          `json:"formattedBalance"`
	Status           string          `json:"status"` // owed | owes | settled
	IsFamily         bool            `json:"isFamily"`
}

// BalanceCalculationResponse is the full balance report of a trip.
type BalanceCalculationResponse struct {
	Balances           []BalanceResponse `json:"balances"`
	TotalExpenses      decimal.Decimal   `json:"totalExpenses"`
	CurrencyCode       string            `json:"currencyCode"`
	SuggestedNextPayer *BalanceResponse  `json:"suggestedNextPayer"`
	Warnings           []string          `json:"warnings,omitempty"`
}

// ToBalanceResponse converts a domain.Balance to BalanceResponse DTO
func ToBalanceResponse(b *domain.Balance, currencyCode string) BalanceResponse {
	return BalanceResponse{
		EntityID:         b.EntityID,
		Name:             b.Name,
		TotalPaid:        b.TotalPaid,
		TotalShare:       b.TotalShare,
		Balance:          b.Balance,
		FormattedBalance: utils.FormatSignedAmount(b.Balance, currencyCode),
		Status:           string(utils.ClassifyBalance(b.Balance)),
		IsFamily:         b.IsFamily,
	}
}

// ToBalanceCalculationResponse converts a domain.BalanceCalculation to its DTO.
func ToBalanceCalculationResponse(calc *domain.BalanceCalculation, currencyCode string) BalanceCalculationResponse {
	response := BalanceCalculationResponse{
		Balances:      make([]BalanceResponse, len(calc.Balances)),
		TotalExpenses: calc.TotalExpenses,
		CurrencyCode:  currencyCode,
		Warnings:      calc.Warnings,
	}
	for i := range calc.Balances {
		response.Balances[i] = ToBalanceResponse(&calc.Balances[i], currencyCode)
	}
	if calc.SuggestedNextPayer != nil {
		suggested := ToBalanceResponse(calc.SuggestedNextPayer, currencyCode)
		response.SuggestedNextPayer = &suggested
	}
	return response
}

// SettlementTransactionResponse is one suggested payment of a settlement plan.
type SettlementTransactionResponse struct {
	FromID       string          `json:"fromID"`
	FromName     string          `json:"fromName"`
	FromIsFamily bool            `json:"fromIsFamily"`
	ToID         string          `json:"toID"`
	ToName       string          `json:"toName"`
	ToIsFamily   bool            `json:"toIsFamily"`
	Amount       decimal.Decimal `json:"amount"`
}

// OptimalSettlementResponse is the suggested settlement plan for a trip.
type OptimalSettlementResponse struct {
	Transactions      []SettlementTransactionResponse `json:"transactions"`
	TotalTransactions int                             `json:"totalTransactions"`
	CurrencyCode      string                          `json:"currencyCode"`
}

// ToOptimalSettlementResponse converts a domain.OptimalSettlementPlan to its DTO.
func ToOptimalSettlementResponse(plan *domain.OptimalSettlementPlan) OptimalSettlementResponse {
	response := OptimalSettlementResponse{
		Transactions:      make([]SettlementTransactionResponse, len(plan.Transactions)),
		TotalTransactions: plan.TotalTransactions,
		CurrencyCode:      plan.CurrencyCode,
	}
	for i, txn := range plan.Transactions {
		response.Transactions[i] = SettlementTransactionResponse{
			FromID:       txn.FromID,
			FromName:     txn.FromName,
			FromIsFamily: txn.FromIsFamily,
			ToID:         txn.ToID,
			ToName:       txn.ToName,
			ToIsFamily:   txn.ToIsFamily,
			Amount:       txn.Amount,
		}
	}
	return response
}
