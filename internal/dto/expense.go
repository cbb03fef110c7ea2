package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripweave/tripsplit/internal/core/domain"
)

// SplitValueRequest is one (entity id, value) pair of an explicit split.
type SplitValueRequest struct {
	EntityID string          `json:"entityID" binding:"required"`
	Value    decimal.Decimal `json:"value" binding:"required"`
}

// DistributionRequest describes how an expense is shared. Type and SplitMode
// select the variant; the id lists and split lists feed it.
type DistributionRequest struct {
	Type                 string              `json:"type" binding:"required,oneof=individuals families mixed"`
	SplitMode            string              `json:"splitMode" binding:"required,splitmode"`
	ParticipantIDs       []string            `json:"participantIDs,omitempty"`
	FamilyIDs            []string            `json:"familyIDs,omitempty"`
	AccountForFamilySize bool                `json:"accountForFamilySize,omitempty"`
	ParticipantSplits    []SplitValueRequest `json:"participantSplits,omitempty"`
	FamilySplits         []SplitValueRequest `json:"familySplits,omitempty"`
}

// ToDomainDistribution converts a DistributionRequest to a domain.Distribution.
func (r DistributionRequest) ToDomainDistribution() domain.Distribution {
	return domain.Distribution{
		Type:                 domain.DistributionType(r.Type),
		SplitMode:            domain.SplitMode(r.SplitMode),
		ParticipantIDs:       r.ParticipantIDs,
		FamilyIDs:            r.FamilyIDs,
		AccountForFamilySize: r.AccountForFamilySize,
		ParticipantSplits:    toDomainSplitValues(r.ParticipantSplits),
		FamilySplits:         toDomainSplitValues(r.FamilySplits),
	}
}

func toDomainSplitValues(in []SplitValueRequest) []domain.SplitValue {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.SplitValue, len(in))
	for i, s := range in {
		out[i] = domain.SplitValue{EntityID: s.EntityID, Value: s.Value}
	}
	return out
}

// CreateExpenseRequest defines the structure for creating a new expense.
type CreateExpenseRequest struct {
	Amount       decimal.Decimal     `json:"amount" binding:"required"`
	CurrencyCode string              `json:"currencyCode" binding:"required,len=3,uppercase"`
	PaidBy       string              `json:"paidBy" binding:"required"`
	Category     string              `json:"category" binding:"max=60"`
	ExpenseDate  time.Time           `json:"expenseDate" binding:"required"`
	Distribution DistributionRequest `json:"distribution" binding:"required"`
}

// DistributionResponse mirrors domain.Distribution in API responses.
type DistributionResponse struct {
	Type                 string               `json:"type"`
	SplitMode            string               `json:"splitMode"`
	ParticipantIDs       []string             `json:"participantIDs,omitempty"`
	FamilyIDs            []string             `json:"familyIDs,omitempty"`
	AccountForFamilySize bool                 `json:"accountForFamilySize,omitempty"`
	ParticipantSplits    []SplitValueResponse `json:"participantSplits,omitempty"`
	FamilySplits         []SplitValueResponse `json:"familySplits,omitempty"`
}

// SplitValueResponse is one (entity id, value) pair in an API response.
type SplitValueResponse struct {
	EntityID string          `json:"entityID"`
	Value    decimal.Decimal `json:"value"`
}

// ExpenseResponse defines the structure for API responses containing expense details.
type ExpenseResponse struct {
	ExpenseID    string               `json:"expenseID"`
	TripID       string               `json:"tripID"`
	Amount       decimal.Decimal      `json:"amount"`
	CurrencyCode string               `json:"currencyCode"`
	PaidBy       string               `json:"paidBy"`
	Category     string               `json:"category"`
	ExpenseDate  time.Time            `json:"expenseDate"`
	Distribution DistributionResponse `json:"distribution"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:    e.ExpenseID,
		TripID:       e.TripID,
		Amount:       e.Amount,
		CurrencyCode: e.CurrencyCode,
		PaidBy:       e.PaidBy,
		Category:     e.Category,
		ExpenseDate:  e.ExpenseDate,
		Distribution: toDistributionResponse(e.Distribution),
	}
}

func toDistributionResponse(d domain.Distribution) DistributionResponse {
	return DistributionResponse{
		Type:                 string(d.Type),
		SplitMode:            string(d.SplitMode),
		ParticipantIDs:       d.ParticipantIDs,
		FamilyIDs:            d.FamilyIDs,
		AccountForFamilySize: d.AccountForFamilySize,
		ParticipantSplits:    toSplitValueResponses(d.ParticipantSplits),
		FamilySplits:         toSplitValueResponses(d.FamilySplits),
	}
}

func toSplitValueResponses(in []domain.SplitValue) []SplitValueResponse {
	if len(in) == 0 {
		return nil
	}
	out := make([]SplitValueResponse, len(in))
	for i, s := range in {
		out[i] = SplitValueResponse{EntityID: s.EntityID, Value: s.Value}
	}
	return out
}

// ToListExpenseResponse converts a slice of domain.Expense to DTOs.
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
