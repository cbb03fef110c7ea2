package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripweave/tripsplit/internal/core/domain"
)

// CreateSettlementRequest defines the structure for recording a settlement.
type CreateSettlementRequest struct {
	FromParticipantID string          `json:"fromParticipantID" binding:"required"`
	ToParticipantID   string          `json:"toParticipantID" binding:"required"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode      string          `json:"currencyCode" binding:"required,len=3,uppercase"`
	SettlementDate    time.Time       `json:"settlementDate" binding:"required"`
	Note              string          `json:"note" binding:"max=240"`
}

// SettlementResponse defines the structure for API responses containing settlement details.
type SettlementResponse struct {
	SettlementID      string          `json:"settlementID"`
	TripID            string          `json:"tripID"`
	FromParticipantID string          `json:"fromParticipantID"`
	ToParticipantID   string          `json:"toParticipantID"`
	Amount            decimal.Decimal `json:"amount"`
	CurrencyCode      string          `json:"currencyCode"`
	SettlementDate    time.Time       `json:"settlementDate"`
	Note              string          `json:"note,omitempty"`
}

// ToSettlementResponse converts a domain.Settlement to SettlementResponse DTO
func ToSettlementResponse(s *domain.Settlement) SettlementResponse {
	return SettlementResponse{
		SettlementID:      s.SettlementID,
		TripID:            s.TripID,
		FromParticipantID: s.FromParticipantID,
		ToParticipantID:   s.ToParticipantID,
		Amount:            s.Amount,
		CurrencyCode:      s.CurrencyCode,
		SettlementDate:    s.SettlementDate,
		Note:              s.Note,
	}
}

// ToListSettlementResponse converts a slice of domain.Settlement to DTOs.
func ToListSettlementResponse(settlements []domain.Settlement) []SettlementResponse {
	responses := make([]SettlementResponse, len(settlements))
	for i := range settlements {
		responses[i] = ToSettlementResponse(&settlements[i])
	}
	return responses
}
