package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement is the database representation of a recorded settlement.
type Settlement struct {
	SettlementID      string          `json:"settlementID"`
	TripID            string          `json:"tripID"`
	FromParticipantID string          `json:"fromParticipantID"`
	ToParticipantID   string          `json:"toParticipantID"`
	Amount            decimal.Decimal `json:"amount"`
	CurrencyCode      string          `json:"currencyCode"`
	SettlementDate    time.Time       `json:"settlementDate"`
	Note              string          `json:"note"`
	AuditFields
}
