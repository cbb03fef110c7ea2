package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement records a real-world payment between two participants made
// outside the suggested settlement plan. It offsets their balances directly.
//
// Note: the balance aggregator applies settlement amounts at face value and
// assumes they are recorded in the trip's base currency.
type Settlement struct {
	SettlementID      string          `json:"settlementID"` // Primary Key (e.g., UUID)
	TripID            string          `json:"tripID"`       // FK -> Trip.tripID (Not Null)
	FromParticipantID string          `json:"fromParticipantID"`
	ToParticipantID   string          `json:"toParticipantID"`
	Amount            decimal.Decimal `json:"amount"`
	CurrencyCode      string          `json:"currencyCode"`
	SettlementDate    time.Time       `json:"settlementDate"`
	Note              string          `json:"note"` // Nullable
	AuditFields
}
