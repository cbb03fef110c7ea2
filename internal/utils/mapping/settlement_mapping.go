package mapping

import (
	"github.com/tripweave/tripsplit/internal/core/domain"
	"github.com/tripweave/tripsplit/internal/models"
)

// ToModelSettlement converts a domain Settlement to a model Settlement.
func ToModelSettlement(d domain.Settlement) models.Settlement {
	return models.Settlement{
		SettlementID:      d.SettlementID,
		TripID:            d.TripID,
		FromParticipantID: d.FromParticipantID,
		ToParticipantID:   d.ToParticipantID,
		Amount:            d.Amount,
		CurrencyCode:      d.CurrencyCode,
		SettlementDate:    d.SettlementDate,
		Note:              d.Note,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSettlement converts a model Settlement to a domain Settlement.
func ToDomainSettlement(m models.Settlement) domain.Settlement {
	return domain.Settlement{
		SettlementID:      m.SettlementID,
		TripID:            m.TripID,
		FromParticipantID: m.FromParticipantID,
		ToParticipantID:   m.ToParticipantID,
		Amount:            m.Amount,
		CurrencyCode:      m.CurrencyCode,
		SettlementDate:    m.SettlementDate,
		Note:              m.Note,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSettlementSlice converts a slice of model Settlements to a slice of domain Settlements
func ToDomainSettlementSlice(ms []models.Settlement) []domain.Settlement {
	ds := make([]domain.Settlement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSettlement(m)
	}
	return ds
}
