package mapping

import (
	"github.com/tripweave/tripsplit/internal/core/domain"
	"github.com/tripweave/tripsplit/internal/models"
)

// ToModelParticipant converts a domain Participant to a model Participant.
// An empty FamilyID becomes a NULL column value.
func ToModelParticipant(d domain.Participant) models.Participant {
	var familyID *string
	if d.FamilyID != "" {
		id := d.FamilyID
		familyID = &id
	}
	return models.Participant{
		ParticipantID: d.ParticipantID,
		TripID:        d.TripID,
		Name:          d.Name,
		IsAdult:       d.IsAdult,
		FamilyID:      familyID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParticipant converts a model Participant to a domain Participant.
func ToDomainParticipant(m models.Participant) domain.Participant {
	familyID := ""
	if m.FamilyID != nil {
		familyID = *m.FamilyID
	}
	return domain.Participant{
		ParticipantID: m.ParticipantID,
		TripID:        m.TripID,
		Name:          m.Name,
		IsAdult:       m.IsAdult,
		FamilyID:      familyID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelFamily converts a domain Family to a model Family.
func ToModelFamily(d domain.Family) models.Family {
	return models.Family{
		FamilyID:    d.FamilyID,
		TripID:      d.TripID,
		Name:        d.Name,
		Adults:      d.Adults,
		Children:    d.Children,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFamily converts a model Family to a domain Family.
func ToDomainFamily(m models.Family) domain.Family {
	return domain.Family{
		FamilyID:    m.FamilyID,
		TripID:      m.TripID,
		Name:        m.Name,
		Adults:      m.Adults,
		Children:    m.Children,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainParticipantSlice converts a slice of model Participants to a slice of domain Participants
func ToDomainParticipantSlice(ms []models.Participant) []domain.Participant {
	ds := make([]domain.Participant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParticipant(m)
	}
	return ds
}

// ToDomainFamilySlice converts a slice of model Families to a slice of domain Families
func ToDomainFamilySlice(ms []models.Family) []domain.Family {
	ds := make([]domain.Family, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFamily(m)
	}
	return ds
}
