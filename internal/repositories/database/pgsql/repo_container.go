package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/tripweave/tripsplit/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	tripRepo := newPgxTripRepository(dbPool)
	participantRepo := newPgxParticipantRepository(dbPool)
	familyRepo := newPgxFamilyRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	settlementRepo := newPgxSettlementRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TripRepo:        tripRepo,
		ParticipantRepo: participantRepo,
		FamilyRepo:      familyRepo,
		ExpenseRepo:     expenseRepo,
		SettlementRepo:  settlementRepo,
	}
}
