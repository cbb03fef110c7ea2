package repositories

// RepositoryProvider holds instances of all the application repositories.
// It is assembled once by the database adapter and handed to the service
// container.
type RepositoryProvider struct {
	TripRepo        TripRepository
	ParticipantRepo ParticipantRepository
	FamilyRepo      FamilyRepository
	ExpenseRepo     ExpenseRepository
	SettlementRepo  SettlementRepository
}
