package services

import (
	portsrepo "github.com/tripweave/tripsplit/internal/core/ports/repositories"
	portssvc "github.com/tripweave/tripsplit/internal/core/ports/services"
	"github.com/tripweave/tripsplit/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Trip = NewTripService(repos.TripRepo)
	container.Roster = NewRosterService(repos.ParticipantRepo, repos.FamilyRepo, repos.TripRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.TripRepo, repos.ParticipantRepo, repos.FamilyRepo)
	container.Settlement = NewSettlementService(repos.SettlementRepo, repos.TripRepo, repos.ParticipantRepo)
	container.Balance = NewBalanceService(repos)
	container.Auth = NewAuthService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TripSvcFacade       = (*tripService)(nil)
	_ portssvc.RosterSvcFacade     = (*rosterService)(nil)
	_ portssvc.ExpenseSvcFacade    = (*expenseService)(nil)
	_ portssvc.SettlementSvcFacade = (*settlementService)(nil)
	_ portssvc.BalanceSvcFacade    = (*balanceService)(nil)
	_ portssvc.AuthSvcFacade       = (*authService)(nil)
)
