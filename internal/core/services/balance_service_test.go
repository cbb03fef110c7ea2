package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tripweave/tripsplit/internal/apperrors"
	"github.com/tripweave/tripsplit/internal/core/domain"
	portsrepo "github.com/tripweave/tripsplit/internal/core/ports/repositories"
	portssvc "github.com/tripweave/tripsplit/internal/core/ports/services"
	"github.com/tripweave/tripsplit/internal/core/services"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	mockTripRepo        *MockTripRepository
	mockParticipantRepo *MockParticipantRepository
	mockFamilyRepo      *MockFamilyRepository
	mockExpenseRepo     *MockExpenseRepository
	mockSettlementRepo  *MockSettlementRepository
	service             portssvc.BalanceSvcFacade
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockTripRepo = new(MockTripRepository)
	suite.mockParticipantRepo = new(MockParticipantRepository)
	suite.mockFamilyRepo = new(MockFamilyRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockSettlementRepo = new(MockSettlementRepository)
	suite.service = services.NewBalanceService(portsrepo.RepositoryProvider{
		TripRepo:        suite.mockTripRepo,
		ParticipantRepo: suite.mockParticipantRepo,
		FamilyRepo:      suite.mockFamilyRepo,
		ExpenseRepo:     suite.mockExpenseRepo,
		SettlementRepo:  suite.mockSettlementRepo,
	})
}

func (suite *BalanceServiceTestSuite) expectTripData(trip *domain.Trip, participants []domain.Participant, families []domain.Family, expenses []domain.Expense, settlements []domain.Settlement) {
	suite.mockTripRepo.On("FindTripByID", mock.Anything, trip.TripID).Return(trip, nil)
	suite.mockParticipantRepo.On("ListParticipantsByTrip", mock.Anything, trip.TripID).Return(participants, nil)
	suite.mockFamilyRepo.On("ListFamiliesByTrip", mock.Anything, trip.TripID).Return(families, nil)
	suite.mockExpenseRepo.On("ListExpensesByTrip", mock.Anything, trip.TripID).Return(expenses, nil)
	suite.mockSettlementRepo.On("ListSettlementsByTrip", mock.Anything, trip.TripID).Return(settlements, nil)
}

func (suite *BalanceServiceTestSuite) TestCalculateTripBalances_TripNotFound() {
	ctx := context.Background()

	suite.mockTripRepo.On("FindTripByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	calc, err := suite.service.CalculateTripBalances(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(calc)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BalanceServiceTestSuite) TestCalculateTripBalances_OffsetBySettlement() {
	ctx := context.Background()
	trip := &domain.Trip{TripID: "trip1", DefaultCurrency: "EUR", TrackingMode: domain.TrackIndividuals}
	participants := []domain.Participant{
		{ParticipantID: "alice", TripID: "trip1", Name: "Alice"},
		{ParticipantID: "bob", TripID: "trip1", Name: "Bob"},
	}
	expenses := []domain.Expense{
		{
			ExpenseID:    "exp1",
			TripID:       "trip1",
			Amount:       decimal.NewFromInt(100),
			CurrencyCode: "EUR",
			PaidBy:       "alice",
			Distribution: domain.Distribution{
				Type:           domain.DistributionIndividuals,
				SplitMode:      domain.SplitEqual,
				ParticipantIDs: []string{"alice", "bob"},
			},
		},
	}
	settlements := []domain.Settlement{
		{
			SettlementID:      "set1",
			TripID:            "trip1",
			FromParticipantID: "bob",
			ToParticipantID:   "alice",
			Amount:            decimal.NewFromInt(50),
			CurrencyCode:      "EUR",
		},
	}
	suite.expectTripData(trip, participants, nil, expenses, settlements)

	calc, err := suite.service.CalculateTripBalances(ctx, "trip1")

	suite.Require().NoError(err)
	suite.Require().NotNil(calc)
	suite.True(calc.TotalExpenses.Equal(decimal.NewFromInt(100)))
	for _, balance := range calc.Balances {
		suite.True(balance.Balance.IsZero(), "entity %s should be settled, got %s", balance.EntityID, balance.Balance)
	}
	suite.Nil(calc.SuggestedNextPayer)
}

func (suite *BalanceServiceTestSuite) TestCalculateTripBalances_ConvertsForeignCurrency() {
	ctx := context.Background()
	trip := &domain.Trip{
		TripID:          "trip1",
		DefaultCurrency: "USD",
		TrackingMode:    domain.TrackIndividuals,
		ExchangeRates:   map[string]decimal.Decimal{"EUR": decimal.RequireFromString("1.1")},
	}
	participants := []domain.Participant{
		{ParticipantID: "alice", TripID: "trip1", Name: "Alice"},
		{ParticipantID: "bob", TripID: "trip1", Name: "Bob"},
	}
	expenses := []domain.Expense{
		{
			ExpenseID:    "exp1",
			TripID:       "trip1",
			Amount:       decimal.NewFromInt(220),
			CurrencyCode: "EUR",
			PaidBy:       "alice",
			Distribution: domain.Distribution{
				Type:           domain.DistributionIndividuals,
				SplitMode:      domain.SplitEqual,
				ParticipantIDs: []string{"alice", "bob"},
			},
		},
	}
	suite.expectTripData(trip, participants, nil, expenses, nil)

	calc, err := suite.service.CalculateTripBalances(ctx, "trip1")

	suite.Require().NoError(err)
	// 220 EUR at 1.1 EUR per USD = 200 USD
	suite.True(calc.TotalExpenses.Equal(decimal.NewFromInt(200)), "total = %s", calc.TotalExpenses)
	suite.Require().NotNil(calc.SuggestedNextPayer)
	suite.Equal("bob", calc.SuggestedNextPayer.EntityID)
}

func (suite *BalanceServiceTestSuite) TestSuggestSettlementPlan() {
	ctx := context.Background()
	trip := &domain.Trip{TripID: "trip1", DefaultCurrency: "EUR", TrackingMode: domain.TrackIndividuals}
	participants := []domain.Participant{
		{ParticipantID: "alice", TripID: "trip1", Name: "Alice"},
		{ParticipantID: "bob", TripID: "trip1", Name: "Bob"},
		{ParticipantID: "carol", TripID: "trip1", Name: "Carol"},
	}
	expenses := []domain.Expense{
		{
			ExpenseID:    "exp1",
			TripID:       "trip1",
			Amount:       decimal.NewFromInt(90),
			CurrencyCode: "EUR",
			PaidBy:       "alice",
			Distribution: domain.Distribution{
				Type:           domain.DistributionIndividuals,
				SplitMode:      domain.SplitEqual,
				ParticipantIDs: []string{"alice", "bob", "carol"},
			},
		},
	}
	suite.expectTripData(trip, participants, nil, expenses, nil)

	plan, err := suite.service.SuggestSettlementPlan(ctx, "trip1")

	suite.Require().NoError(err)
	suite.Require().NotNil(plan)
	suite.Equal("EUR", plan.CurrencyCode)
	suite.Len(plan.Transactions, 2)
	suite.Equal(2, plan.TotalTransactions)
	for _, tx := range plan.Transactions {
		suite.Equal("alice", tx.ToID)
		suite.True(tx.Amount.Equal(decimal.NewFromInt(30)), "amount = %s", tx.Amount)
	}
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
