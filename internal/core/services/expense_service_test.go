package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tripweave/tripsplit/internal/apperrors"
	"github.com/tripweave/tripsplit/internal/core/domain"
	portssvc "github.com/tripweave/tripsplit/internal/core/ports/services"
	"github.com/tripweave/tripsplit/internal/core/services"
	"github.com/tripweave/tripsplit/internal/dto"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo     *MockExpenseRepository
	mockTripRepo        *MockTripRepository
	mockParticipantRepo *MockParticipantRepository
	mockFamilyRepo      *MockFamilyRepository
	service             portssvc.ExpenseSvcFacade

	tripID string
	trip   *domain.Trip
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockTripRepo = new(MockTripRepository)
	suite.mockParticipantRepo = new(MockParticipantRepository)
	suite.mockFamilyRepo = new(MockFamilyRepository)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockTripRepo, suite.mockParticipantRepo, suite.mockFamilyRepo)

	suite.tripID = uuid.NewString()
	suite.trip = &domain.Trip{
		TripID:          suite.tripID,
		Name:            "Summer trip",
		DefaultCurrency: "EUR",
		TrackingMode:    domain.TrackIndividuals,
	}
}

func (suite *ExpenseServiceTestSuite) expectRoster(participants []domain.Participant, families []domain.Family) {
	suite.mockTripRepo.On("FindTripByID", mock.Anything, suite.tripID).Return(suite.trip, nil).Once()
	suite.mockParticipantRepo.On("ListParticipantsByTrip", mock.Anything, suite.tripID).Return(participants, nil).Once()
	suite.mockFamilyRepo.On("ListFamiliesByTrip", mock.Anything, suite.tripID).Return(families, nil).Once()
}

func baseExpenseRequest(paidBy string, distribution dto.DistributionRequest) dto.CreateExpenseRequest {
	return dto.CreateExpenseRequest{
		Amount:       decimal.NewFromInt(100),
		CurrencyCode: "EUR",
		PaidBy:       paidBy,
		Category:     "food",
		ExpenseDate:  time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
		Distribution: distribution,
	}
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_EqualSplit() {
	ctx := context.Background()
	alice := domain.Participant{ParticipantID: "alice", TripID: suite.tripID, Name: "Alice"}
	bob := domain.Participant{ParticipantID: "bob", TripID: suite.tripID, Name: "Bob"}
	suite.expectRoster([]domain.Participant{alice, bob}, nil)

	req := baseExpenseRequest("alice", dto.DistributionRequest{
		Type:           "individuals",
		SplitMode:      "equal",
		ParticipantIDs: []string{"alice", "bob"},
	})

	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.TripID == suite.tripID && e.PaidBy == "alice" && e.Amount.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, "admin")

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Equal(domain.SplitEqual, expense.Distribution.SplitMode)
	suite.Equal("admin", expense.CreatedBy)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_PercentageMustSumToHundred() {
	ctx := context.Background()
	alice := domain.Participant{ParticipantID: "alice", TripID: suite.tripID}
	bob := domain.Participant{ParticipantID: "bob", TripID: suite.tripID}
	suite.expectRoster([]domain.Participant{alice, bob}, nil)

	req := baseExpenseRequest("alice", dto.DistributionRequest{
		Type:      "individuals",
		SplitMode: "percentage",
		ParticipantSplits: []dto.SplitValueRequest{
			{EntityID: "alice", Value: decimal.NewFromInt(60)},
			{EntityID: "bob", Value: decimal.NewFromInt(30)},
		},
	})

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, "admin")

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense")
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_AmountSplitsMustSumToTotal() {
	ctx := context.Background()
	alice := domain.Participant{ParticipantID: "alice", TripID: suite.tripID}
	bob := domain.Participant{ParticipantID: "bob", TripID: suite.tripID}
	suite.expectRoster([]domain.Participant{alice, bob}, nil)

	req := baseExpenseRequest("alice", dto.DistributionRequest{
		Type:      "individuals",
		SplitMode: "amount",
		ParticipantSplits: []dto.SplitValueRequest{
			{EntityID: "alice", Value: decimal.NewFromInt(40)},
			{EntityID: "bob", Value: decimal.NewFromInt(40)},
		},
	})

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, "admin")

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_AmountSplitWithinTolerance() {
	ctx := context.Background()
	alice := domain.Participant{ParticipantID: "alice", TripID: suite.tripID}
	bob := domain.Participant{ParticipantID: "bob", TripID: suite.tripID}
	suite.expectRoster([]domain.Participant{alice, bob}, nil)

	// 33.33 + 66.66 = 99.99, one cent off the 100 total
	req := baseExpenseRequest("alice", dto.DistributionRequest{
		Type:      "individuals",
		SplitMode: "amount",
		ParticipantSplits: []dto.SplitValueRequest{
			{EntityID: "alice", Value: decimal.RequireFromString("33.33")},
			{EntityID: "bob", Value: decimal.RequireFromString("66.66")},
		},
	})

	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, "admin")

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_UnknownPayerRejected() {
	ctx := context.Background()
	alice := domain.Participant{ParticipantID: "alice", TripID: suite.tripID}
	suite.expectRoster([]domain.Participant{alice}, nil)

	req := baseExpenseRequest("ghost", dto.DistributionRequest{
		Type:           "individuals",
		SplitMode:      "equal",
		ParticipantIDs: []string{"alice"},
	})

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, "admin")

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_UnknownDistributionEntityRejected() {
	ctx := context.Background()
	alice := domain.Participant{ParticipantID: "alice", TripID: suite.tripID}
	suite.expectRoster([]domain.Participant{alice}, nil)

	req := baseExpenseRequest("alice", dto.DistributionRequest{
		Type:           "individuals",
		SplitMode:      "equal",
		ParticipantIDs: []string{"alice", "ghost"},
	})

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, "admin")

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_MixedDropsCoveredParticipants() {
	ctx := context.Background()
	smiths := domain.Family{FamilyID: "smiths", TripID: suite.tripID, Name: "Smiths", Adults: 2}
	alice := domain.Participant{ParticipantID: "alice", TripID: suite.tripID, FamilyID: "smiths"}
	carol := domain.Participant{ParticipantID: "carol", TripID: suite.tripID}
	suite.expectRoster([]domain.Participant{alice, carol}, []domain.Family{smiths})

	// Alice is covered by the listed family and must not keep her own share.
	req := baseExpenseRequest("carol", dto.DistributionRequest{
		Type:           "mixed",
		SplitMode:      "equal",
		ParticipantIDs: []string{"alice", "carol"},
		FamilyIDs:      []string{"smiths"},
	})

	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return len(e.Distribution.ParticipantIDs) == 1 && e.Distribution.ParticipantIDs[0] == "carol"
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, "admin")

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Equal([]string{"carol"}, expense.Distribution.ParticipantIDs)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NonPositiveAmountRejected() {
	ctx := context.Background()

	req := baseExpenseRequest("alice", dto.DistributionRequest{
		Type:           "individuals",
		SplitMode:      "equal",
		ParticipantIDs: []string{"alice"},
	})
	req.Amount = decimal.Zero

	expense, err := suite.service.CreateExpense(ctx, suite.tripID, req, "admin")

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "FindTripByID")
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_WrongTripIsNotFound() {
	ctx := context.Background()
	expense := &domain.Expense{ExpenseID: "exp1", TripID: "other-trip"}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "exp1").Return(expense, nil).Once()

	err := suite.service.DeleteExpense(ctx, suite.tripID, "exp1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteExpense")
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
