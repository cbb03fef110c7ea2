package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tripweave/tripsplit/internal/core/domain"
)

// --- Mock TripRepository ---
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepository) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

// --- Mock ParticipantRepository ---
type MockParticipantRepository struct {
	mock.Mock
}

func (m *MockParticipantRepository) SaveParticipant(ctx context.Context, participant domain.Participant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

func (m *MockParticipantRepository) FindParticipantByID(ctx context.Context, participantID string) (*domain.Participant, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}

func (m *MockParticipantRepository) ListParticipantsByTrip(ctx context.Context, tripID string) ([]domain.Participant, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Participant), args.Error(1)
}

func (m *MockParticipantRepository) DeleteParticipant(ctx context.Context, participantID string) error {
	args := m.Called(ctx, participantID)
	return args.Error(0)
}

// --- Mock FamilyRepository ---
type MockFamilyRepository struct {
	mock.Mock
}

func (m *MockFamilyRepository) SaveFamily(ctx context.Context, family domain.Family) error {
	args := m.Called(ctx, family)
	return args.Error(0)
}

func (m *MockFamilyRepository) FindFamilyByID(ctx context.Context, familyID string) (*domain.Family, error) {
	args := m.Called(ctx, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Family), args.Error(1)
}

func (m *MockFamilyRepository) ListFamiliesByTrip(ctx context.Context, tripID string) ([]domain.Family, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Family), args.Error(1)
}

func (m *MockFamilyRepository) DeleteFamily(ctx context.Context, familyID string) error {
	args := m.Called(ctx, familyID)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByTrip(ctx context.Context, tripID string) ([]domain.Expense, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

// --- Mock SettlementRepository ---
type MockSettlementRepository struct {
	mock.Mock
}

func (m *MockSettlementRepository) SaveSettlement(ctx context.Context, settlement domain.Settlement) error {
	args := m.Called(ctx, settlement)
	return args.Error(0)
}

func (m *MockSettlementRepository) ListSettlementsByTrip(ctx context.Context, tripID string) ([]domain.Settlement, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Settlement), args.Error(1)
}

func (m *MockSettlementRepository) DeleteSettlement(ctx context.Context, settlementID string) error {
	args := m.Called(ctx, settlementID)
	return args.Error(0)
}
