package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/Aleale0612/swift-fin/internal/storage/debt"
	"github.com/Aleale0612/swift-fin/internal/storage/goal"
	"github.com/Aleale0612/swift-fin/internal/storage/transaction"
)

// mockTransactionTable is a mock for transaction.ITransactionTable.
type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) Insert(ctx context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTransactionTable) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionTable) SumByMonth(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]transaction.MonthlySum, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]transaction.MonthlySum), args.Error(1)
}

// mockDebtTable is a mock for debt.IDebtTable.
type mockDebtTable struct {
	mock.Mock
}

func (m *mockDebtTable) Insert(ctx context.Context, create *debt.DebtCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockDebtTable) FindByID(ctx context.Context, id uuid.UUID) (*debt.Debt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*debt.Debt), args.Error(1)
}

func (m *mockDebtTable) List(ctx context.Context, filter *debt.DebtFilter) ([]*debt.Debt, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*debt.Debt), args.Error(1)
}

func (m *mockDebtTable) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// mockGoalTable is a mock for goal.IGoalTable.
type mockGoalTable struct {
	mock.Mock
}

func (m *mockGoalTable) Insert(ctx context.Context, create *goal.GoalCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockGoalTable) FindByID(ctx context.Context, id uuid.UUID) (*goal.Goal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*goal.Goal), args.Error(1)
}

func (m *mockGoalTable) List(ctx context.Context, filter *goal.GoalFilter) ([]*goal.Goal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*goal.Goal), args.Error(1)
}

func (m *mockGoalTable) UpdateCurrent(ctx context.Context, id uuid.UUID, current decimal.Decimal) error {
	args := m.Called(ctx, id, current)
	return args.Error(0)
}

func (m *mockGoalTable) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
