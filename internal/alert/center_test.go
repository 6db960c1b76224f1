package alert

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Aleale0612/swift-fin/internal/logging"
	"github.com/Aleale0612/swift-fin/internal/service"
)

type mockTransactionSource struct {
	mock.Mock
}

func (m *mockTransactionSource) CurrentMonth(ctx context.Context, userID uuid.UUID, now time.Time) ([]service.Transaction, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

type mockDebtSource struct {
	mock.Mock
}

func (m *mockDebtSource) ListOpen(ctx context.Context, userID uuid.UUID) ([]service.Debt, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Debt), args.Error(1)
}

func newTestCenter(t *testing.T) (*Center, *mockTransactionSource, *mockDebtSource) {
	t.Helper()
	txSource := new(mockTransactionSource)
	debtSource := new(mockDebtSource)
	center := NewCenter(txSource, debtSource, logging.SetupLogging())
	center.clock = func() time.Time { return testNow }
	return center, txSource, debtSource
}

func TestCenter_Refresh_DerivesFromSources(t *testing.T) {
	center, txSource, debtSource := newTestCenter(t)
	userID := uuid.Must(uuid.NewV4())

	due := testNow.AddDate(0, 0, 1)
	txSource.On("CurrentMonth", mock.Anything, userID, testNow).
		Return([]service.Transaction{makeTx(service.TransactionTypeIncome, 15_000_000, testNow, "Bonus")}, nil)
	debtSource.On("ListOpen", mock.Anything, userID).
		Return([]service.Debt{makeDebt("Cicilan", 100_000, &due)}, nil)

	center.Refresh(context.Background(), userID)

	notifications, unread := center.Notifications(context.Background(), userID)
	assert.Len(t, notifications, 2)
	assert.Equal(t, 2, unread)
	txSource.AssertExpectations(t)
	debtSource.AssertExpectations(t)
}

func TestCenter_Refresh_FetchErrorTreatedAsEmpty(t *testing.T) {
	center, txSource, debtSource := newTestCenter(t)
	userID := uuid.Must(uuid.NewV4())

	// Cycle 1 derives an alert.
	due := testNow.AddDate(0, 0, -1)
	txSource.On("CurrentMonth", mock.Anything, userID, testNow).
		Return([]service.Transaction{}, nil).Once()
	debtSource.On("ListOpen", mock.Anything, userID).
		Return([]service.Debt{makeDebt("Pinjol", 900_000, &due)}, nil).Once()
	center.Refresh(context.Background(), userID)

	// Cycle 2 fails upstream; the unread alert must carry over.
	txSource.On("CurrentMonth", mock.Anything, userID, testNow).
		Return(nil, errors.New("connection refused")).Once()
	debtSource.On("ListOpen", mock.Anything, userID).
		Return(nil, errors.New("connection refused")).Once()
	center.Refresh(context.Background(), userID)

	notifications, unread := center.Notifications(context.Background(), userID)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Debt Overdue", notifications[0].Title)
	assert.Equal(t, 1, unread)
}

func TestCenter_Notifications_InitialAccessRefreshes(t *testing.T) {
	center, txSource, debtSource := newTestCenter(t)
	userID := uuid.Must(uuid.NewV4())

	txSource.On("CurrentMonth", mock.Anything, userID, testNow).
		Return([]service.Transaction{makeTx(service.TransactionTypeExpense, 12_000_000, testNow, "Rent")}, nil).Once()
	debtSource.On("ListOpen", mock.Anything, userID).
		Return([]service.Debt{}, nil).Once()

	notifications, unread := center.Notifications(context.Background(), userID)
	require.Len(t, notifications, 1)
	assert.Equal(t, 1, unread)

	// Second access reuses the derived state without another fetch.
	notifications, _ = center.Notifications(context.Background(), userID)
	assert.Len(t, notifications, 1)
	txSource.AssertExpectations(t)
}

func TestCenter_OperationsScopedPerUser(t *testing.T) {
	center, txSource, debtSource := newTestCenter(t)
	alice := uuid.Must(uuid.NewV4())
	bob := uuid.Must(uuid.NewV4())

	due := testNow.AddDate(0, 0, 1)
	txSource.On("CurrentMonth", mock.Anything, mock.Anything, mock.Anything).
		Return([]service.Transaction{}, nil)
	debtSource.On("ListOpen", mock.Anything, mock.Anything).
		Return([]service.Debt{makeDebt("Cicilan", 100_000, &due)}, nil)

	aliceNotifications, _ := center.Notifications(context.Background(), alice)
	require.Len(t, aliceNotifications, 1)
	_, bobUnread := center.Notifications(context.Background(), bob)
	require.Equal(t, 1, bobUnread)

	center.MarkAllRead(alice)

	_, aliceUnread := center.Notifications(context.Background(), alice)
	_, bobUnread = center.Notifications(context.Background(), bob)
	assert.Equal(t, 0, aliceUnread)
	assert.Equal(t, 1, bobUnread, "bob's unread state untouched")
}

func TestCenter_RefreshAll_CoversKnownUsers(t *testing.T) {
	center, txSource, debtSource := newTestCenter(t)
	alice := uuid.Must(uuid.NewV4())
	bob := uuid.Must(uuid.NewV4())

	txSource.On("CurrentMonth", mock.Anything, mock.Anything, mock.Anything).
		Return([]service.Transaction{}, nil)
	debtSource.On("ListOpen", mock.Anything, mock.Anything).
		Return([]service.Debt{}, nil)

	center.Refresh(context.Background(), alice)
	center.Refresh(context.Background(), bob)
	center.RefreshAll(context.Background())

	txSource.AssertNumberOfCalls(t, "CurrentMonth", 4)
}
