package notification

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/Aleale0612/swift-fin/internal/alert"
	"github.com/Aleale0612/swift-fin/internal/service"
)

type mockTransactionSource struct {
	mock.Mock
}

func (m *mockTransactionSource) CurrentMonth(ctx context.Context, userID uuid.UUID, now time.Time) ([]service.Transaction, error) {
	args := m.Called(ctx, userID, now)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

type mockDebtSource struct {
	mock.Mock
}

func (m *mockDebtSource) ListOpen(ctx context.Context, userID uuid.UUID) ([]service.Debt, error) {
	args := m.Called(ctx, userID)
	debts, _ := args.Get(0).([]service.Debt)
	return debts, args.Error(1)
}

// newTestCenter builds a real alert center over mocked data sources.
func newTestCenter(transactions *mockTransactionSource, debts *mockDebtSource) *alert.Center {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return alert.NewCenter(transactions, debts, logger)
}

// largeIncomeSources returns sources yielding exactly one notification: a
// large income transaction, which derives a success notification.
func largeIncomeSources(t *testing.T, userID uuid.UUID, description string) (*mockTransactionSource, *mockDebtSource) {
	t.Helper()

	txSource := new(mockTransactionSource)
	txSource.On("CurrentMonth", mock.Anything, userID, mock.Anything).
		Return([]service.Transaction{
			{
				ID:          uuid.Must(uuid.NewV4()),
				UserID:      userID,
				Type:        service.TransactionTypeIncome,
				Amount:      decimal.RequireFromString("12000000"),
				Description: description,
				Date:        time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC),
			},
		}, nil)

	debtSource := new(mockDebtSource)
	debtSource.On("ListOpen", mock.Anything, userID).
		Return(([]service.Debt)(nil), nil)

	return txSource, debtSource
}

func userHeader(userID uuid.UUID) string {
	return "X-User-ID: " + userID.String()
}
