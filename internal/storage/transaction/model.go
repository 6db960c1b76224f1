package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        string
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
	CreatedAt   time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID      uuid.UUID
	Type        string
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time // defaults to now if zero
}

// TransactionFilter specifies filters for listing transactions.
// From is inclusive, To exclusive, both on the transaction date.
type TransactionFilter struct {
	UserID uuid.UUID
	Type   *string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// MonthlySum aggregates income and expense totals for one calendar month.
type MonthlySum struct {
	Month   time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// ITransactionTable defines the interface for transaction storage operations.
// The abstraction keeps services testable against fakes.
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	SumByMonth(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]MonthlySum, error)
}
