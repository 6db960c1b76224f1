package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction represents a transaction in the service layer.
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

// TransactionCursor identifies a position in a paginated result set.
type TransactionCursor struct {
	Position int
	Limit    int
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	Type *string
	From *time.Time
	To   *time.Time
}
