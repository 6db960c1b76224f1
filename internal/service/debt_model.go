package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	DebtStatusUnpaid  = "unpaid"
	DebtStatusPartial = "partial"
	DebtStatusPaid    = "paid"
)

// Debt represents a tracked obligation in the service layer.
type Debt struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Type        string
	Amount      decimal.Decimal
	Description string
	DueDate     *time.Time
	Status      string
	CreatedAt   time.Time
}

// DebtCursor identifies a position in a paginated result set.
type DebtCursor struct {
	Position int
	Limit    int
}
