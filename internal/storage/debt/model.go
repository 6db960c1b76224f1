package debt

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	TypeDebt       = "debt"
	TypeReceivable = "receivable"

	StatusUnpaid  = "unpaid"
	StatusPartial = "partial"
	StatusPaid    = "paid"
)

// Debt represents a tracked obligation, money owed by or to the user.
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

// DebtCreate is the input for creating a new debt.
type DebtCreate struct {
	UserID      uuid.UUID
	Name        string
	Type        string
	Amount      decimal.Decimal
	Description string
	DueDate     *time.Time
}

// DebtFilter specifies filters for listing debts.
type DebtFilter struct {
	UserID   uuid.UUID
	Statuses []string
	Limit    int
	Offset   int
}

// IDebtTable defines the interface for debt storage operations.
type IDebtTable interface {
	Insert(ctx context.Context, create *DebtCreate) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Debt, error)
	List(ctx context.Context, filter *DebtFilter) ([]*Debt, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
