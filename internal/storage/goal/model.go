package goal

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	TypeShortTerm = "short"
	TypeLongTerm  = "long"
)

// Goal represents a savings goal record.
type Goal struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Target    decimal.Decimal
	Current   decimal.Decimal
	URL       string
	Type      string
	Category  string
	CreatedAt time.Time
}

// GoalCreate is the input for creating a new goal.
type GoalCreate struct {
	UserID   uuid.UUID
	Title    string
	Target   decimal.Decimal
	URL      string
	Type     string
	Category string
}

// GoalFilter specifies filters for listing goals.
type GoalFilter struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// IGoalTable defines the interface for goal storage operations.
type IGoalTable interface {
	Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Goal, error)
	List(ctx context.Context, filter *GoalFilter) ([]*Goal, error)
	UpdateCurrent(ctx context.Context, id uuid.UUID, current decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
}
