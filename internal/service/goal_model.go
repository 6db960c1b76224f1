package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal in the service layer.
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

// Progress returns how far along the goal is, capped at 100 percent.
func (g *Goal) Progress() decimal.Decimal {
	if !g.Target.IsPositive() {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	progress := g.Current.Div(g.Target).Mul(hundred)
	if progress.GreaterThan(hundred) {
		return hundred
	}
	return progress
}

// GoalCursor identifies a position in a paginated result set.
type GoalCursor struct {
	Position int
	Limit    int
}
