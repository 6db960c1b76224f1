package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Aleale0612/swift-fin/internal/storage"
	"github.com/Aleale0612/swift-fin/internal/storage/goal"
)

type CreateGoal struct {
	UserID   uuid.UUID
	Title    string
	Target   decimal.Decimal
	URL      string
	Type     string
	Category string

	CreatedID uuid.UUID
	IAction
}

func (a *CreateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Type != goal.TypeShortTerm && a.Type != goal.TypeLongTerm {
		return errors.New("goal type must be short or long")
	}
	if !a.Target.IsPositive() {
		return errors.New("goal target must be positive")
	}

	id, err := writer.Goal.Insert(ctx, &goal.GoalCreate{
		UserID:   a.UserID,
		Title:    a.Title,
		Target:   a.Target,
		URL:      a.URL,
		Type:     a.Type,
		Category: a.Category,
	})
	if err != nil {
		return err
	}

	a.CreatedID = id
	return nil
}
