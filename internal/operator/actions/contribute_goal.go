package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Aleale0612/swift-fin/internal/storage"
	"github.com/Aleale0612/swift-fin/internal/storage/goal"
	"github.com/Aleale0612/swift-fin/internal/storage/transaction"
)

// ContributeToGoal bumps a goal's saved amount and records the contribution
// as an expense transaction so the dashboard numbers stay consistent.
type ContributeToGoal struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount decimal.Decimal
	IAction
}

func (a *ContributeToGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	if !a.Amount.IsPositive() {
		return errors.New("contribution amount must be positive")
	}

	row, err := writer.Goal.FindByID(ctx, a.GoalID)
	if err != nil {
		return err
	}
	if row.UserID != a.UserID {
		return goal.ErrNotFound
	}

	newCurrent := row.Current.Add(a.Amount)
	if err := writer.Goal.UpdateCurrent(ctx, a.GoalID, newCurrent); err != nil {
		return err
	}

	_, err = writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		Type:        transaction.TypeExpense,
		Amount:      a.Amount,
		Description: "Contribution: " + row.Title,
		Category:    "Savings",
	})
	return err
}
