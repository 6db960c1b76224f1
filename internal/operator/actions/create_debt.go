package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Aleale0612/swift-fin/internal/storage"
	"github.com/Aleale0612/swift-fin/internal/storage/debt"
)

type CreateDebt struct {
	UserID      uuid.UUID
	Name        string
	Type        string
	Amount      decimal.Decimal
	Description string
	DueDate     *time.Time

	CreatedID uuid.UUID
	IAction
}

func (a *CreateDebt) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Type != debt.TypeDebt && a.Type != debt.TypeReceivable {
		return errors.New("debt type must be debt or receivable")
	}
	if !a.Amount.IsPositive() {
		return errors.New("debt amount must be positive")
	}

	id, err := writer.Debt.Insert(ctx, &debt.DebtCreate{
		UserID:      a.UserID,
		Name:        a.Name,
		Type:        a.Type,
		Amount:      a.Amount,
		Description: a.Description,
		DueDate:     a.DueDate,
	})
	if err != nil {
		return err
	}

	a.CreatedID = id
	return nil
}
