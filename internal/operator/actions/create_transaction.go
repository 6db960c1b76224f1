package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Aleale0612/swift-fin/internal/storage"
	"github.com/Aleale0612/swift-fin/internal/storage/transaction"
)

type CreateTransaction struct {
	UserID      uuid.UUID
	Type        string
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time

	// CreatedID carries the generated id back to the caller.
	CreatedID uuid.UUID
	IAction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Type != transaction.TypeIncome && a.Type != transaction.TypeExpense {
		return errors.New("transaction type must be income or expense")
	}
	if !a.Amount.IsPositive() {
		return errors.New("transaction amount must be positive")
	}

	id, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		Type:        a.Type,
		Amount:      a.Amount,
		Description: a.Description,
		Category:    a.Category,
		Date:        a.Date,
	})
	if err != nil {
		return err
	}

	a.CreatedID = id
	return nil
}
