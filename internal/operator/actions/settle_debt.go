package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/Aleale0612/swift-fin/internal/storage"
	"github.com/Aleale0612/swift-fin/internal/storage/debt"
	"github.com/Aleale0612/swift-fin/internal/storage/transaction"
)

// SettleDebt moves a debt to partial or paid. Full settlement also records
// the matching transaction: paying off a debt is an expense, collecting a
// receivable is income.
type SettleDebt struct {
	UserID uuid.UUID
	DebtID uuid.UUID
	Status string
	IAction
}

func (a *SettleDebt) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Status != debt.StatusPartial && a.Status != debt.StatusPaid {
		return errors.New("settle status must be partial or paid")
	}

	row, err := writer.Debt.FindByID(ctx, a.DebtID)
	if err != nil {
		return err
	}
	if row.UserID != a.UserID {
		return debt.ErrNotFound
	}
	if row.Status == debt.StatusPaid {
		return errors.New("debt already paid")
	}

	if err := writer.Debt.UpdateStatus(ctx, a.DebtID, a.Status); err != nil {
		return err
	}

	if a.Status != debt.StatusPaid {
		return nil
	}

	txType := transaction.TypeExpense
	if row.Type == debt.TypeReceivable {
		txType = transaction.TypeIncome
	}
	_, err = writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		Type:        txType,
		Amount:      row.Amount,
		Description: "Settled: " + row.Name,
		Category:    "Debt",
	})
	return err
}
