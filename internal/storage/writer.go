package storage

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Aleale0612/swift-fin/internal/storage/debt"
	"github.com/Aleale0612/swift-fin/internal/storage/goal"
	"github.com/Aleale0612/swift-fin/internal/storage/transaction"
)

// Writer exposes the table gateways bound to a single database transaction.
type Writer struct {
	tx          pgx.Tx
	Transaction transaction.ITransactionTable
	Debt        debt.IDebtTable
	Goal        goal.IGoalTable
}

func NewWriter(tx pgx.Tx) *Writer {
	return &Writer{
		tx:          tx,
		Transaction: transaction.NewTable(tx),
		Debt:        debt.NewTable(tx),
		Goal:        goal.NewTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
