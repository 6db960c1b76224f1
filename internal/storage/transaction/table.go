package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ ITransactionTable = (*Table)(nil)

// DB is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Table struct {
	db DB
}

func NewTable(db DB) *Table {
	return &Table{db: db}
}

// Insert creates a new transaction and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	date := create.Date
	if date.IsZero() {
		date = time.Now()
	}

	var id uuid.UUID
	err := t.db.QueryRow(ctx,
		`INSERT INTO transactions (user_id, type, amount, description, category, date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		create.UserID, create.Type, create.Amount, create.Description, create.Category, date,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns transactions matching the filter, newest first.
// A positive Limit fetches one extra row so callers can detect a next page.
func (t *Table) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	query := `SELECT id, user_id, type, amount, description, category, date, created_at
		FROM transactions
		WHERE user_id = $1`
	args := []any{filter.UserID}

	if filter.Type != nil {
		args = append(args, *filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND date < $%d", len(args))
	}

	query += " ORDER BY date DESC, id DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit+1)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := t.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Transaction
	for rows.Next() {
		row := &Transaction{}
		err = rows.Scan(&row.ID, &row.UserID, &row.Type, &row.Amount,
			&row.Description, &row.Category, &row.Date, &row.CreatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// SumByMonth returns per-month income and expense totals for [from, to).
func (t *Table) SumByMonth(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]MonthlySum, error) {
	rows, err := t.db.Query(ctx,
		`SELECT date_trunc('month', date) AS month,
		        COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
		        COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		 FROM transactions
		 WHERE user_id = $1 AND date >= $2 AND date < $3
		 GROUP BY 1
		 ORDER BY 1`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []MonthlySum
	for rows.Next() {
		var sum MonthlySum
		if err = rows.Scan(&sum.Month, &sum.Income, &sum.Expense); err != nil {
			return nil, err
		}
		result = append(result, sum)
	}
	return result, rows.Err()
}
