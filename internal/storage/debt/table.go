package debt

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ IDebtTable = (*Table)(nil)

// ErrNotFound is returned when no debt matches the given id.
var ErrNotFound = errors.New("debt not found")

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

// Insert creates a new debt with status unpaid and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *DebtCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.db.QueryRow(ctx,
		`INSERT INTO debts (user_id, name, type, amount, description, due_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		create.UserID, create.Name, create.Type, create.Amount,
		create.Description, create.DueDate, StatusUnpaid,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// FindByID retrieves a debt by primary key.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Debt, error) {
	row := &Debt{}
	err := t.db.QueryRow(ctx,
		`SELECT id, user_id, name, type, amount, description, due_date, status, created_at
		 FROM debts
		 WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.UserID, &row.Name, &row.Type, &row.Amount,
		&row.Description, &row.DueDate, &row.Status, &row.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// List returns debts matching the filter, soonest due first.
func (t *Table) List(ctx context.Context, filter *DebtFilter) ([]*Debt, error) {
	query := `SELECT id, user_id, name, type, amount, description, due_date, status, created_at
		FROM debts
		WHERE user_id = $1`
	args := []any{filter.UserID}

	if len(filter.Statuses) > 0 {
		args = append(args, filter.Statuses)
		query += fmt.Sprintf(" AND status = ANY($%d)", len(args))
	}

	query += " ORDER BY due_date ASC NULLS LAST, created_at DESC"

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

	var result []*Debt
	for rows.Next() {
		row := &Debt{}
		err = rows.Scan(&row.ID, &row.UserID, &row.Name, &row.Type, &row.Amount,
			&row.Description, &row.DueDate, &row.Status, &row.CreatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// UpdateStatus sets a debt's status.
func (t *Table) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := t.db.Exec(ctx,
		`UPDATE debts SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
