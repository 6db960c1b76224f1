package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

var _ IGoalTable = (*Table)(nil)

// ErrNotFound is returned when no goal matches the given id.
var ErrNotFound = errors.New("goal not found")

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

// Insert creates a new goal with zero progress and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *GoalCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.db.QueryRow(ctx,
		`INSERT INTO goals (user_id, title, target, current, url, type, category)
		 VALUES ($1, $2, $3, 0, $4, $5, $6)
		 RETURNING id`,
		create.UserID, create.Title, create.Target, create.URL, create.Type, create.Category,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// FindByID retrieves a goal by primary key.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Goal, error) {
	row := &Goal{}
	err := t.db.QueryRow(ctx,
		`SELECT id, user_id, title, target, current, url, type, category, created_at
		 FROM goals
		 WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.UserID, &row.Title, &row.Target, &row.Current,
		&row.URL, &row.Type, &row.Category, &row.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// List returns goals for the user, newest first.
func (t *Table) List(ctx context.Context, filter *GoalFilter) ([]*Goal, error) {
	query := `SELECT id, user_id, title, target, current, url, type, category, created_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`
	args := []any{filter.UserID}

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

	var result []*Goal
	for rows.Next() {
		row := &Goal{}
		err = rows.Scan(&row.ID, &row.UserID, &row.Title, &row.Target, &row.Current,
			&row.URL, &row.Type, &row.Category, &row.CreatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// UpdateCurrent sets a goal's saved-so-far amount.
func (t *Table) UpdateCurrent(ctx context.Context, id uuid.UUID, current decimal.Decimal) error {
	tag, err := t.db.Exec(ctx,
		`UPDATE goals SET current = $2, updated_at = now() WHERE id = $1`,
		id, current,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a goal unconditionally.
func (t *Table) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := t.db.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
