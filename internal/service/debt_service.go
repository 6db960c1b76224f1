package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/Aleale0612/swift-fin/internal/storage"
	"github.com/Aleale0612/swift-fin/internal/storage/debt"
)

const defaultDebtLimit = 20

// DebtService handles debt business logic.
type DebtService struct {
	storage *storage.Storage
}

// NewDebtService creates a new DebtService.
func NewDebtService(store *storage.Storage) *DebtService {
	return &DebtService{storage: store}
}

// ListDebts returns a page of a user's debts, optionally narrowed to the
// given statuses, soonest due first.
func (s *DebtService) ListDebts(ctx context.Context, userID uuid.UUID, statuses []string, cursor *DebtCursor) ([]Debt, *DebtCursor, error) {
	limit := defaultDebtLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	rows, err := s.storage.Debts.List(ctx, &debt.DebtFilter{
		UserID:   userID,
		Statuses: statuses,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *DebtCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &DebtCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	return debtsFromStorage(rows), nextCursor, nil
}

// ListOpen returns every debt of the user that is not yet fully paid.
// This is the alert deriver's debt feed.
func (s *DebtService) ListOpen(ctx context.Context, userID uuid.UUID) ([]Debt, error) {
	rows, err := s.storage.Debts.List(ctx, &debt.DebtFilter{
		UserID:   userID,
		Statuses: []string{debt.StatusUnpaid, debt.StatusPartial},
	})
	if err != nil {
		return nil, err
	}
	return debtsFromStorage(rows), nil
}

// GetDebt retrieves one debt, refusing rows owned by other users.
func (s *DebtService) GetDebt(ctx context.Context, userID, id uuid.UUID) (*Debt, error) {
	row, err := s.storage.Debts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.UserID != userID {
		return nil, debt.ErrNotFound
	}
	converted := debtFromStorage(row)
	return &converted, nil
}

func debtsFromStorage(rows []*debt.Debt) []Debt {
	converted := make([]Debt, len(rows))
	for i, row := range rows {
		converted[i] = debtFromStorage(row)
	}
	return converted
}

func debtFromStorage(row *debt.Debt) Debt {
	return Debt{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Type:        row.Type,
		Amount:      row.Amount,
		Description: row.Description,
		DueDate:     row.DueDate,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
	}
}
