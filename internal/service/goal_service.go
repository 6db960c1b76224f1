package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/Aleale0612/swift-fin/internal/storage"
	"github.com/Aleale0612/swift-fin/internal/storage/goal"
)

const defaultGoalLimit = 20

// GoalService handles savings goal business logic.
type GoalService struct {
	storage *storage.Storage
}

// NewGoalService creates a new GoalService.
func NewGoalService(store *storage.Storage) *GoalService {
	return &GoalService{storage: store}
}

// ListGoals returns a page of a user's goals, newest first.
func (s *GoalService) ListGoals(ctx context.Context, userID uuid.UUID, cursor *GoalCursor) ([]Goal, *GoalCursor, error) {
	limit := defaultGoalLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	rows, err := s.storage.Goals.List(ctx, &goal.GoalFilter{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *GoalCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &GoalCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	converted := make([]Goal, len(rows))
	for i, row := range rows {
		converted[i] = goalFromStorage(row)
	}
	return converted, nextCursor, nil
}

// DeleteGoal removes a goal, refusing rows owned by other users.
func (s *GoalService) DeleteGoal(ctx context.Context, userID, id uuid.UUID) error {
	row, err := s.storage.Goals.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if row.UserID != userID {
		return goal.ErrNotFound
	}
	return s.storage.Goals.Delete(ctx, id)
}

func goalFromStorage(row *goal.Goal) Goal {
	return Goal{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Target:    row.Target,
		Current:   row.Current,
		URL:       row.URL,
		Type:      row.Type,
		Category:  row.Category,
		CreatedAt: row.CreatedAt,
	}
}
