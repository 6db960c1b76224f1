package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Aleale0612/swift-fin/internal/storage"
	"github.com/Aleale0612/swift-fin/internal/storage/transaction"
)

const defaultTransactionLimit = 20

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns a page of a user's transactions, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, filter *TransactionFilter, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultTransactionLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	storageFilter := &transaction.TransactionFilter{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	}
	if filter != nil {
		storageFilter.Type = filter.Type
		storageFilter.From = filter.From
		storageFilter.To = filter.To
	}

	rows, err := s.storage.Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &TransactionCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	return transactionsFromStorage(rows), nextCursor, nil
}

// CurrentMonth returns all of the user's transactions for the calendar month
// containing now. This is the alert deriver's transaction feed.
func (s *TransactionService) CurrentMonth(ctx context.Context, userID uuid.UUID, now time.Time) ([]Transaction, error) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	rows, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		UserID: userID,
		From:   &from,
		To:     &to,
	})
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}

func transactionsFromStorage(rows []*transaction.Transaction) []Transaction {
	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = Transaction{
			ID:          row.ID,
			UserID:      row.UserID,
			Type:        row.Type,
			Amount:      row.Amount,
			Description: row.Description,
			Category:    row.Category,
			Date:        row.Date,
			CreatedAt:   row.CreatedAt,
		}
	}
	return converted
}
