package alert

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/Aleale0612/swift-fin/internal/service"
)

// TransactionSource feeds the deriver the user's current-month transactions.
type TransactionSource interface {
	CurrentMonth(ctx context.Context, userID uuid.UUID, now time.Time) ([]service.Transaction, error)
}

// DebtSource feeds the deriver the user's not-yet-paid debts.
type DebtSource interface {
	ListOpen(ctx context.Context, userID uuid.UUID) ([]service.Debt, error)
}

// Center owns one Deriver per user and wires the data sources to it.
// Fetch failures are logged and treated as empty result sets: the deriver
// simply produces fewer notifications that cycle and carries unread ones
// over, so upstream errors never surface here.
type Center struct {
	transactions TransactionSource
	debts        DebtSource
	logger       *logrus.Logger
	clock        func() time.Time

	mu       sync.Mutex
	derivers map[uuid.UUID]*Deriver
}

func NewCenter(transactions TransactionSource, debts DebtSource, logger *logrus.Logger) *Center {
	return &Center{
		transactions: transactions,
		debts:        debts,
		logger:       logger,
		clock:        time.Now,
		derivers:     make(map[uuid.UUID]*Deriver),
	}
}

// Refresh recomputes the user's notifications from fresh data.
func (c *Center) Refresh(ctx context.Context, userID uuid.UUID) {
	now := c.clock()

	transactions, err := c.transactions.CurrentMonth(ctx, userID, now)
	if err != nil {
		c.logger.WithError(err).WithField("userID", userID).Warn("AlertCenter.Refresh.transactions")
		transactions = nil
	}

	debts, err := c.debts.ListOpen(ctx, userID)
	if err != nil {
		c.logger.WithError(err).WithField("userID", userID).Warn("AlertCenter.Refresh.debts")
		debts = nil
	}

	c.deriver(userID).Refresh(transactions, debts, now)
}

// RefreshAll recomputes notifications for every user seen so far.
func (c *Center) RefreshAll(ctx context.Context) {
	c.mu.Lock()
	userIDs := make([]uuid.UUID, 0, len(c.derivers))
	for userID := range c.derivers {
		userIDs = append(userIDs, userID)
	}
	c.mu.Unlock()

	for _, userID := range userIDs {
		c.Refresh(ctx, userID)
	}
}

// Notifications returns the user's current list and unread count, running
// the first derivation on initial access.
func (c *Center) Notifications(ctx context.Context, userID uuid.UUID) ([]Notification, int) {
	d := c.deriver(userID)
	if !d.Refreshed() {
		c.Refresh(ctx, userID)
	}
	return d.Notifications(), d.UnreadCount()
}

// MarkRead marks one of the user's notifications as read.
func (c *Center) MarkRead(userID uuid.UUID, id string) {
	c.deriver(userID).MarkRead(id)
}

// MarkAllRead marks all of the user's notifications as read.
func (c *Center) MarkAllRead(userID uuid.UUID) {
	c.deriver(userID).MarkAllRead()
}

// Delete removes one of the user's notifications.
func (c *Center) Delete(userID uuid.UUID, id string) {
	c.deriver(userID).Delete(id)
}

func (c *Center) deriver(userID uuid.UUID) *Deriver {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.derivers[userID]
	if !ok {
		d = NewDeriver()
		c.derivers[userID] = d
	}
	return d
}
