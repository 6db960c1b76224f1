package alert

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Aleale0612/swift-fin/internal/currency"
	"github.com/Aleale0612/swift-fin/internal/service"
)

// overspendThreshold trips the overspending rule once expenses exceed this
// share of income for the month.
var overspendThreshold = decimal.RequireFromString("0.8")

// largeTransactionMin is the rupiah amount above which a single transaction
// gets its own notification.
var largeTransactionMin = decimal.NewFromInt(10_000_000)

// dueSoonWindowDays is the reminder window before a debt's due date,
// inclusive on both ends.
const dueSoonWindowDays = 3

var hundred = decimal.NewFromInt(100)

// Deriver holds one user's notification list. The list is reconstructed on
// every refresh: unread notifications carry over, read ones are dropped, and
// freshly derived ones are merged in. Duplicate-looking alerts for the same
// debt across a carryover and a fresh derivation are intentional; the alert
// repeats every cycle until acknowledged.
type Deriver struct {
	mu        sync.Mutex
	list      []Notification // ordered newest first
	index     map[string]int // id -> position in list
	refreshed bool
}

func NewDeriver() *Deriver {
	return &Deriver{index: make(map[string]int)}
}

// Refresh rebuilds the list from the given inputs. It never fails; missing
// or empty inputs simply produce fewer notifications.
func (d *Deriver) Refresh(transactions []service.Transaction, debts []service.Debt, now time.Time) {
	fresh := derive(transactions, debts, now)

	d.mu.Lock()
	defer d.mu.Unlock()

	merged := make([]Notification, 0, len(d.list)+len(fresh))
	for _, n := range d.list {
		if !n.Read {
			merged = append(merged, n)
		}
	}
	merged = append(merged, fresh...)

	// Stable sort keeps carryover entries ahead of fresh ones with the
	// same timestamp.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})

	d.list = merged
	d.refreshed = true
	d.reindex()
}

// Refreshed reports whether the deriver has completed at least one cycle.
func (d *Deriver) Refreshed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.refreshed
}

// Notifications returns the current list, newest first.
func (d *Deriver) Notifications() []Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Notification, len(d.list))
	copy(out, d.list)
	return out
}

// UnreadCount returns how many notifications have not been read.
func (d *Deriver) UnreadCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	count := 0
	for _, n := range d.list {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead marks one notification as read. Unknown ids are a no-op, and
// marking twice is harmless.
func (d *Deriver) MarkRead(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i, ok := d.index[id]; ok {
		d.list[i].Read = true
	}
}

// MarkAllRead marks every notification as read.
func (d *Deriver) MarkAllRead() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.list {
		d.list[i].Read = true
	}
}

// Delete removes a notification unconditionally. Unknown ids are a no-op.
func (d *Deriver) Delete(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	i, ok := d.index[id]
	if !ok {
		return
	}
	d.list = append(d.list[:i], d.list[i+1:]...)
	d.reindex()
}

func (d *Deriver) reindex() {
	d.index = make(map[string]int, len(d.list))
	for i, n := range d.list {
		d.index[n.ID] = i
	}
}

// derive evaluates every rule independently; any subset may fire.
func derive(transactions []service.Transaction, debts []service.Debt, now time.Time) []Notification {
	var out []Notification
	out = append(out, deriveOverspending(transactions, now)...)
	out = append(out, deriveDebtReminders(debts, now)...)
	out = append(out, deriveLargeTransactions(transactions, now)...)
	return out
}

// deriveOverspending fires once per cycle when monthly expenses exceed 80%
// of monthly income.
func deriveOverspending(transactions []service.Transaction, now time.Time) []Notification {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range transactions {
		switch tx.Type {
		case service.TransactionTypeIncome:
			income = income.Add(tx.Amount)
		case service.TransactionTypeExpense:
			expense = expense.Add(tx.Amount)
		}
	}

	if !income.IsPositive() || !expense.GreaterThan(income.Mul(overspendThreshold)) {
		return nil
	}

	ratio := expense.Div(income).Mul(hundred).Round(0)
	return []Notification{{
		ID:          newID("overspending", "monthly", now),
		Title:       "Overspending Warning",
		Description: fmt.Sprintf("Your expenses have reached %s%% of your income this month.", ratio.String()),
		Type:        TypeWarning,
		Timestamp:   now,
		ActionURL:   "/reports",
	}}
}

// deriveDebtReminders fires one notification per dated debt: overdue when
// the due date has passed, due-soon inside the reminder window. The two are
// mutually exclusive by the sign of the day delta, so exactly one fires per
// debt per refresh.
func deriveDebtReminders(debts []service.Debt, now time.Time) []Notification {
	var out []Notification
	for _, d := range debts {
		if d.DueDate == nil {
			continue
		}

		overdueDays := daysBetween(*d.DueDate, now)
		if overdueDays > 0 {
			out = append(out, Notification{
				ID:    newID("overdue", d.ID.String(), now),
				Title: "Debt Overdue",
				Description: fmt.Sprintf("%s (%s) is %s overdue.",
					d.Name, currency.FormatIDR(d.Amount), pluralDays(overdueDays)),
				Type:      TypeWarning,
				Timestamp: now,
				ActionURL: "/debts",
			})
			continue
		}

		dueIn := daysBetween(now, *d.DueDate)
		if dueIn <= dueSoonWindowDays {
			out = append(out, Notification{
				ID:    newID("due-soon", d.ID.String(), now),
				Title: "Debt Due Soon",
				Description: fmt.Sprintf("%s (%s) is due in %s.",
					d.Name, currency.FormatIDR(d.Amount), pluralDays(dueIn)),
				Type:      TypeWarning,
				Timestamp: now,
				ActionURL: "/debts",
			})
		}
	}
	return out
}

// deriveLargeTransactions fires per transaction above the threshold. The
// notification keeps the transaction's own date so it holds its
// chronological position across refreshes.
func deriveLargeTransactions(transactions []service.Transaction, now time.Time) []Notification {
	var out []Notification
	for _, tx := range transactions {
		if !tx.Amount.GreaterThan(largeTransactionMin) {
			continue
		}

		notifType := TypeInfo
		if tx.Type == service.TransactionTypeIncome {
			notifType = TypeSuccess
		}

		out = append(out, Notification{
			ID:    newID("large-transaction", tx.ID.String(), now),
			Title: "Large Transaction",
			Description: fmt.Sprintf("%s: %s",
				tx.Description, currency.FormatIDR(tx.Amount)),
			Type:      notifType,
			Timestamp: tx.Date,
			ActionURL: "/transactions",
		})
	}
	return out
}

// daysBetween is the calendar-day distance from from to to, fractional days
// rounded up. Negative when to precedes from.
func daysBetween(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}
