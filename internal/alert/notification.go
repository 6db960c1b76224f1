// Package alert derives session-scoped notifications from a user's recent
// transactions and open debts: overspending warnings, due-date reminders,
// overdue debts, and large single transactions.
package alert

import (
	"fmt"
	"time"
)

// Type classifies a notification for presentation.
type Type string

const (
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
	TypeSuccess Type = "success"
)

// Notification is an ephemeral advisory message. It is rebuilt on every
// refresh cycle and never persisted.
type Notification struct {
	ID          string
	Title       string
	Description string
	Type        Type
	Timestamp   time.Time
	Read        bool
	ActionURL   string
}

// newID builds a notification id from the rule kind, the source record id,
// and the generation time so ids from different refresh cycles never collide.
func newID(kind, sourceID string, generatedAt time.Time) string {
	return fmt.Sprintf("%s-%s-%d", kind, sourceID, generatedAt.UnixNano())
}

// pluralDays renders a day count with the right plural form: "0 days",
// "1 day", "2 days".
func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
