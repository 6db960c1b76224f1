package notification

import (
	"time"

	"github.com/Aleale0612/swift-fin/internal/alert"
)

// Notification is the API response model for a derived notification.
type Notification struct {
	ID          string `json:"id" doc:"Notification id, stable until the notification is replaced"`
	Title       string `json:"title" doc:"Short headline"`
	Description string `json:"description" doc:"Human-readable detail line"`
	Type        string `json:"type" doc:"info, warning, or success"`
	Timestamp   string `json:"timestamp" doc:"RFC3339 time the condition occurred"`
	Read        bool   `json:"read" doc:"Whether the user has seen this notification"`
	ActionURL   string `json:"actionUrl,omitempty" doc:"Dashboard page the notification links to"`
}

func fromAlert(n alert.Notification) Notification {
	return Notification{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Type:        string(n.Type),
		Timestamp:   n.Timestamp.Format(time.RFC3339),
		Read:        n.Read,
		ActionURL:   n.ActionURL,
	}
}
