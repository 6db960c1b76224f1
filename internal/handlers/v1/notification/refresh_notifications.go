package notification

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Aleale0612/swift-fin/internal/alert"
)

// RefreshNotificationsInput is the Huma input for refreshing notifications.
type RefreshNotificationsInput struct {
	UserID string `header:"X-User-ID" required:"true" format:"uuid" doc:"Authenticated user id"`
}

// RefreshNotificationsResponseBody is the response body after a refresh.
type RefreshNotificationsResponseBody struct {
	Notifications []Notification `json:"notifications" doc:"Notifications after the refresh, newest first"`
	UnreadCount   int            `json:"unreadCount" doc:"Number of unread notifications"`
}

// RefreshNotificationsOutput is the Huma output for refreshing notifications.
type RefreshNotificationsOutput struct {
	Body RefreshNotificationsResponseBody
}

// RefreshNotificationsHandler handles POST /v1/notification/refresh.
type RefreshNotificationsHandler struct {
	Center *alert.Center
}

// NewRefreshNotificationsHandler creates a new RefreshNotificationsHandler.
func NewRefreshNotificationsHandler(center *alert.Center) *RefreshNotificationsHandler {
	return &RefreshNotificationsHandler{Center: center}
}

// Register registers the refresh endpoint with the Huma API.
func (h *RefreshNotificationsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "refresh-notifications",
		Method:      http.MethodPost,
		Path:        "/v1/notification/refresh",
		Summary:     "Refresh notifications",
		Description: "Re-derives the user's notifications from current data without waiting for the background cycle.",
		Tags:        []string{"Notifications"},
	}, h.handle)
}

func (h *RefreshNotificationsHandler) handle(ctx context.Context, input *RefreshNotificationsInput) (*RefreshNotificationsOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}

	h.Center.Refresh(ctx, userID)
	notifications, unread := h.Center.Notifications(ctx, userID)

	resp := RefreshNotificationsResponseBody{
		Notifications: make([]Notification, len(notifications)),
		UnreadCount:   unread,
	}
	for i, n := range notifications {
		resp.Notifications[i] = fromAlert(n)
	}

	return &RefreshNotificationsOutput{Body: resp}, nil
}
