package notification

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Aleale0612/swift-fin/internal/alert"
	"github.com/Aleale0612/swift-fin/internal/logging"
)

// ListNotificationsInput is the Huma input for listing notifications.
type ListNotificationsInput struct {
	UserID string `header:"X-User-ID" required:"true" format:"uuid" doc:"Authenticated user id"`
}

// ListNotificationsResponseBody is the response body for listing notifications.
type ListNotificationsResponseBody struct {
	Notifications []Notification `json:"notifications" doc:"Current notifications, newest first"`
	UnreadCount   int            `json:"unreadCount" doc:"Number of unread notifications"`
}

// ListNotificationsOutput is the Huma output for listing notifications.
type ListNotificationsOutput struct {
	Body ListNotificationsResponseBody
}

// ListNotificationsHandler handles GET /v1/notification. The first request
// for a user derives their notifications on the spot, so a fresh session
// never sees an empty list just because the background refresh hasn't run.
type ListNotificationsHandler struct {
	Center *alert.Center
}

// NewListNotificationsHandler creates a new ListNotificationsHandler.
func NewListNotificationsHandler(center *alert.Center) *ListNotificationsHandler {
	return &ListNotificationsHandler{Center: center}
}

// Register registers the list notifications endpoint with the Huma API.
func (h *ListNotificationsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-notifications",
		Method:      http.MethodGet,
		Path:        "/v1/notification",
		Summary:     "List notifications",
		Description: "Returns the user's current notifications, newest first, with the unread count.",
		Tags:        []string{"Notifications"},
	}, h.handle)
}

func (h *ListNotificationsHandler) handle(ctx context.Context, input *ListNotificationsInput) (*ListNotificationsOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}

	notifications, unread := h.Center.Notifications(ctx, userID)

	if logData != nil {
		logData.AddData("notificationCount", len(notifications))
		logData.AddData("unreadCount", unread)
	}

	resp := ListNotificationsResponseBody{
		Notifications: make([]Notification, len(notifications)),
		UnreadCount:   unread,
	}
	for i, n := range notifications {
		resp.Notifications[i] = fromAlert(n)
	}

	return &ListNotificationsOutput{Body: resp}, nil
}
