package notification

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Aleale0612/swift-fin/internal/alert"
)

// MarkReadInput is the Huma input for marking one notification read.
type MarkReadInput struct {
	UserID         string `header:"X-User-ID" required:"true" format:"uuid" doc:"Authenticated user id"`
	NotificationID string `path:"notificationID" doc:"Notification id"`
}

// MarkReadResponseBody is the response body after marking a notification read.
type MarkReadResponseBody struct {
	UnreadCount int `json:"unreadCount" doc:"Number of unread notifications after the update"`
}

// MarkReadOutput is the Huma output for marking one notification read.
type MarkReadOutput struct {
	Body MarkReadResponseBody
}

// MarkReadHandler handles POST /v1/notification/{notificationID}/read.
// Marking an unknown or already-read notification is a no-op, not an error:
// the background refresh can replace notifications underneath the client.
type MarkReadHandler struct {
	Center *alert.Center
}

// NewMarkReadHandler creates a new MarkReadHandler.
func NewMarkReadHandler(center *alert.Center) *MarkReadHandler {
	return &MarkReadHandler{Center: center}
}

// Register registers the mark-read endpoint with the Huma API.
func (h *MarkReadHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "mark-notification-read",
		Method:      http.MethodPost,
		Path:        "/v1/notification/{notificationID}/read",
		Summary:     "Mark notification read",
		Tags:        []string{"Notifications"},
	}, h.handle)
}

func (h *MarkReadHandler) handle(ctx context.Context, input *MarkReadInput) (*MarkReadOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}

	h.Center.MarkRead(userID, input.NotificationID)
	_, unread := h.Center.Notifications(ctx, userID)

	return &MarkReadOutput{Body: MarkReadResponseBody{UnreadCount: unread}}, nil
}
