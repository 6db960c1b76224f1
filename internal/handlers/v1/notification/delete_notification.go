package notification

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Aleale0612/swift-fin/internal/alert"
)

// DeleteNotificationInput is the Huma input for dismissing a notification.
type DeleteNotificationInput struct {
	UserID         string `header:"X-User-ID" required:"true" format:"uuid" doc:"Authenticated user id"`
	NotificationID string `path:"notificationID" doc:"Notification id"`
}

// DeleteNotificationOutput is the Huma output for dismissing a notification.
// The response has no body.
type DeleteNotificationOutput struct{}

// DeleteNotificationHandler handles DELETE /v1/notification/{notificationID}.
// Dismissing an unknown notification is a no-op for the same reason marking
// one read is.
type DeleteNotificationHandler struct {
	Center *alert.Center
}

// NewDeleteNotificationHandler creates a new DeleteNotificationHandler.
func NewDeleteNotificationHandler(center *alert.Center) *DeleteNotificationHandler {
	return &DeleteNotificationHandler{Center: center}
}

// Register registers the delete notification endpoint with the Huma API.
func (h *DeleteNotificationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-notification",
		Method:        http.MethodDelete,
		Path:          "/v1/notification/{notificationID}",
		Summary:       "Dismiss notification",
		Tags:          []string{"Notifications"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteNotificationHandler) handle(ctx context.Context, input *DeleteNotificationInput) (*DeleteNotificationOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}

	h.Center.Delete(userID, input.NotificationID)

	return &DeleteNotificationOutput{}, nil
}
