package notification

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Aleale0612/swift-fin/internal/alert"
)

// MarkAllReadInput is the Huma input for marking every notification read.
type MarkAllReadInput struct {
	UserID string `header:"X-User-ID" required:"true" format:"uuid" doc:"Authenticated user id"`
}

// MarkAllReadResponseBody is the response body after marking all read.
type MarkAllReadResponseBody struct {
	UnreadCount int `json:"unreadCount" doc:"Always zero after this call"`
}

// MarkAllReadOutput is the Huma output for marking every notification read.
type MarkAllReadOutput struct {
	Body MarkAllReadResponseBody
}

// MarkAllReadHandler handles POST /v1/notification/read-all.
type MarkAllReadHandler struct {
	Center *alert.Center
}

// NewMarkAllReadHandler creates a new MarkAllReadHandler.
func NewMarkAllReadHandler(center *alert.Center) *MarkAllReadHandler {
	return &MarkAllReadHandler{Center: center}
}

// Register registers the mark-all-read endpoint with the Huma API.
func (h *MarkAllReadHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "mark-all-notifications-read",
		Method:      http.MethodPost,
		Path:        "/v1/notification/read-all",
		Summary:     "Mark all notifications read",
		Tags:        []string{"Notifications"},
	}, h.handle)
}

func (h *MarkAllReadHandler) handle(ctx context.Context, input *MarkAllReadInput) (*MarkAllReadOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}

	h.Center.MarkAllRead(userID)

	return &MarkAllReadOutput{Body: MarkAllReadResponseBody{UnreadCount: 0}}, nil
}
