package goal

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Aleale0612/swift-fin/internal/storage/goal"
)

// DeleteGoalInput is the Huma input for deleting a goal.
type DeleteGoalInput struct {
	UserID string `header:"X-User-ID" required:"true" format:"uuid" doc:"Authenticated user id"`
	GoalID string `path:"goalID" format:"uuid" doc:"Goal UUID"`
}

// DeleteGoalOutput is the Huma output for deleting a goal. The response has
// no body.
type DeleteGoalOutput struct{}

// goalDeleter is the interface for deleting goals.
type goalDeleter interface {
	DeleteGoal(ctx context.Context, userID, id uuid.UUID) error
}

// DeleteGoalHandler handles DELETE /v1/goal/{goalID}.
type DeleteGoalHandler struct {
	GoalService goalDeleter
}

// NewDeleteGoalHandler creates a new DeleteGoalHandler.
func NewDeleteGoalHandler(svc goalDeleter) *DeleteGoalHandler {
	return &DeleteGoalHandler{GoalService: svc}
}

// Register registers the delete goal endpoint with the Huma API.
func (h *DeleteGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-goal",
		Method:        http.MethodDelete,
		Path:          "/v1/goal/{goalID}",
		Summary:       "Delete goal",
		Description:   "Removes a goal. Past contribution transactions are kept.",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteGoalHandler) handle(ctx context.Context, input *DeleteGoalInput) (*DeleteGoalOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	goalID, err := uuid.FromString(input.GoalID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goalID", err)
	}

	if err := h.GoalService.DeleteGoal(ctx, userID, goalID); err != nil {
		if errors.Is(err, goal.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "goal not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete goal", err)
	}

	return &DeleteGoalOutput{}, nil
}
