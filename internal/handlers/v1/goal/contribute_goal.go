package goal

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Aleale0612/swift-fin/internal/operator/actions"
	"github.com/Aleale0612/swift-fin/internal/storage/goal"
)

// ContributeGoalBody is the request body for contributing to a goal.
type ContributeGoalBody struct {
	Amount string `json:"amount" required:"true" doc:"Decimal contribution amount in rupiah"`
}

// ContributeGoalInput is the Huma input for contributing to a goal.
type ContributeGoalInput struct {
	UserID string `header:"X-User-ID" required:"true" format:"uuid" doc:"Authenticated user id"`
	GoalID string `path:"goalID" format:"uuid" doc:"Goal UUID"`
	Body   ContributeGoalBody
}

// ContributeGoalResponse is the response body for contributing to a goal.
type ContributeGoalResponse struct {
	Status string `json:"status" doc:"Always ok on success"`
}

// ContributeGoalOutput is the Huma output for contributing to a goal.
type ContributeGoalOutput struct {
	Body ContributeGoalResponse
}

// ContributeGoalHandler handles POST /v1/goal/{goalID}/contribute.
type ContributeGoalHandler struct {
	Operator actionProcessor
}

// NewContributeGoalHandler creates a new ContributeGoalHandler.
func NewContributeGoalHandler(op actionProcessor) *ContributeGoalHandler {
	return &ContributeGoalHandler{Operator: op}
}

// Register registers the contribute endpoint with the Huma API.
func (h *ContributeGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "contribute-goal",
		Method:      http.MethodPost,
		Path:        "/v1/goal/{goalID}/contribute",
		Summary:     "Contribute to goal",
		Description: "Adds money to a goal and records the matching expense transaction.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *ContributeGoalHandler) handle(ctx context.Context, input *ContributeGoalInput) (*ContributeGoalOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	goalID, err := uuid.FromString(input.GoalID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goalID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	action := &actions.ContributeToGoal{
		UserID: userID,
		GoalID: goalID,
		Amount: amount,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, goal.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "goal not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to contribute to goal", err)
	}

	return &ContributeGoalOutput{Body: ContributeGoalResponse{Status: "ok"}}, nil
}
