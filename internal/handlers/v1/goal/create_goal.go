package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Aleale0612/swift-fin/internal/operator/actions"
)

// CreateGoalBody is the request body for creating a goal.
type CreateGoalBody struct {
	Title    string `json:"title" required:"true" minLength:"1" doc:"What the goal is for"`
	Target   string `json:"target" required:"true" doc:"Decimal target amount in rupiah"`
	URL      string `json:"url,omitempty" doc:"Link to the item being saved for"`
	Type     string `json:"type" required:"true" enum:"short,long" doc:"Goal horizon"`
	Category string `json:"category,omitempty" doc:"Free-form category label"`
}

// CreateGoalInput is the Huma input for creating a goal.
type CreateGoalInput struct {
	UserID string `header:"X-User-ID" required:"true" format:"uuid" doc:"Authenticated user id"`
	Body   CreateGoalBody
}

// CreateGoalResponse is the response body for creating a goal.
type CreateGoalResponse struct {
	ID string `json:"id" doc:"UUID of the created goal"`
}

// CreateGoalOutput is the Huma output for creating a goal.
type CreateGoalOutput struct {
	Body CreateGoalResponse
}

// actionProcessor runs a write action through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateGoalHandler handles POST /v1/goal.
type CreateGoalHandler struct {
	Operator actionProcessor
}

// NewCreateGoalHandler creates a new CreateGoalHandler.
func NewCreateGoalHandler(op actionProcessor) *CreateGoalHandler {
	return &CreateGoalHandler{Operator: op}
}

// Register registers the create goal endpoint with the Huma API.
func (h *CreateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-goal",
		Method:        http.MethodPost,
		Path:          "/v1/goal",
		Summary:       "Create goal",
		Description:   "Creates a new savings goal.",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	target, err := decimal.NewFromString(input.Body.Target)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid target", err)
	}

	action := &actions.CreateGoal{
		UserID:   userID,
		Title:    input.Body.Title,
		Target:   target,
		URL:      input.Body.URL,
		Type:     input.Body.Type,
		Category: input.Body.Category,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create goal", err)
	}

	return &CreateGoalOutput{Body: CreateGoalResponse{ID: action.CreatedID.String()}}, nil
}
