package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Aleale0612/swift-fin/internal/logging"
	"github.com/Aleale0612/swift-fin/internal/service"
)

// ListGoalsCursor represents a pagination cursor in request and response bodies.
type ListGoalsCursor struct {
	Position int `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit    int `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
}

// ListGoalsBody is the request body for listing goals.
type ListGoalsBody struct {
	Cursor *ListGoalsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListGoalsInput is the Huma input for listing goals.
type ListGoalsInput struct {
	UserID string `header:"X-User-ID" required:"true" format:"uuid" doc:"Authenticated user id"`
	Body   ListGoalsBody
}

// ListGoalsResponseBody is the response body for listing goals.
type ListGoalsResponseBody struct {
	Goals      []Goal           `json:"goals" doc:"Page of goals"`
	NextCursor *ListGoalsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListGoalsOutput is the Huma output for listing goals.
type ListGoalsOutput struct {
	Body ListGoalsResponseBody
}

// goalLister is the interface for listing goals.
type goalLister interface {
	ListGoals(ctx context.Context, userID uuid.UUID, cursor *service.GoalCursor) ([]service.Goal, *service.GoalCursor, error)
}

// ListGoalsHandler handles POST /v1/goal/list.
type ListGoalsHandler struct {
	GoalService goalLister
}

// NewListGoalsHandler creates a new ListGoalsHandler.
func NewListGoalsHandler(svc goalLister) *ListGoalsHandler {
	return &ListGoalsHandler{GoalService: svc}
}

// Register registers the list goals endpoint with the Huma API.
func (h *ListGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodPost,
		Path:        "/v1/goal/list",
		Summary:     "List goals",
		Description: "Returns a paginated list of the user's savings goals.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *ListGoalsHandler) handle(ctx context.Context, input *ListGoalsInput) (*ListGoalsOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}

	var requestCursor *service.GoalCursor
	if input.Body.Cursor != nil {
		requestCursor = &service.GoalCursor{
			Position: input.Body.Cursor.Position,
			Limit:    input.Body.Cursor.Limit,
		}
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listGoalsMs")
	}
	goals, nextCursor, err := h.GoalService.ListGoals(ctx, userID, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list goals", err)
	}

	if logData != nil {
		logData.AddData("goalCount", len(goals))
	}

	resp := ListGoalsResponseBody{
		Goals: make([]Goal, len(goals)),
	}
	for i, g := range goals {
		resp.Goals[i] = fromService(g)
	}
	if nextCursor != nil {
		resp.NextCursor = &ListGoalsCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
		}
	}

	return &ListGoalsOutput{Body: resp}, nil
}
