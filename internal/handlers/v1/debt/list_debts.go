package debt

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Aleale0612/swift-fin/internal/logging"
	"github.com/Aleale0612/swift-fin/internal/service"
)

// ListDebtsCursor represents a pagination cursor in request and response bodies.
type ListDebtsCursor struct {
	Position int `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit    int `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
}

// ListDebtsBody is the request body for listing debts.
type ListDebtsBody struct {
	Cursor   *ListDebtsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
	Statuses []string         `json:"statuses,omitempty" doc:"Restrict to these statuses, all when empty"`
}

// ListDebtsInput is the Huma input for listing debts.
type ListDebtsInput struct {
	UserID string `header:"X-User-ID" required:"true" format:"uuid" doc:"Authenticated user id"`
	Body   ListDebtsBody
}

// ListDebtsResponseBody is the response body for listing debts.
type ListDebtsResponseBody struct {
	Debts      []Debt           `json:"debts" doc:"Page of debts, earliest due date first"`
	NextCursor *ListDebtsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListDebtsOutput is the Huma output for listing debts.
type ListDebtsOutput struct {
	Body ListDebtsResponseBody
}

// debtLister is the interface for listing debts.
type debtLister interface {
	ListDebts(ctx context.Context, userID uuid.UUID, statuses []string, cursor *service.DebtCursor) ([]service.Debt, *service.DebtCursor, error)
}

// ListDebtsHandler handles POST /v1/debt/list.
type ListDebtsHandler struct {
	DebtService debtLister
}

// NewListDebtsHandler creates a new ListDebtsHandler.
func NewListDebtsHandler(svc debtLister) *ListDebtsHandler {
	return &ListDebtsHandler{DebtService: svc}
}

// Register registers the list debts endpoint with the Huma API.
func (h *ListDebtsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-debts",
		Method:      http.MethodPost,
		Path:        "/v1/debt/list",
		Summary:     "List debts",
		Description: "Returns a paginated list of the user's debts and receivables.",
		Tags:        []string{"Debts"},
	}, h.handle)
}

func (h *ListDebtsHandler) handle(ctx context.Context, input *ListDebtsInput) (*ListDebtsOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}

	var requestCursor *service.DebtCursor
	if input.Body.Cursor != nil {
		requestCursor = &service.DebtCursor{
			Position: input.Body.Cursor.Position,
			Limit:    input.Body.Cursor.Limit,
		}
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listDebtsMs")
	}
	debts, nextCursor, err := h.DebtService.ListDebts(ctx, userID, input.Body.Statuses, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list debts", err)
	}

	if logData != nil {
		logData.AddData("debtCount", len(debts))
	}

	resp := ListDebtsResponseBody{
		Debts: make([]Debt, len(debts)),
	}
	for i, d := range debts {
		resp.Debts[i] = fromService(d)
	}
	if nextCursor != nil {
		resp.NextCursor = &ListDebtsCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
		}
	}

	return &ListDebtsOutput{Body: resp}, nil
}
