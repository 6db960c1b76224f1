package debt

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Aleale0612/swift-fin/internal/operator/actions"
	"github.com/Aleale0612/swift-fin/internal/storage/debt"
)

// SettleDebtBody is the request body for settling a debt.
type SettleDebtBody struct {
	Status string `json:"status" required:"true" enum:"partial,paid" doc:"New debt status"`
}

// SettleDebtInput is the Huma input for settling a debt.
type SettleDebtInput struct {
	UserID string `header:"X-User-ID" required:"true" format:"uuid" doc:"Authenticated user id"`
	DebtID string `path:"debtID" format:"uuid" doc:"Debt UUID"`
	Body   SettleDebtBody
}

// SettleDebtResponse is the response body for settling a debt.
type SettleDebtResponse struct {
	Status string `json:"status" doc:"Debt status after the update"`
}

// SettleDebtOutput is the Huma output for settling a debt.
type SettleDebtOutput struct {
	Body SettleDebtResponse
}

// SettleDebtHandler handles POST /v1/debt/{debtID}/settle.
type SettleDebtHandler struct {
	Operator actionProcessor
}

// NewSettleDebtHandler creates a new SettleDebtHandler.
func NewSettleDebtHandler(op actionProcessor) *SettleDebtHandler {
	return &SettleDebtHandler{Operator: op}
}

// Register registers the settle debt endpoint with the Huma API.
func (h *SettleDebtHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "settle-debt",
		Method:      http.MethodPost,
		Path:        "/v1/debt/{debtID}/settle",
		Summary:     "Settle debt",
		Description: "Marks a debt as partially or fully paid. Full settlement records the matching transaction.",
		Tags:        []string{"Debts"},
	}, h.handle)
}

func (h *SettleDebtHandler) handle(ctx context.Context, input *SettleDebtInput) (*SettleDebtOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	debtID, err := uuid.FromString(input.DebtID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid debtID", err)
	}

	action := &actions.SettleDebt{
		UserID: userID,
		DebtID: debtID,
		Status: input.Body.Status,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, debt.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "debt not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to settle debt", err)
	}

	return &SettleDebtOutput{Body: SettleDebtResponse{Status: input.Body.Status}}, nil
}
