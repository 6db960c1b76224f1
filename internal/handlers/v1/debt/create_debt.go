package debt

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Aleale0612/swift-fin/internal/operator/actions"
)

// CreateDebtBody is the request body for creating a debt.
type CreateDebtBody struct {
	Name        string `json:"name" required:"true" minLength:"1" doc:"Who the money is owed to or by"`
	Type        string `json:"type" required:"true" enum:"debt,receivable" doc:"Debt direction"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount in rupiah"`
	Description string `json:"description,omitempty" doc:"Free-form note"`
	DueDate     string `json:"dueDate,omitempty" format:"date-time" doc:"RFC3339 due date, omit when none"`
}

// CreateDebtInput is the Huma input for creating a debt.
type CreateDebtInput struct {
	UserID string `header:"X-User-ID" required:"true" format:"uuid" doc:"Authenticated user id"`
	Body   CreateDebtBody
}

// CreateDebtResponse is the response body for creating a debt.
type CreateDebtResponse struct {
	ID string `json:"id" doc:"UUID of the created debt"`
}

// CreateDebtOutput is the Huma output for creating a debt.
type CreateDebtOutput struct {
	Body CreateDebtResponse
}

// actionProcessor runs a write action through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateDebtHandler handles POST /v1/debt.
type CreateDebtHandler struct {
	Operator actionProcessor
}

// NewCreateDebtHandler creates a new CreateDebtHandler.
func NewCreateDebtHandler(op actionProcessor) *CreateDebtHandler {
	return &CreateDebtHandler{Operator: op}
}

// Register registers the create debt endpoint with the Huma API.
func (h *CreateDebtHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-debt",
		Method:        http.MethodPost,
		Path:          "/v1/debt",
		Summary:       "Create debt",
		Description:   "Creates a new debt or receivable.",
		Tags:          []string{"Debts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateDebtInput(input *CreateDebtInput) (userID uuid.UUID, amount decimal.Decimal, dueDate *time.Time, err error) {
	userID, err = uuid.FromString(input.UserID)
	if err != nil {
		return uuid.Nil, decimal.Zero, nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}

	amount, err = decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return uuid.Nil, decimal.Zero, nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	if input.Body.DueDate != "" {
		parsed, parseErr := time.Parse(time.RFC3339, input.Body.DueDate)
		if parseErr != nil {
			return uuid.Nil, decimal.Zero, nil, huma.NewError(http.StatusBadRequest, "invalid dueDate", parseErr)
		}
		dueDate = &parsed
	}

	return userID, amount, dueDate, nil
}

func (h *CreateDebtHandler) handle(ctx context.Context, input *CreateDebtInput) (*CreateDebtOutput, error) {
	userID, amount, dueDate, err := parseCreateDebtInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateDebt{
		UserID:      userID,
		Name:        input.Body.Name,
		Type:        input.Body.Type,
		Amount:      amount,
		Description: input.Body.Description,
		DueDate:     dueDate,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create debt", err)
	}

	return &CreateDebtOutput{Body: CreateDebtResponse{ID: action.CreatedID.String()}}, nil
}
