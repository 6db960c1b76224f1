package debt

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Aleale0612/swift-fin/internal/operator/actions"
	"github.com/Aleale0612/swift-fin/internal/storage/debt"
)

func newSettleTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewSettleDebtHandler(op).Register(api)
	return api
}

func TestHTTP_SettleDebt_Paid(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	debtID := uuid.Must(uuid.NewV4())

	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		settle, ok := a.(*actions.SettleDebt)
		return ok &&
			settle.UserID == userID &&
			settle.DebtID == debtID &&
			settle.Status == "paid"
	})).Return(nil)

	resp := newSettleTestAPI(t, mockOp).Post("/v1/debt/"+debtID.String()+"/settle", userHeader(userID), SettleDebtBody{
		Status: "paid",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SettleDebtResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "paid", body.Status)
	mockOp.AssertExpectations(t)
}

func TestHTTP_SettleDebt_InvalidStatus(t *testing.T) {
	mockOp := new(mockActionProcessor)

	resp := newSettleTestAPI(t, mockOp).Post("/v1/debt/"+uuid.Must(uuid.NewV4()).String()+"/settle",
		userHeader(uuid.Must(uuid.NewV4())), SettleDebtBody{Status: "cancelled"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_SettleDebt_NotFound(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(debt.ErrNotFound)

	resp := newSettleTestAPI(t, mockOp).Post("/v1/debt/"+uuid.Must(uuid.NewV4()).String()+"/settle",
		userHeader(uuid.Must(uuid.NewV4())), SettleDebtBody{Status: "paid"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_SettleDebt_OperatorError(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(errors.New("database unavailable"))

	resp := newSettleTestAPI(t, mockOp).Post("/v1/debt/"+uuid.Must(uuid.NewV4()).String()+"/settle",
		userHeader(uuid.Must(uuid.NewV4())), SettleDebtBody{Status: "partial"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockOp.AssertExpectations(t)
}
