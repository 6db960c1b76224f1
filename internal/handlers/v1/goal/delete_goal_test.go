package goal

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Aleale0612/swift-fin/internal/storage/goal"
)

type mockGoalDeleter struct {
	mock.Mock
}

func (m *mockGoalDeleter) DeleteGoal(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func newDeleteTestAPI(t *testing.T, svc goalDeleter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteGoalHandler(svc).Register(api)
	return api
}

func TestHTTP_DeleteGoal_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	goalID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockGoalDeleter)
	mockSvc.On("DeleteGoal", mock.Anything, userID, goalID).Return(nil)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/goal/"+goalID.String(), userHeader(userID))

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteGoal_NotFound(t *testing.T) {
	mockSvc := new(mockGoalDeleter)
	mockSvc.On("DeleteGoal", mock.Anything, mock.Anything, mock.Anything).Return(goal.ErrNotFound)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/goal/"+uuid.Must(uuid.NewV4()).String(),
		userHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteGoal_ServiceError(t *testing.T) {
	mockSvc := new(mockGoalDeleter)
	mockSvc.On("DeleteGoal", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/goal/"+uuid.Must(uuid.NewV4()).String(),
		userHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
