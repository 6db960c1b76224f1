package notification

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Aleale0612/swift-fin/internal/alert"
	"github.com/Aleale0612/swift-fin/internal/service"
)

// newManageTestAPI registers every notification endpoint so flows spanning
// multiple endpoints can run against one API.
func newManageTestAPI(t *testing.T, center *alert.Center) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListNotificationsHandler(center).Register(api)
	NewRefreshNotificationsHandler(center).Register(api)
	NewMarkReadHandler(center).Register(api)
	NewMarkAllReadHandler(center).Register(api)
	NewDeleteNotificationHandler(center).Register(api)
	return api
}

func listNotifications(t *testing.T, api humatest.TestAPI, userID uuid.UUID) ListNotificationsResponseBody {
	t.Helper()
	resp := api.Get("/v1/notification", userHeader(userID))
	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListNotificationsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHTTP_RefreshNotifications_ReturnsFreshList(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txSource, debtSource := largeIncomeSources(t, userID, "Bonus")
	api := newManageTestAPI(t, newTestCenter(txSource, debtSource))

	resp := api.Post("/v1/notification/refresh", userHeader(userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body RefreshNotificationsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Notifications, 1)
	assert.Equal(t, 1, body.UnreadCount)
	txSource.AssertExpectations(t)
}

func TestHTTP_MarkRead_DropsUnreadCount(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txSource, debtSource := largeIncomeSources(t, userID, "Bonus")
	api := newManageTestAPI(t, newTestCenter(txSource, debtSource))

	listed := listNotifications(t, api, userID)
	assert.Equal(t, 1, listed.UnreadCount)

	resp := api.Post("/v1/notification/"+listed.Notifications[0].ID+"/read", userHeader(userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MarkReadResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.UnreadCount)

	after := listNotifications(t, api, userID)
	assert.Len(t, after.Notifications, 1)
	assert.True(t, after.Notifications[0].Read)
}

func TestHTTP_MarkRead_UnknownIDIsNoOp(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txSource, debtSource := largeIncomeSources(t, userID, "Bonus")
	api := newManageTestAPI(t, newTestCenter(txSource, debtSource))

	listNotifications(t, api, userID)

	resp := api.Post("/v1/notification/not-a-real-id/read", userHeader(userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MarkReadResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.UnreadCount)
}

func TestHTTP_MarkAllRead(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txSource, debtSource := largeIncomeSources(t, userID, "Bonus")
	api := newManageTestAPI(t, newTestCenter(txSource, debtSource))

	listNotifications(t, api, userID)

	resp := api.Post("/v1/notification/read-all", userHeader(userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MarkAllReadResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.UnreadCount)

	after := listNotifications(t, api, userID)
	assert.Equal(t, 0, after.UnreadCount)
}

func TestHTTP_DeleteNotification(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txSource, debtSource := largeIncomeSources(t, userID, "Bonus")
	api := newManageTestAPI(t, newTestCenter(txSource, debtSource))

	listed := listNotifications(t, api, userID)
	assert.Len(t, listed.Notifications, 1)

	resp := api.Delete("/v1/notification/"+listed.Notifications[0].ID, userHeader(userID))

	assert.Equal(t, http.StatusNoContent, resp.Code)

	after := listNotifications(t, api, userID)
	assert.Empty(t, after.Notifications)
	assert.Equal(t, 0, after.UnreadCount)
}

func TestHTTP_Notifications_UsersAreIsolated(t *testing.T) {
	alice := uuid.Must(uuid.NewV4())
	bob := uuid.Must(uuid.NewV4())

	txSource := new(mockTransactionSource)
	txSource.On("CurrentMonth", mock.Anything, mock.Anything, mock.Anything).
		Return([]service.Transaction{
			{
				ID:          uuid.Must(uuid.NewV4()),
				Type:        service.TransactionTypeIncome,
				Amount:      decimal.RequireFromString("12000000"),
				Description: "Bonus",
				Date:        time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC),
			},
		}, nil)
	debtSource := new(mockDebtSource)
	debtSource.On("ListOpen", mock.Anything, mock.Anything).
		Return(([]service.Debt)(nil), nil)

	api := newManageTestAPI(t, newTestCenter(txSource, debtSource))

	listed := listNotifications(t, api, alice)
	api.Post("/v1/notification/"+listed.Notifications[0].ID+"/read", userHeader(alice))

	bobView := listNotifications(t, api, bob)
	assert.Equal(t, 1, bobView.UnreadCount)
}
