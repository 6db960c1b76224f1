package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Aleale0612/swift-fin/internal/service"
)

type mockReportSummarizer struct {
	mock.Mock
}

func (m *mockReportSummarizer) MonthlySummary(ctx context.Context, userID uuid.UUID, ref time.Time) (*service.ReportSummary, error) {
	args := m.Called(ctx, userID, ref)
	summary, _ := args.Get(0).(*service.ReportSummary)
	return summary, args.Error(1)
}

func newTestAPI(t *testing.T, svc reportSummarizer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewSummaryHandler(svc).Register(api)
	return api
}

func userHeader(userID uuid.UUID) string {
	return "X-User-ID: " + userID.String()
}

func TestHTTP_Summary_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	ref := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockReportSummarizer)
	mockSvc.On("MonthlySummary", mock.Anything, userID, mock.MatchedBy(func(at time.Time) bool {
		return at.Equal(ref)
	})).Return(&service.ReportSummary{
		TotalIncome:      decimal.RequireFromString("8000000"),
		TotalExpense:     decimal.RequireFromString("5000000"),
		NetIncome:        decimal.RequireFromString("3000000"),
		TransactionCount: 12,
		Categories: []service.CategoryTotal{
			{Name: "Food", Total: decimal.RequireFromString("3000000"), Count: 8},
			{Name: "Transport", Total: decimal.RequireFromString("2000000"), Count: 4},
		},
		MonthlyTrend: []service.MonthlyTrendPoint{
			{
				Month:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				Income:  decimal.RequireFromString("8000000"),
				Expense: decimal.RequireFromString("5000000"),
			},
		},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/report/summary?month="+ref.Format(time.RFC3339), userHeader(userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "8000000", body.TotalIncome)
	assert.Equal(t, "5000000", body.TotalExpense)
	assert.Equal(t, "3000000", body.NetIncome)
	assert.Equal(t, 12, body.TransactionCount)
	assert.Len(t, body.Categories, 2)
	assert.Equal(t, "Food", body.Categories[0].Name)
	assert.Len(t, body.MonthlyTrend, 1)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Summary_MonthDefaultsToNow(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	before := time.Now()

	mockSvc := new(mockReportSummarizer)
	mockSvc.On("MonthlySummary", mock.Anything, userID, mock.MatchedBy(func(at time.Time) bool {
		return !at.Before(before) && !at.After(time.Now())
	})).Return(&service.ReportSummary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		NetIncome:    decimal.Zero,
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/report/summary", userHeader(userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Summary_ServiceError(t *testing.T) {
	mockSvc := new(mockReportSummarizer)
	mockSvc.On("MonthlySummary", mock.Anything, mock.Anything, mock.Anything).
		Return((*service.ReportSummary)(nil), errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Get("/v1/report/summary", userHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
