package report

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Aleale0612/swift-fin/internal/logging"
	"github.com/Aleale0612/swift-fin/internal/service"
)

// CategoryTotal is one expense category in the summary response.
type CategoryTotal struct {
	Name  string `json:"name" doc:"Category label"`
	Total string `json:"total" doc:"Decimal total spent in this category"`
	Count int    `json:"count" doc:"Number of transactions in this category"`
}

// MonthlyTrendPoint is one month of the income/expense trend.
type MonthlyTrendPoint struct {
	Month   string `json:"month" doc:"First day of the month, RFC3339"`
	Income  string `json:"income" doc:"Decimal income for the month"`
	Expense string `json:"expense" doc:"Decimal expense for the month"`
}

// SummaryInput is the Huma input for the monthly summary.
type SummaryInput struct {
	UserID string `header:"X-User-ID" required:"true" format:"uuid" doc:"Authenticated user id"`
	Month  string `query:"month" format:"date-time" doc:"Any instant inside the month to report on, defaults to now"`
}

// SummaryResponseBody is the response body for the monthly summary.
type SummaryResponseBody struct {
	TotalIncome      string              `json:"totalIncome" doc:"Decimal income for the month"`
	TotalExpense     string              `json:"totalExpense" doc:"Decimal expense for the month"`
	NetIncome        string              `json:"netIncome" doc:"Income minus expense"`
	TransactionCount int                 `json:"transactionCount" doc:"Number of transactions in the month"`
	Categories       []CategoryTotal     `json:"categories" doc:"Expense breakdown, biggest first"`
	MonthlyTrend     []MonthlyTrendPoint `json:"monthlyTrend" doc:"Recent months of income and expense"`
}

// SummaryOutput is the Huma output for the monthly summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// reportSummarizer is the interface for building monthly summaries.
type reportSummarizer interface {
	MonthlySummary(ctx context.Context, userID uuid.UUID, ref time.Time) (*service.ReportSummary, error)
}

// SummaryHandler handles GET /v1/report/summary.
type SummaryHandler struct {
	ReportService reportSummarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc reportSummarizer) *SummaryHandler {
	return &SummaryHandler{ReportService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-summary",
		Method:      http.MethodGet,
		Path:        "/v1/report/summary",
		Summary:     "Monthly report summary",
		Description: "Returns headline totals, category breakdown, and the recent trend for one month.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}

	ref := time.Now()
	if input.Month != "" {
		ref, err = time.Parse(time.RFC3339, input.Month)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid month", err)
		}
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("reportSummaryMs")
	}
	summary, err := h.ReportService.MonthlySummary(ctx, userID, ref)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build report summary", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", summary.TransactionCount)
	}

	resp := SummaryResponseBody{
		TotalIncome:      summary.TotalIncome.String(),
		TotalExpense:     summary.TotalExpense.String(),
		NetIncome:        summary.NetIncome.String(),
		TransactionCount: summary.TransactionCount,
		Categories:       make([]CategoryTotal, len(summary.Categories)),
		MonthlyTrend:     make([]MonthlyTrendPoint, len(summary.MonthlyTrend)),
	}
	for i, c := range summary.Categories {
		resp.Categories[i] = CategoryTotal{
			Name:  c.Name,
			Total: c.Total.String(),
			Count: c.Count,
		}
	}
	for i, p := range summary.MonthlyTrend {
		resp.MonthlyTrend[i] = MonthlyTrendPoint{
			Month:   p.Month.Format(time.RFC3339),
			Income:  p.Income.String(),
			Expense: p.Expense.String(),
		}
	}

	return &SummaryOutput{Body: resp}, nil
}
