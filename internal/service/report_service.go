package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Aleale0612/swift-fin/internal/storage"
	"github.com/Aleale0612/swift-fin/internal/storage/transaction"
)

// trendMonths is how many months the report trend reaches back, including
// the reported month itself.
const trendMonths = 6

// ReportService derives the monthly report from transaction data.
type ReportService struct {
	storage *storage.Storage
}

// NewReportService creates a new ReportService.
func NewReportService(store *storage.Storage) *ReportService {
	return &ReportService{storage: store}
}

// MonthlySummary builds the report for the calendar month containing ref.
func (s *ReportService) MonthlySummary(ctx context.Context, userID uuid.UUID, ref time.Time) (*ReportSummary, error) {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	rows, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		UserID: userID,
		From:   &monthStart,
		To:     &monthEnd,
	})
	if err != nil {
		return nil, err
	}

	summary := &ReportSummary{
		TotalIncome:      decimal.Zero,
		TotalExpense:     decimal.Zero,
		TransactionCount: len(rows),
	}

	categoryTotals := make(map[string]*CategoryTotal)
	for _, row := range rows {
		switch row.Type {
		case transaction.TypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(row.Amount)
		case transaction.TypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(row.Amount)

			name := row.Category
			if name == "" {
				name = "Uncategorized"
			}
			entry, ok := categoryTotals[name]
			if !ok {
				entry = &CategoryTotal{Name: name, Total: decimal.Zero}
				categoryTotals[name] = entry
			}
			entry.Total = entry.Total.Add(row.Amount)
			entry.Count++
		}
	}
	summary.NetIncome = summary.TotalIncome.Sub(summary.TotalExpense)

	summary.Categories = make([]CategoryTotal, 0, len(categoryTotals))
	for _, entry := range categoryTotals {
		summary.Categories = append(summary.Categories, *entry)
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		if summary.Categories[i].Total.Equal(summary.Categories[j].Total) {
			return summary.Categories[i].Name < summary.Categories[j].Name
		}
		return summary.Categories[i].Total.GreaterThan(summary.Categories[j].Total)
	})

	trendStart := monthStart.AddDate(0, -(trendMonths - 1), 0)
	sums, err := s.storage.Transactions.SumByMonth(ctx, userID, trendStart, monthEnd)
	if err != nil {
		return nil, err
	}
	summary.MonthlyTrend = make([]MonthlyTrendPoint, len(sums))
	for i, sum := range sums {
		summary.MonthlyTrend[i] = MonthlyTrendPoint{
			Month:   sum.Month,
			Income:  sum.Income,
			Expense: sum.Expense,
		}
	}

	return summary, nil
}
