package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal aggregates one expense category for the report view.
type CategoryTotal struct {
	Name  string
	Total decimal.Decimal
	Count int
}

// MonthlyTrendPoint holds one month of the income/expense trend chart.
type MonthlyTrendPoint struct {
	Month   time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// ReportSummary mirrors the dashboard's monthly report: headline totals,
// expense breakdown per category, and the recent trend.
type ReportSummary struct {
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
	NetIncome        decimal.Decimal
	TransactionCount int
	Categories       []CategoryTotal
	MonthlyTrend     []MonthlyTrendPoint
}
