package service

import (
	"github.com/Aleale0612/swift-fin/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Debt        *DebtService
	Goal        *GoalService
	Report      *ReportService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		Debt:        NewDebtService(store),
		Goal:        NewGoalService(store),
		Report:      NewReportService(store),
	}
}
