package debt

import (
	"time"

	"github.com/Aleale0612/swift-fin/internal/service"
)

// Debt is the API response model for a tracked obligation.
type Debt struct {
	ID          string `json:"id" doc:"Debt UUID"`
	Name        string `json:"name" doc:"Who the money is owed to or by"`
	Type        string `json:"type" doc:"debt or receivable"`
	Amount      string `json:"amount" doc:"Decimal amount in rupiah"`
	Description string `json:"description,omitempty" doc:"Free-form note"`
	DueDate     string `json:"dueDate,omitempty" doc:"RFC3339 due date, absent when none is set"`
	Status      string `json:"status" doc:"unpaid, partial, or paid"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(d service.Debt) Debt {
	out := Debt{
		ID:          d.ID.String(),
		Name:        d.Name,
		Type:        d.Type,
		Amount:      d.Amount.String(),
		Description: d.Description,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
	if d.DueDate != nil {
		out.DueDate = d.DueDate.Format(time.RFC3339)
	}
	return out
}
