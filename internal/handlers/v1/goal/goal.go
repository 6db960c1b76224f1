package goal

import (
	"time"

	"github.com/Aleale0612/swift-fin/internal/service"
)

// Goal is the API response model for a savings goal.
type Goal struct {
	ID        string `json:"id" doc:"Goal UUID"`
	Title     string `json:"title" doc:"What the goal is for"`
	Target    string `json:"target" doc:"Decimal target amount in rupiah"`
	Current   string `json:"current" doc:"Decimal amount saved so far"`
	Progress  string `json:"progress" doc:"Percent saved, capped at 100"`
	URL       string `json:"url,omitempty" doc:"Link to the item being saved for"`
	Type      string `json:"type" doc:"short or long"`
	Category  string `json:"category,omitempty" doc:"Free-form category label"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(g service.Goal) Goal {
	return Goal{
		ID:        g.ID.String(),
		Title:     g.Title,
		Target:    g.Target.String(),
		Current:   g.Current.String(),
		Progress:  g.Progress().Round(1).String(),
		URL:       g.URL,
		Type:      g.Type,
		Category:  g.Category,
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
	}
}
