package transaction

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Type        string `json:"type" doc:"income or expense"`
	Amount      string `json:"amount" doc:"Decimal amount in rupiah"`
	Description string `json:"description" doc:"What the money moved for"`
	Category    string `json:"category,omitempty" doc:"Free-form category label"`
	Date        string `json:"date" doc:"RFC3339 transaction date"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}
