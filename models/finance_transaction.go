package models

// FinanceTransaction represents a ledger entry in the database
type FinanceTransaction struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"` // 'income' or 'expense'
	Source      string `json:"source"`
	SourceID    string `json:"sourceId"`
	OccurredAt  string `json:"occurredAt"`
	Amount      int64  `json:"amount"` // NGN
	Destination string `json:"destination"`
	Category    string `json:"category,omitempty"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// CreateFinanceTransactionRequest represents the request body for creating a ledger entry
// Example: {
//   "type": "income",
//   "source": "order",
//   "sourceId": "a3b1...",
//   "occurredAt": "2026-08-30T10:30:00Z",
//   "amount": 90000,
//   "destination": "GTBank",
//   "category": "ready-to-wear",
//   "notes": "Paid via transfer"
// }
type CreateFinanceTransactionRequest struct {
	Type        string `json:"type"`     // 'income' or 'expense'
	Source      string `json:"source"`   // e.g. "manual", "order", "booking-deposit", "refund"
	SourceID    string `json:"sourceId"` // ID of the source record (empty if not applicable)
	OccurredAt  string `json:"occurredAt,omitempty"` // RFC3339 timestamp, defaults to now
	Amount      int64  `json:"amount"`
	Destination string `json:"destination"`
	Category    string `json:"category,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// FinanceTransactionListResponse represents the response for the admin ledger list
type FinanceTransactionListResponse struct {
	Transactions []FinanceTransaction `json:"transactions"`
	TotalIncome  int64                `json:"totalIncome"`
	TotalExpense int64                `json:"totalExpense"`
}
