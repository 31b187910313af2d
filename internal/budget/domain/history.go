package domain

import "time"

type HistoryRepository interface {
	Append(entry BudgetHistoryEntry) error
	FindRecent(limit int) ([]BudgetHistoryEntry, error)
}

// BudgetHistoryEntry is an append-only audit record of a ledger mutation.
type BudgetHistoryEntry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
