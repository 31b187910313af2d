package infrastructure

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(entry domain.BudgetHistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := r.db.Exec(
		`INSERT INTO budget_history (id, action, details, user_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.Action, entry.Details, entry.UserID, entry.CreatedAt,
	)
	return err
}

func (r *HistoryRepository) FindRecent(limit int) ([]domain.BudgetHistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(
		`SELECT id, action, details, user_id, created_at FROM budget_history ORDER BY created_at DESC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.BudgetHistoryEntry
	for rows.Next() {
		var entry domain.BudgetHistoryEntry
		if err := rows.Scan(&entry.ID, &entry.Action, &entry.Details, &entry.UserID, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
