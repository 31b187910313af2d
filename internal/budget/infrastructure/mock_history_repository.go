package infrastructure

import (
	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

type MockHistoryRepository struct {
	Entries   []domain.BudgetHistoryEntry
	AppendErr error
}

func (m *MockHistoryRepository) Append(entry domain.BudgetHistoryEntry) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Entries = append(m.Entries, entry)
	return nil
}

func (m *MockHistoryRepository) FindRecent(limit int) ([]domain.BudgetHistoryEntry, error) {
	if limit <= 0 || limit > len(m.Entries) {
		limit = len(m.Entries)
	}
	recent := make([]domain.BudgetHistoryEntry, 0, limit)
	for i := len(m.Entries) - 1; i >= len(m.Entries)-limit; i-- {
		recent = append(recent, m.Entries[i])
	}
	return recent, nil
}
