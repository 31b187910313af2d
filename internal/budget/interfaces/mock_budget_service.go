package interfaces

import (
	"github.com/shopspring/decimal"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

type MockBudgetService struct {
	Budget     *domain.Budget
	Entries    []domain.BudgetHistoryEntry
	Err        error
	SavedWith  *domain.Budget
	RemovedKey string
}

func (m *MockBudgetService) GetBudget() (*domain.Budget, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Budget, nil
}

func (m *MockBudgetService) SaveBudget(budget domain.Budget, userID string) (*domain.Budget, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.SavedWith = &budget
	return &budget, nil
}

func (m *MockBudgetService) AddCategory(name string, allocated decimal.Decimal, description, userID string) error {
	return m.Err
}

func (m *MockBudgetService) RemoveCategory(name, userID string) error {
	m.RemovedKey = name
	return m.Err
}

func (m *MockBudgetService) History(limit int) ([]domain.BudgetHistoryEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Entries, nil
}
