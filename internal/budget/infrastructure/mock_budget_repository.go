package infrastructure

import (
	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

// MockBudgetRepository hands out deep copies like a real store would, so
// service-side mutations never leak into the stored aggregate.
type MockBudgetRepository struct {
	Budget    *domain.Budget
	GetErr    error
	SaveErr   error
	SaveCalls int
}

func (m *MockBudgetRepository) Get() (*domain.Budget, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Budget == nil {
		return nil, nil
	}
	budget := copyBudget(*m.Budget)
	return &budget, nil
}

func (m *MockBudgetRepository) Save(budget domain.Budget) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SaveCalls++
	stored := copyBudget(budget)
	if stored.ID == "" {
		stored.ID = "budget-1"
	}
	m.Budget = &stored
	return nil
}

func copyBudget(budget domain.Budget) domain.Budget {
	categories := make(map[string]domain.BudgetCategory, len(budget.Categories))
	for name, category := range budget.Categories {
		categories[name] = category
	}
	budget.Categories = categories
	return budget
}
