package interfaces

import (
	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

type MockCategoryService struct {
	Categories []domain.Category
	Category   *domain.Category
	Err        error
}

func (m *MockCategoryService) List() ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}

func (m *MockCategoryService) Add(name, description string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Category, nil
}

func (m *MockCategoryService) Rename(categoryID, name, description, userID string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Category, nil
}

func (m *MockCategoryService) Remove(categoryID string) error {
	return m.Err
}
