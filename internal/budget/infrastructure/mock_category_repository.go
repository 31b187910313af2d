package infrastructure

import (
	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

type MockCategoryRepository struct {
	Categories map[string]domain.Category
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{Categories: map[string]domain.Category{}}
}

func (m *MockCategoryRepository) FindAll() ([]domain.Category, error) {
	var categories []domain.Category
	for _, category := range m.Categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (m *MockCategoryRepository) FindByID(categoryID string) (*domain.Category, error) {
	category, ok := m.Categories[categoryID]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (m *MockCategoryRepository) FindByName(name string) (*domain.Category, error) {
	for _, category := range m.Categories {
		if category.Name == name {
			found := category
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) DoesCategoryExistByName(name string) (bool, error) {
	category, err := m.FindByName(name)
	if err != nil {
		return false, err
	}
	return category != nil, nil
}

func (m *MockCategoryRepository) Save(category domain.Category) error {
	m.Categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) Update(category domain.Category) error {
	m.Categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) Delete(categoryID string) error {
	delete(m.Categories, categoryID)
	return nil
}
