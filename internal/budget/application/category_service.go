package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetManager/internal/budget/errors"
)

type BudgetLedgerInterface interface {
	RenameCategoryKey(oldName, newName, userID string) error
	CategorySpent(name string) (decimal.Decimal, error)
}

type CategoryService struct {
	repo            domain.CategoryRepository
	transactionRepo domain.TransactionRepository
	ledger          BudgetLedgerInterface
}

func NewCategoryService(repo domain.CategoryRepository, transactionRepo domain.TransactionRepository, ledger BudgetLedgerInterface) *CategoryService {
	return &CategoryService{repo: repo, transactionRepo: transactionRepo, ledger: ledger}
}

func (s *CategoryService) List() ([]domain.Category, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) Add(name, description string) (*domain.Category, error) {
	if name == "" {
		return nil, budgetErrors.NewValidationError("Category name is required")
	}
	exists, err := s.repo.DoesCategoryExistByName(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, budgetErrors.ErrDuplicateCategory
	}
	category := domain.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Rename cascades: the budget entry key and the category tag on transactions
// move with the registry row, so no reference is orphaned by the new name.
func (s *CategoryService) Rename(categoryID, name, description, userID string) (*domain.Category, error) {
	if name == "" {
		return nil, budgetErrors.NewValidationError("Category name is required")
	}
	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, budgetErrors.ErrCategoryNotFound
	}

	if name != category.Name {
		taken, err := s.repo.DoesCategoryExistByName(name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, budgetErrors.ErrDuplicateCategory
		}
		if err := s.ledger.RenameCategoryKey(category.Name, name, userID); err != nil {
			return nil, err
		}
		if err := s.transactionRepo.ReassignCategory(category.Name, name); err != nil {
			return nil, err
		}
	}

	category.Name = name
	category.Description = description
	category.UpdatedAt = time.Now()
	if err := s.repo.Update(*category); err != nil {
		return nil, err
	}
	return category, nil
}

// Remove refuses to delete a category that still backs spent budget figures
// or is tagged on live transactions, both reference it by name.
func (s *CategoryService) Remove(categoryID string) error {
	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return budgetErrors.ErrCategoryNotFound
	}

	spent, err := s.ledger.CategorySpent(category.Name)
	if err != nil {
		return err
	}
	if !spent.IsZero() {
		return budgetErrors.ErrCategoryReferenced
	}
	referenced, err := s.transactionRepo.ExistsByCategory(category.Name)
	if err != nil {
		return err
	}
	if referenced {
		return budgetErrors.ErrCategoryReferenced
	}
	return s.repo.Delete(categoryID)
}
