package application

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetManager/internal/budget/errors"
)

// BudgetService owns the single budget aggregate. Every mutation goes through
// the writer mutex, so two requests can never interleave a read-modify-write
// on the ledger, and the version counter rejects saves from stale readers.
type BudgetService struct {
	mu               sync.Mutex
	repo             domain.BudgetRepository
	categoryRepo     domain.CategoryRepository
	historyRepo      domain.HistoryRepository
	defaultAvailable decimal.Decimal
}

func NewBudgetService(repo domain.BudgetRepository, categoryRepo domain.CategoryRepository, historyRepo domain.HistoryRepository, defaultAvailable decimal.Decimal) *BudgetService {
	return &BudgetService{
		repo:             repo,
		categoryRepo:     categoryRepo,
		historyRepo:      historyRepo,
		defaultAvailable: defaultAvailable,
	}
}

func (s *BudgetService) GetBudget() (*domain.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// loadLocked returns the stored aggregate or the configured baseline when none
// exists yet. The baseline is not persisted until the first mutation.
func (s *BudgetService) loadLocked() (*domain.Budget, error) {
	budget, err := s.repo.Get()
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return domain.NewBudget(s.defaultAvailable), nil
	}
	if budget.Categories == nil {
		budget.Categories = map[string]domain.BudgetCategory{}
	}
	return budget, nil
}

func (s *BudgetService) saveLocked(budget *domain.Budget) error {
	budget.Version++
	budget.UpdatedAt = time.Now()
	return s.repo.Save(*budget)
}

// SaveBudget replaces the whole aggregate with the caller's copy. The caller
// must present the version it read; anything else means another editor saved
// in between and the write is rejected.
func (s *BudgetService) SaveBudget(budget domain.Budget, userID string) (*domain.Budget, error) {
	if budget.TotalAvailable.IsNegative() || budget.TotalSpent.IsNegative() {
		return nil, budgetErrors.NewValidationError("Budget totals must not be negative")
	}
	for name, category := range budget.Categories {
		if category.Allocated.IsNegative() || category.Spent.IsNegative() {
			return nil, budgetErrors.NewValidationError(fmt.Sprintf("Category %q figures must not be negative", name))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.loadLocked()
	if err != nil {
		return nil, err
	}
	if budget.Version != current.Version {
		return nil, budgetErrors.NewStaleWriteError(budget.Version, current.Version)
	}
	if budget.Categories == nil {
		budget.Categories = map[string]domain.BudgetCategory{}
	}
	budget.ID = current.ID
	budget.CreatedAt = current.CreatedAt
	if err := s.saveLocked(&budget); err != nil {
		return nil, err
	}
	s.recordHistory("budget_saved", fmt.Sprintf("Budget saved: available %s, spent %s, %d categories", budget.TotalAvailable, budget.TotalSpent, len(budget.Categories)), userID)
	return &budget, nil
}

// AddCategory inserts a new budget category and raises the available total by
// its allocation, so removing an untouched category restores the totals exactly.
func (s *BudgetService) AddCategory(name string, allocated decimal.Decimal, description, userID string) error {
	if name == "" {
		return budgetErrors.NewValidationError("Category name is required")
	}
	if allocated.IsNegative() {
		return budgetErrors.ErrNegativeAllocation
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	budget, err := s.loadLocked()
	if err != nil {
		return err
	}
	if _, exists := budget.Categories[name]; exists {
		return budgetErrors.ErrDuplicateCategory
	}
	budget.Categories[name] = domain.BudgetCategory{
		Allocated:   allocated,
		Spent:       decimal.Zero,
		Description: description,
		LastUpdated: time.Now(),
	}
	budget.TotalAvailable = budget.TotalAvailable.Add(allocated)
	if err := s.saveLocked(budget); err != nil {
		return err
	}
	s.recordHistory("category_added", fmt.Sprintf("Category %q added with allocation %s", name, allocated), userID)
	return nil
}

func (s *BudgetService) RemoveCategory(name, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	budget, err := s.loadLocked()
	if err != nil {
		return err
	}
	category, exists := budget.Categories[name]
	if !exists {
		return budgetErrors.ErrCategoryNotFound
	}
	delete(budget.Categories, name)
	budget.TotalAvailable = budget.TotalAvailable.Sub(category.Allocated)
	budget.TotalSpent = budget.TotalSpent.Sub(category.Spent)
	if err := s.saveLocked(budget); err != nil {
		return err
	}
	s.recordHistory("category_removed", fmt.Sprintf("Category %q removed, allocation %s and spent %s released", name, category.Allocated, category.Spent), userID)
	return nil
}

// ApplyTransaction reconciles a completed transaction into the ledger.
func (s *BudgetService) ApplyTransaction(transaction domain.Transaction, userID string) error {
	if !transaction.Contributes() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	budget, err := s.loadLocked()
	if err != nil {
		return err
	}
	s.applyLocked(budget, transaction)
	if err := s.saveLocked(budget); err != nil {
		return err
	}
	s.recordHistory("transaction_applied", fmt.Sprintf("Transaction %s (%s %s) reconciled", transaction.ID, transaction.Type, transaction.Amount), userID)
	return nil
}

// ReverseTransaction undoes the contribution of a completed transaction.
func (s *BudgetService) ReverseTransaction(transaction domain.Transaction, userID string) error {
	if !transaction.Contributes() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	budget, err := s.loadLocked()
	if err != nil {
		return err
	}
	budget.Reverse(transaction, time.Now())
	if err := s.saveLocked(budget); err != nil {
		return err
	}
	s.recordHistory("transaction_reversed", fmt.Sprintf("Transaction %s (%s %s) reversed", transaction.ID, transaction.Type, transaction.Amount), userID)
	return nil
}

// AmendTransaction swaps an old contribution for a new one in a single save,
// so an amend applies the delta rather than a flat re-add.
func (s *BudgetService) AmendTransaction(oldTransaction, newTransaction domain.Transaction, userID string) error {
	if !oldTransaction.Contributes() && !newTransaction.Contributes() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	budget, err := s.loadLocked()
	if err != nil {
		return err
	}
	now := time.Now()
	if oldTransaction.Contributes() {
		budget.Reverse(oldTransaction, now)
	}
	if newTransaction.Contributes() {
		s.applyLocked(budget, newTransaction)
	}
	if err := s.saveLocked(budget); err != nil {
		return err
	}
	s.recordHistory("transaction_amended", fmt.Sprintf("Transaction %s amended", newTransaction.ID), userID)
	return nil
}

// RenameCategoryKey moves the budget entry under its new name during a
// registry rename. Missing entries are fine, not every registry category has
// been spent against yet.
func (s *BudgetService) RenameCategoryKey(oldName, newName, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	budget, err := s.loadLocked()
	if err != nil {
		return err
	}
	category, exists := budget.Categories[oldName]
	if !exists {
		return nil
	}
	if _, taken := budget.Categories[newName]; taken {
		return budgetErrors.ErrDuplicateCategory
	}
	delete(budget.Categories, oldName)
	category.LastUpdated = time.Now()
	budget.Categories[newName] = category
	if err := s.saveLocked(budget); err != nil {
		return err
	}
	s.recordHistory("category_renamed", fmt.Sprintf("Budget category %q renamed to %q", oldName, newName), userID)
	return nil
}

// CategorySpent reports the spent figure tracked for a category name.
func (s *BudgetService) CategorySpent(name string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	budget, err := s.loadLocked()
	if err != nil {
		return decimal.Zero, err
	}
	if category, ok := budget.Categories[name]; ok {
		return category.Spent, nil
	}
	return decimal.Zero, nil
}

func (s *BudgetService) History(limit int) ([]domain.BudgetHistoryEntry, error) {
	entries, err := s.historyRepo.FindRecent(limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		return []domain.BudgetHistoryEntry{}, nil
	}
	return entries, nil
}

// applyLocked reconciles one completed contribution, consulting the registry
// for a description when the budget category is created lazily.
func (s *BudgetService) applyLocked(budget *domain.Budget, transaction domain.Transaction) {
	_, existed := budget.Categories[transaction.Category]
	budget.Apply(transaction, time.Now())
	if existed || transaction.Category == "" || transaction.Type != domain.TransactionTypeExpense {
		return
	}
	registered, err := s.categoryRepo.FindByName(transaction.Category)
	if err != nil {
		log.Printf("Error resolving category %q in registry: %v", transaction.Category, err)
		return
	}
	if registered != nil {
		category := budget.Categories[transaction.Category]
		category.Description = registered.Description
		budget.Categories[transaction.Category] = category
	}
}

// History appends are fire-and-forget, a failed audit write never rolls back
// the ledger mutation that triggered it.
func (s *BudgetService) recordHistory(action, details, userID string) {
	err := s.historyRepo.Append(domain.BudgetHistoryEntry{
		Action:    action,
		Details:   details,
		UserID:    userID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.Printf("Error appending budget history entry %q: %v", action, err)
	}
}
