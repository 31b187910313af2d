package application

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetManager/internal/budget/errors"
	"github.com/sebuszqo/BudgetManager/internal/budget/infrastructure"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(dec(expected)), "expected %s, got %s", expected, actual)
}

func newBudgetService() (*BudgetService, *infrastructure.MockBudgetRepository, *infrastructure.MockHistoryRepository) {
	budgetRepo := &infrastructure.MockBudgetRepository{}
	historyRepo := &infrastructure.MockHistoryRepository{}
	categoryRepo := infrastructure.NewMockCategoryRepository()
	service := NewBudgetService(budgetRepo, categoryRepo, historyRepo, decimal.Zero)
	return service, budgetRepo, historyRepo
}

func seedBudget(repo *infrastructure.MockBudgetRepository, available, spent string, categories map[string]domain.BudgetCategory) {
	if categories == nil {
		categories = map[string]domain.BudgetCategory{}
	}
	repo.Budget = &domain.Budget{
		ID:             "budget-1",
		TotalAvailable: dec(available),
		TotalSpent:     dec(spent),
		Categories:     categories,
		Version:        1,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

func TestGetBudget_ReturnsBaselineWhenEmpty(t *testing.T) {
	budgetRepo := &infrastructure.MockBudgetRepository{}
	historyRepo := &infrastructure.MockHistoryRepository{}
	service := NewBudgetService(budgetRepo, infrastructure.NewMockCategoryRepository(), historyRepo, dec("50000"))

	budget, err := service.GetBudget()
	assert.NoError(t, err)
	assertDecimal(t, "50000", budget.TotalAvailable)
	assertDecimal(t, "0", budget.TotalSpent)
	assert.Empty(t, budget.Categories)
	// the baseline is not persisted by a plain read
	assert.Equal(t, 0, budgetRepo.SaveCalls)
}

func TestSaveBudget_RejectsStaleVersion(t *testing.T) {
	service, budgetRepo, _ := newBudgetService()
	seedBudget(budgetRepo, "1000", "0", nil)

	first, err := service.GetBudget()
	assert.NoError(t, err)
	second, err := service.GetBudget()
	assert.NoError(t, err)

	first.TotalAvailable = dec("1500")
	_, err = service.SaveBudget(*first, "user-1")
	assert.NoError(t, err)

	second.Categories["Travel"] = domain.BudgetCategory{Allocated: dec("200"), Spent: decimal.Zero}
	_, err = service.SaveBudget(*second, "user-2")
	assert.True(t, budgetErrors.IsStaleWriteError(err), "expected StaleWriteError, got %v", err)

	stored, err := service.GetBudget()
	assert.NoError(t, err)
	assertDecimal(t, "1500", stored.TotalAvailable)
	assert.NotContains(t, stored.Categories, "Travel")
}

// Two writers starting from the same version race: exactly one wins, the
// other gets a stale-write rejection, nothing is silently lost.
func TestSaveBudget_ConcurrentWritersOneWins(t *testing.T) {
	service, budgetRepo, _ := newBudgetService()
	seedBudget(budgetRepo, "1000", "0", nil)

	first, err := service.GetBudget()
	assert.NoError(t, err)
	second, err := service.GetBudget()
	assert.NoError(t, err)
	first.Categories["Travel"] = domain.BudgetCategory{Allocated: dec("100"), Spent: decimal.Zero}
	second.Categories["Supplies"] = domain.BudgetCategory{Allocated: dec("200"), Spent: decimal.Zero}

	results := make(chan error, 2)
	go func() {
		_, err := service.SaveBudget(*first, "editor-1")
		results <- err
	}()
	go func() {
		_, err := service.SaveBudget(*second, "editor-2")
		results <- err
	}()

	var stale, succeeded int
	for i := 0; i < 2; i++ {
		err := <-results
		if err == nil {
			succeeded++
		} else if budgetErrors.IsStaleWriteError(err) {
			stale++
		} else {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, stale)

	stored, err := service.GetBudget()
	assert.NoError(t, err)
	assert.Len(t, stored.Categories, 1)
}

func TestSaveBudget_RejectsNegativeFigures(t *testing.T) {
	service, budgetRepo, _ := newBudgetService()
	seedBudget(budgetRepo, "1000", "0", nil)

	budget, err := service.GetBudget()
	assert.NoError(t, err)
	budget.TotalSpent = dec("-1")
	_, err = service.SaveBudget(*budget, "user-1")
	assert.True(t, budgetErrors.IsValidationError(err))
}

func TestAddRemoveCategory_RoundTripRestoresTotals(t *testing.T) {
	service, budgetRepo, _ := newBudgetService()
	seedBudget(budgetRepo, "1000", "250", map[string]domain.BudgetCategory{
		"Supplies": {Allocated: dec("500"), Spent: dec("250")},
	})

	err := service.AddCategory("Travel", dec("300"), "travel budget", "user-1")
	assert.NoError(t, err)

	budget, err := service.GetBudget()
	assert.NoError(t, err)
	assertDecimal(t, "1300", budget.TotalAvailable)
	assertDecimal(t, "300", budget.Categories["Travel"].Allocated)

	err = service.RemoveCategory("Travel", "user-1")
	assert.NoError(t, err)

	budget, err = service.GetBudget()
	assert.NoError(t, err)
	assertDecimal(t, "1000", budget.TotalAvailable)
	assertDecimal(t, "250", budget.TotalSpent)
	assert.NotContains(t, budget.Categories, "Travel")
}

func TestAddCategory_DuplicateRejected(t *testing.T) {
	service, budgetRepo, _ := newBudgetService()
	seedBudget(budgetRepo, "1000", "0", map[string]domain.BudgetCategory{
		"Supplies": {Allocated: dec("500"), Spent: decimal.Zero},
	})

	err := service.AddCategory("Supplies", dec("100"), "", "user-1")
	assert.True(t, budgetErrors.IsConflictError(err), "expected ConflictError, got %v", err)
}

func TestRemoveCategory_MissingRejected(t *testing.T) {
	service, budgetRepo, _ := newBudgetService()
	seedBudget(budgetRepo, "1000", "0", nil)

	err := service.RemoveCategory("Ghost", "user-1")
	assert.True(t, budgetErrors.IsNotFoundError(err), "expected NotFoundError, got %v", err)
}

func TestRemoveCategory_ReleasesSpentFromTotals(t *testing.T) {
	service, budgetRepo, _ := newBudgetService()
	seedBudget(budgetRepo, "1000", "150", map[string]domain.BudgetCategory{
		"Supplies": {Allocated: dec("500"), Spent: dec("150")},
	})

	err := service.RemoveCategory("Supplies", "user-1")
	assert.NoError(t, err)

	budget, err := service.GetBudget()
	assert.NoError(t, err)
	assertDecimal(t, "500", budget.TotalAvailable)
	assertDecimal(t, "0", budget.TotalSpent)
}

func TestLedgerMutations_AppendHistory(t *testing.T) {
	service, budgetRepo, historyRepo := newBudgetService()
	seedBudget(budgetRepo, "1000", "0", nil)

	assert.NoError(t, service.AddCategory("Travel", dec("100"), "", "user-1"))
	assert.NoError(t, service.RemoveCategory("Travel", "user-1"))

	assert.Len(t, historyRepo.Entries, 2)
	assert.Equal(t, "category_added", historyRepo.Entries[0].Action)
	assert.Equal(t, "category_removed", historyRepo.Entries[1].Action)
	assert.Equal(t, "user-1", historyRepo.Entries[0].UserID)
}

func TestHistoryFailure_DoesNotBlockMutation(t *testing.T) {
	service, budgetRepo, historyRepo := newBudgetService()
	seedBudget(budgetRepo, "1000", "0", nil)
	historyRepo.AppendErr = assert.AnError

	err := service.AddCategory("Travel", dec("100"), "", "user-1")
	assert.NoError(t, err)

	budget, err := service.GetBudget()
	assert.NoError(t, err)
	assert.Contains(t, budget.Categories, "Travel")
}

func TestRenameCategoryKey_MovesEntry(t *testing.T) {
	service, budgetRepo, _ := newBudgetService()
	seedBudget(budgetRepo, "1000", "150", map[string]domain.BudgetCategory{
		"Supplies": {Allocated: dec("500"), Spent: dec("150")},
	})

	err := service.RenameCategoryKey("Supplies", "Office Supplies", "user-1")
	assert.NoError(t, err)

	budget, err := service.GetBudget()
	assert.NoError(t, err)
	assert.NotContains(t, budget.Categories, "Supplies")
	assertDecimal(t, "150", budget.Categories["Office Supplies"].Spent)
	assertDecimal(t, "500", budget.Categories["Office Supplies"].Allocated)
}
