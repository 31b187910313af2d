package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BudgetRepository interface {
	Get() (*Budget, error)
	Save(budget Budget) error
}

// BudgetCategory tracks one category inside the budget aggregate. Allocated is
// only ever changed through an explicit budget save, transactions adjust Spent.
type BudgetCategory struct {
	Allocated   decimal.Decimal `json:"allocated"`
	Spent       decimal.Decimal `json:"spent"`
	Description string          `json:"description,omitempty"`
	LastUpdated time.Time       `json:"last_updated"`
}

// Budget is the single aggregate holding the running totals and the
// per-category figures. It is always read and written as a whole record.
type Budget struct {
	ID             string                    `json:"id"`
	TotalAvailable decimal.Decimal           `json:"total_available"`
	TotalSpent     decimal.Decimal           `json:"total_spent"`
	Categories     map[string]BudgetCategory `json:"categories"`
	FiscalYear     int                       `json:"fiscal_year,omitempty"`
	Version        int64                     `json:"version"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

func NewBudget(defaultAvailable decimal.Decimal) *Budget {
	return &Budget{
		TotalAvailable: defaultAvailable,
		TotalSpent:     decimal.Zero,
		Categories:     map[string]BudgetCategory{},
	}
}

// Apply reconciles a completed transaction into the aggregate. Income only
// raises the available total, expenses raise the spent totals and the tagged
// category. Non-completed transactions never reach this point.
func (b *Budget) Apply(t Transaction, now time.Time) {
	switch t.Type {
	case TransactionTypeIncome:
		b.TotalAvailable = b.TotalAvailable.Add(t.Amount)
	case TransactionTypeExpense:
		b.TotalSpent = b.TotalSpent.Add(t.Amount)
		if t.Category != "" {
			category := b.categoryOrNew(t.Category)
			category.Spent = category.Spent.Add(t.Amount)
			category.LastUpdated = now
			b.Categories[t.Category] = category
		}
	}
}

// Reverse undoes a previously applied contribution, used when a completed
// transaction is amended or retracted.
func (b *Budget) Reverse(t Transaction, now time.Time) {
	switch t.Type {
	case TransactionTypeIncome:
		b.TotalAvailable = b.TotalAvailable.Sub(t.Amount)
	case TransactionTypeExpense:
		b.TotalSpent = b.TotalSpent.Sub(t.Amount)
		if t.Category != "" {
			if category, ok := b.Categories[t.Category]; ok {
				category.Spent = category.Spent.Sub(t.Amount)
				category.LastUpdated = now
				b.Categories[t.Category] = category
			}
		}
	}
}

func (b *Budget) categoryOrNew(name string) BudgetCategory {
	if category, ok := b.Categories[name]; ok {
		return category
	}
	return BudgetCategory{Allocated: decimal.Zero, Spent: decimal.Zero}
}

// SpentByCategories sums the per-category spent figures, used to cross-check
// the aggregate total.
func (b *Budget) SpentByCategories() decimal.Decimal {
	total := decimal.Zero
	for _, category := range b.Categories {
		total = total.Add(category.Spent)
	}
	return total
}
