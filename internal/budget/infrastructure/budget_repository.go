package infrastructure

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

// BudgetRepository stores the aggregate as one row, categories as jsonb. The
// original system read and wrote the record wholesale and so does this.
type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Get() (*domain.Budget, error) {
	var budget domain.Budget
	var categoriesJSON []byte
	err := r.db.QueryRow(
		`SELECT id, total_available, total_spent, categories, fiscal_year, version, created_at, updated_at
         FROM budgets ORDER BY created_at DESC LIMIT 1`,
	).Scan(&budget.ID, &budget.TotalAvailable, &budget.TotalSpent, &categoriesJSON,
		&budget.FiscalYear, &budget.Version, &budget.CreatedAt, &budget.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(categoriesJSON, &budget.Categories); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (r *BudgetRepository) Save(budget domain.Budget) error {
	if budget.ID == "" {
		budget.ID = uuid.NewString()
		budget.CreatedAt = time.Now()
	}
	categoriesJSON, err := json.Marshal(budget.Categories)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO budgets (id, total_available, total_spent, categories, fiscal_year, version, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
         ON CONFLICT (id) DO UPDATE SET
            total_available = EXCLUDED.total_available,
            total_spent = EXCLUDED.total_spent,
            categories = EXCLUDED.categories,
            fiscal_year = EXCLUDED.fiscal_year,
            version = EXCLUDED.version,
            updated_at = EXCLUDED.updated_at`,
		budget.ID, budget.TotalAvailable, budget.TotalSpent, categoriesJSON,
		budget.FiscalYear, budget.Version, budget.CreatedAt, budget.UpdatedAt,
	)
	return err
}
