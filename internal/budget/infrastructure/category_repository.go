package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll() ([]domain.Category, error) {
	rows, err := r.db.Query(`SELECT id, name, description, created_at, updated_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		var description sql.NullString
		if err := rows.Scan(&category.ID, &category.Name, &description, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}
		category.Description = description.String
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(categoryID string) (*domain.Category, error) {
	return r.findOne(`SELECT id, name, description, created_at, updated_at FROM categories WHERE id = $1`, categoryID)
}

func (r *CategoryRepository) FindByName(name string) (*domain.Category, error) {
	return r.findOne(`SELECT id, name, description, created_at, updated_at FROM categories WHERE name = $1`, name)
}

func (r *CategoryRepository) findOne(query string, arg interface{}) (*domain.Category, error) {
	var category domain.Category
	var description sql.NullString
	err := r.db.QueryRow(query, arg).Scan(&category.ID, &category.Name, &description, &category.CreatedAt, &category.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	category.Description = description.String
	return &category, nil
}

func (r *CategoryRepository) DoesCategoryExistByName(name string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1)"
	err := r.db.QueryRow(query, name).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) Save(category domain.Category) error {
	_, err := r.db.Exec(
		`INSERT INTO categories (id, name, description, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		category.ID, category.Name, nullableString(category.Description), category.CreatedAt, category.UpdatedAt,
	)
	return err
}

func (r *CategoryRepository) Update(category domain.Category) error {
	_, err := r.db.Exec(
		`UPDATE categories SET name = $2, description = $3, updated_at = $4 WHERE id = $1`,
		category.ID, category.Name, nullableString(category.Description), category.UpdatedAt,
	)
	return err
}

func (r *CategoryRepository) Delete(categoryID string) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, categoryID)
	return err
}
