package domain

import "time"

type CategoryRepository interface {
	FindAll() ([]Category, error)
	FindByID(categoryID string) (*Category, error)
	FindByName(name string) (*Category, error)
	DoesCategoryExistByName(name string) (bool, error)
	Save(category Category) error
	Update(category Category) error
	Delete(categoryID string) error
}

// Category is registry data. Budget entries and transactions reference it by
// name, so renames have to cascade through both.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
