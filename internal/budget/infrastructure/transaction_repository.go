package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction domain.Transaction) error {
	_, err := r.db.Exec(
		`INSERT INTO transactions (id, amount, type, description, category, date, status, invoice_id, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		transaction.ID, transaction.Amount, transaction.Type, transaction.Description,
		nullableString(transaction.Category), transaction.Date, transaction.Status,
		transaction.InvoiceID, transaction.CreatedAt,
	)
	return err
}

func (r *TransactionRepository) FindByID(transactionID string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var category sql.NullString
	err := r.db.QueryRow(
		`SELECT id, amount, type, description, category, date, status, invoice_id, created_at
         FROM transactions WHERE id = $1`, transactionID,
	).Scan(&transaction.ID, &transaction.Amount, &transaction.Type, &transaction.Description,
		&category, &transaction.Date, &transaction.Status, &transaction.InvoiceID, &transaction.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	transaction.Category = category.String
	return &transaction, nil
}

func (r *TransactionRepository) Find(filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query := `SELECT id, amount, type, description, category, date, status, invoice_id, created_at FROM transactions`
	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if !filter.StartDate.IsZero() {
		args = append(args, filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if !filter.EndDate.IsZero() {
		args = append(args, filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}
	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}
	query += " ORDER BY date DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		var category sql.NullString
		if err := rows.Scan(&transaction.ID, &transaction.Amount, &transaction.Type, &transaction.Description,
			&category, &transaction.Date, &transaction.Status, &transaction.InvoiceID, &transaction.CreatedAt); err != nil {
			return nil, err
		}
		transaction.Category = category.String
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) Update(transaction domain.Transaction) error {
	_, err := r.db.Exec(
		`UPDATE transactions SET amount = $2, type = $3, description = $4, category = $5, date = $6, status = $7, invoice_id = $8
         WHERE id = $1`,
		transaction.ID, transaction.Amount, transaction.Type, transaction.Description,
		nullableString(transaction.Category), transaction.Date, transaction.Status, transaction.InvoiceID,
	)
	return err
}

func (r *TransactionRepository) Delete(transactionID string) error {
	_, err := r.db.Exec(`DELETE FROM transactions WHERE id = $1`, transactionID)
	return err
}

func (r *TransactionRepository) ExistsByCategory(category string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM transactions WHERE category = $1)"
	err := r.db.QueryRow(query, category).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *TransactionRepository) ReassignCategory(oldName, newName string) error {
	_, err := r.db.Exec(`UPDATE transactions SET category = $2 WHERE category = $1`, oldName, newName)
	return err
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
