package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sebuszqo/BudgetManager/internal/budget/errors"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

const maxDescriptionLength = 200

const (
	TransactionStatusPending    = "pending"
	TransactionStatusCompleted  = "completed"
	TransactionStatusProcessing = "processing"
	TransactionStatusCancelled  = "cancelled"
)

type TransactionFilter struct {
	Status    string
	Category  string
	StartDate time.Time
	EndDate   time.Time
}

type TransactionRepository interface {
	Save(transaction Transaction) error
	FindByID(transactionID string) (*Transaction, error)
	Find(filter TransactionFilter) ([]Transaction, error)
	Update(transaction Transaction) error
	Delete(transactionID string) error
	ExistsByCategory(category string) (bool, error)
	ReassignCategory(oldName, newName string) error
}

// Transaction is a single financial movement. Amount is always a positive
// magnitude, Type carries the direction. Only completed transactions
// participate in budget reconciliation.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status"`
	InvoiceID   *string         `json:"invoice_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TransactionTypeIncome || transactionType == TransactionTypeExpense
}

func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusProcessing, TransactionStatusCancelled:
		return true
	}
	return false
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return errors.ErrInvalidTransactionType
	}
	if !IsValidTransactionStatus(t.Status) {
		return errors.ErrInvalidTransactionStatus
	}
	if !t.Amount.IsPositive() {
		return errors.ErrNonPositiveAmount
	}
	if len(t.Description) > maxDescriptionLength {
		return errors.NewValidationError("Description must be of length less than 200")
	}
	return nil
}

func (t *Transaction) RoundToTwoDecimalPlaces() {
	t.Amount = t.Amount.Round(2)
}

// Contributes reports whether the transaction currently affects the budget.
func (t *Transaction) Contributes() bool {
	return t.Status == TransactionStatusCompleted
}

// TransactionFromSigned maps the legacy signed-amount convention onto the
// positive-magnitude one: negative amounts were expenses, everything else income.
func TransactionFromSigned(amount decimal.Decimal, description, category string, date time.Time, status string) Transaction {
	transaction := Transaction{
		Amount:      amount,
		Type:        TransactionTypeIncome,
		Description: description,
		Category:    category,
		Date:        date,
		Status:      status,
	}
	if amount.IsNegative() {
		transaction.Amount = amount.Neg()
		transaction.Type = TransactionTypeExpense
	}
	return transaction
}
