package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetManager/internal/budget/errors"
)

type BudgetServiceInterface interface {
	ApplyTransaction(transaction domain.Transaction, userID string) error
	ReverseTransaction(transaction domain.Transaction, userID string) error
	AmendTransaction(oldTransaction, newTransaction domain.Transaction, userID string) error
}

// TransactionPatch carries the fields an amend may change. Nil fields keep
// their stored value.
type TransactionPatch struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Type        *string          `json:"type,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Status      *string          `json:"status,omitempty"`
	InvoiceID   *string          `json:"invoice_id,omitempty"`
}

type TransactionService struct {
	repo          domain.TransactionRepository
	budgetService BudgetServiceInterface
}

func NewTransactionService(repo domain.TransactionRepository, budgetService BudgetServiceInterface) *TransactionService {
	return &TransactionService{repo: repo, budgetService: budgetService}
}

// Record persists a transaction and, when it is already completed, reconciles
// its contribution into the budget.
func (s *TransactionService) Record(transaction *domain.Transaction, userID string) error {
	transaction.ID = uuid.NewString()
	transaction.CreatedAt = time.Now()
	if transaction.Date.IsZero() {
		transaction.Date = transaction.CreatedAt
	}
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return err
	}
	if err := s.repo.Save(*transaction); err != nil {
		return err
	}
	return s.budgetService.ApplyTransaction(*transaction, userID)
}

// Amend updates a stored transaction and applies the delta between its old
// and new contributions. A status moving out of completed only reverses, one
// moving into completed only applies.
func (s *TransactionService) Amend(transactionID string, patch TransactionPatch, userID string) (*domain.Transaction, error) {
	existing, err := s.repo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, budgetErrors.ErrTransactionNotFound
	}

	updated := *existing
	if patch.Amount != nil {
		updated.Amount = *patch.Amount
	}
	if patch.Type != nil {
		updated.Type = *patch.Type
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Category != nil {
		updated.Category = *patch.Category
	}
	if patch.Date != nil {
		updated.Date = *patch.Date
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.InvoiceID != nil {
		updated.InvoiceID = patch.InvoiceID
	}
	updated.RoundToTwoDecimalPlaces()
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(updated); err != nil {
		return nil, err
	}
	if err := s.budgetService.AmendTransaction(*existing, updated, userID); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Retract deletes a transaction, reversing its contribution first when it was
// completed. A second retract of the same id reports not-found and leaves the
// budget untouched.
func (s *TransactionService) Retract(transactionID, userID string) error {
	existing, err := s.repo.FindByID(transactionID)
	if err != nil {
		return err
	}
	if existing == nil {
		return budgetErrors.ErrTransactionNotFound
	}
	if err := s.repo.Delete(transactionID); err != nil {
		return err
	}
	return s.budgetService.ReverseTransaction(*existing, userID)
}

func (s *TransactionService) Get(transactionID string) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, budgetErrors.ErrTransactionNotFound
	}
	return transaction, nil
}

func (s *TransactionService) List(filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if filter.Status != "" && !domain.IsValidTransactionStatus(filter.Status) {
		return nil, budgetErrors.ErrInvalidTransactionStatus
	}
	transactions, err := s.repo.Find(filter)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}
