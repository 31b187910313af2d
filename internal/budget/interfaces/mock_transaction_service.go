package interfaces

import (
	"github.com/sebuszqo/BudgetManager/internal/budget/application"
	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

type MockTransactionService struct {
	Transaction  *domain.Transaction
	Transactions []domain.Transaction
	ListedWith   domain.TransactionFilter
	Err          error
}

func (m *MockTransactionService) Record(transaction *domain.Transaction, userID string) error {
	if m.Err != nil {
		return m.Err
	}
	transaction.ID = "generated-id"
	return nil
}

func (m *MockTransactionService) Amend(transactionID string, patch application.TransactionPatch, userID string) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transaction, nil
}

func (m *MockTransactionService) Retract(transactionID, userID string) error {
	return m.Err
}

func (m *MockTransactionService) Get(transactionID string) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transaction, nil
}

func (m *MockTransactionService) List(filter domain.TransactionFilter) ([]domain.Transaction, error) {
	m.ListedWith = filter
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transactions, nil
}
