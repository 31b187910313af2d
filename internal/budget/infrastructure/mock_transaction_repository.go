package infrastructure

import (
	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
)

type MockTransactionRepository struct {
	Transactions map[string]domain.Transaction
	SaveErr      error
	UpdateErr    error
	DeleteErr    error
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{Transactions: map[string]domain.Transaction{}}
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Transactions[transaction.ID] = transaction
	return nil
}

func (m *MockTransactionRepository) FindByID(transactionID string) (*domain.Transaction, error) {
	transaction, ok := m.Transactions[transactionID]
	if !ok {
		return nil, nil
	}
	return &transaction, nil
}

func (m *MockTransactionRepository) Find(filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for _, transaction := range m.Transactions {
		if filter.Status != "" && transaction.Status != filter.Status {
			continue
		}
		if filter.Category != "" && transaction.Category != filter.Category {
			continue
		}
		if !filter.StartDate.IsZero() && transaction.Date.Before(filter.StartDate) {
			continue
		}
		if !filter.EndDate.IsZero() && transaction.Date.After(filter.EndDate) {
			continue
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

func (m *MockTransactionRepository) Update(transaction domain.Transaction) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.Transactions[transaction.ID] = transaction
	return nil
}

func (m *MockTransactionRepository) Delete(transactionID string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Transactions, transactionID)
	return nil
}

func (m *MockTransactionRepository) ExistsByCategory(category string) (bool, error) {
	for _, transaction := range m.Transactions {
		if transaction.Category == category {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockTransactionRepository) ReassignCategory(oldName, newName string) error {
	for id, transaction := range m.Transactions {
		if transaction.Category == oldName {
			transaction.Category = newName
			m.Transactions[id] = transaction
		}
	}
	return nil
}
