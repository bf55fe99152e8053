package interfaces

import (
	"github.com/Desai0Aryan/finance-tracker/internal/finance/domain"
)

type MockTransactionService struct {
	CreateFunc func(transaction *domain.Transaction) error
	EditFunc   func(userID, transactionID string, patch domain.TransactionPatch) error
	DeleteFunc func(userID, transactionID string) error
	ListFunc   func(userID string) ([]domain.Transaction, error)
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if m.CreateFunc == nil {
		panic("CreateFunc not set")
	}
	return m.CreateFunc(transaction)
}

func (m *MockTransactionService) EditTransaction(userID, transactionID string, patch domain.TransactionPatch) error {
	if m.EditFunc == nil {
		panic("EditFunc not set")
	}
	return m.EditFunc(userID, transactionID, patch)
}

func (m *MockTransactionService) DeleteTransaction(userID, transactionID string) error {
	if m.DeleteFunc == nil {
		panic("DeleteFunc not set")
	}
	return m.DeleteFunc(userID, transactionID)
}

func (m *MockTransactionService) GetUserTransactions(userID string) ([]domain.Transaction, error) {
	if m.ListFunc == nil {
		panic("ListFunc not set")
	}
	return m.ListFunc(userID)
}
