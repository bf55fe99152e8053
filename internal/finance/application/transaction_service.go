package application

import (
	"strings"

	"github.com/Desai0Aryan/finance-tracker/internal/finance/domain"
	financeErrors "github.com/Desai0Aryan/finance-tracker/internal/finance/errors"
	"github.com/google/uuid"
)

// TransactionService is the validating boundary in front of the transaction
// repository. The repository itself accepts anything; everything the user
// could get wrong is rejected here.
type TransactionService struct {
	repo       domain.TransactionRepository
	categories domain.CategoryRepository
}

func NewTransactionService(repo domain.TransactionRepository, categories domain.CategoryRepository) *TransactionService {
	return &TransactionService{repo: repo, categories: categories}
}

// CreateTransaction assigns a fresh id, rounds the amount to two decimal
// places, validates the fields and checks that the referenced category
// exists for this user and type.
func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) error {
	transaction.ID = uuid.NewString()
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return err
	}

	ok, err := s.categoryExists(transaction.UserID, transaction.Category, transaction.Type)
	if err != nil {
		return err
	}
	if !ok {
		return financeErrors.ErrUnknownCategory
	}

	return s.repo.SaveTransaction(*transaction)
}

// EditTransaction merges the patch into the user's transaction. Editing a
// transaction the user does not own, or one that no longer exists, is a
// silent no-op.
func (s *TransactionService) EditTransaction(userID, transactionID string, patch domain.TransactionPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	current, ok, err := s.findOwned(userID, transactionID)
	if err != nil || !ok {
		return err
	}

	// A patched category (or type) must still resolve against the user's
	// category set.
	if patch.Category != nil || patch.Type != nil {
		category := current.Category
		categoryType := current.Type
		if patch.Category != nil {
			category = *patch.Category
		}
		if patch.Type != nil {
			categoryType = *patch.Type
		}
		exists, err := s.categoryExists(userID, category, categoryType)
		if err != nil {
			return err
		}
		if !exists {
			return financeErrors.ErrUnknownCategory
		}
	}

	return s.repo.UpdateTransaction(transactionID, patch)
}

// DeleteTransaction removes the user's transaction. Unknown or foreign ids
// are a silent no-op.
func (s *TransactionService) DeleteTransaction(userID, transactionID string) error {
	_, ok, err := s.findOwned(userID, transactionID)
	if err != nil || !ok {
		return err
	}
	return s.repo.DeleteTransaction(transactionID)
}

// GetUserTransactions returns the user's transactions newest-first.
func (s *TransactionService) GetUserTransactions(userID string) ([]domain.Transaction, error) {
	return s.repo.FindTransactionsByUser(userID)
}

func (s *TransactionService) findOwned(userID, transactionID string) (domain.Transaction, bool, error) {
	transactions, err := s.repo.FindTransactionsByUser(userID)
	if err != nil {
		return domain.Transaction{}, false, err
	}
	for _, t := range transactions {
		if t.ID == transactionID {
			return t, true, nil
		}
	}
	return domain.Transaction{}, false, nil
}

func (s *TransactionService) categoryExists(userID, name, categoryType string) (bool, error) {
	categories, err := s.categories.FindCategoriesByUser(userID)
	if err != nil {
		return false, err
	}
	for _, c := range categories {
		if c.Type == categoryType && strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}
