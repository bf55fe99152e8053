package application

import (
	"testing"
	"time"

	"github.com/Desai0Aryan/finance-tracker/internal/finance/domain"
	financeErrors "github.com/Desai0Aryan/finance-tracker/internal/finance/errors"
	"github.com/Desai0Aryan/finance-tracker/internal/finance/infrastructure"
	"github.com/stretchr/testify/assert"
)

func newTransactionServiceWithDefaults(t *testing.T, userID string) (*TransactionService, *infrastructure.MemoryStore) {
	t.Helper()
	store := infrastructure.NewMemoryStore()
	assert.NoError(t, store.EnsureDefaultCategories(userID))
	return NewTransactionService(store, store), store
}

func validTransaction(userID string) domain.Transaction {
	return domain.Transaction{
		UserID:      userID,
		Description: "weekly groceries",
		Amount:      82.499,
		Type:        domain.TypeExpense,
		Category:    "Food",
		Date:        time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC),
		Notes:       "supermarket",
	}
}

func TestCreateTransaction_AssignsFreshUniqueID(t *testing.T) {
	service, _ := newTransactionServiceWithDefaults(t, "u1")

	first := validTransaction("u1")
	second := validTransaction("u1")
	assert.NoError(t, service.CreateTransaction(&first))
	assert.NoError(t, service.CreateTransaction(&second))

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateTransaction_RoundTripPreservesFields(t *testing.T) {
	service, _ := newTransactionServiceWithDefaults(t, "u1")

	transaction := validTransaction("u1")
	assert.NoError(t, service.CreateTransaction(&transaction))

	transactions, err := service.GetUserTransactions("u1")
	assert.NoError(t, err)
	assert.Len(t, transactions, 1)

	saved := transactions[0]
	assert.Equal(t, transaction.ID, saved.ID)
	assert.Equal(t, "u1", saved.UserID)
	assert.Equal(t, "weekly groceries", saved.Description)
	assert.Equal(t, 82.50, saved.Amount) // rounded to two decimal places
	assert.Equal(t, domain.TypeExpense, saved.Type)
	assert.Equal(t, "Food", saved.Category)
	assert.Equal(t, "supermarket", saved.Notes)
}

func TestCreateTransaction_ValidationFailures(t *testing.T) {
	service, _ := newTransactionServiceWithDefaults(t, "u1")

	tests := []struct {
		name   string
		mutate func(*domain.Transaction)
	}{
		{"empty description", func(tx *domain.Transaction) { tx.Description = "  " }},
		{"zero amount", func(tx *domain.Transaction) { tx.Amount = 0 }},
		{"negative amount", func(tx *domain.Transaction) { tx.Amount = -5 }},
		{"invalid type", func(tx *domain.Transaction) { tx.Type = "transfer" }},
		{"empty category", func(tx *domain.Transaction) { tx.Category = "" }},
		{"zero date", func(tx *domain.Transaction) { tx.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transaction := validTransaction("u1")
			tt.mutate(&transaction)

			err := service.CreateTransaction(&transaction)
			assert.True(t, financeErrors.IsValidationError(err))

			transactions, _ := service.GetUserTransactions("u1")
			assert.Empty(t, transactions)
		})
	}
}

func TestCreateTransaction_RejectsUnknownCategory(t *testing.T) {
	service, _ := newTransactionServiceWithDefaults(t, "u1")

	transaction := validTransaction("u1")
	transaction.Category = "Yachts"

	err := service.CreateTransaction(&transaction)
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestCreateTransaction_RejectsCategoryOfWrongType(t *testing.T) {
	service, _ := newTransactionServiceWithDefaults(t, "u1")

	// "Salary" exists, but only as an income category.
	transaction := validTransaction("u1")
	transaction.Category = "Salary"

	err := service.CreateTransaction(&transaction)
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestEditTransaction_MergesOnlyProvidedFields(t *testing.T) {
	service, _ := newTransactionServiceWithDefaults(t, "u1")

	transaction := validTransaction("u1")
	assert.NoError(t, service.CreateTransaction(&transaction))

	newDescription := "monthly groceries"
	assert.NoError(t, service.EditTransaction("u1", transaction.ID, domain.TransactionPatch{Description: &newDescription}))

	transactions, _ := service.GetUserTransactions("u1")
	assert.Equal(t, "monthly groceries", transactions[0].Description)
	assert.Equal(t, 82.50, transactions[0].Amount)
	assert.Equal(t, "Food", transactions[0].Category)
	assert.Equal(t, transaction.ID, transactions[0].ID)
}

func TestEditTransaction_UnknownIDIsSilentNoOp(t *testing.T) {
	service, _ := newTransactionServiceWithDefaults(t, "u1")

	newDescription := "does not exist"
	assert.NoError(t, service.EditTransaction("u1", "missing", domain.TransactionPatch{Description: &newDescription}))
}

func TestEditTransaction_OtherUsersTransactionIsSilentNoOp(t *testing.T) {
	store := infrastructure.NewMemoryStore()
	assert.NoError(t, store.EnsureDefaultCategories("u1"))
	assert.NoError(t, store.EnsureDefaultCategories("u2"))
	service := NewTransactionService(store, store)

	transaction := validTransaction("u1")
	assert.NoError(t, service.CreateTransaction(&transaction))

	newDescription := "hijacked"
	assert.NoError(t, service.EditTransaction("u2", transaction.ID, domain.TransactionPatch{Description: &newDescription}))

	transactions, _ := service.GetUserTransactions("u1")
	assert.Equal(t, "weekly groceries", transactions[0].Description)
}

func TestEditTransaction_RejectsPatchToUnknownCategory(t *testing.T) {
	service, _ := newTransactionServiceWithDefaults(t, "u1")

	transaction := validTransaction("u1")
	assert.NoError(t, service.CreateTransaction(&transaction))

	unknown := "Yachts"
	err := service.EditTransaction("u1", transaction.ID, domain.TransactionPatch{Category: &unknown})
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestDeleteTransaction(t *testing.T) {
	service, _ := newTransactionServiceWithDefaults(t, "u1")

	transaction := validTransaction("u1")
	assert.NoError(t, service.CreateTransaction(&transaction))

	assert.NoError(t, service.DeleteTransaction("u1", transaction.ID))

	transactions, _ := service.GetUserTransactions("u1")
	assert.Empty(t, transactions)

	// Deleting again is a silent no-op.
	assert.NoError(t, service.DeleteTransaction("u1", transaction.ID))
}
