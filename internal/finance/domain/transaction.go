package domain

import (
	"math"
	"strings"
	"time"

	"github.com/Desai0Aryan/finance-tracker/internal/finance/errors"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// TransactionRepository stores transactions for all users, newest-first.
// Delete and Update are silent no-ops when no transaction matches the id.
type TransactionRepository interface {
	SaveTransaction(transaction Transaction) error
	DeleteTransaction(transactionID string) error
	UpdateTransaction(transactionID string, patch TransactionPatch) error
	FindTransactionsByUser(userID string) ([]Transaction, error)
}

type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"` // "income" or "expense"
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes,omitempty"`
}

// TransactionPatch carries a sparse update. Nil fields are left unchanged.
// ID and UserID are never patchable.
type TransactionPatch struct {
	Description *string    `json:"description,omitempty"`
	Amount      *float64   `json:"amount,omitempty"`
	Type        *string    `json:"type,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

func (t *Transaction) RoundToTwoDecimalPlaces() {
	t.Amount = math.Round(t.Amount*100) / 100
}

func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return errors.NewValidationError("Description must not be empty")
	}
	if len(t.Description) > 200 {
		return errors.NewValidationError("Description must be of length less than 200")
	}
	if t.Amount <= 0 {
		return errors.NewValidationError("Amount must be greater than zero")
	}
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if strings.TrimSpace(t.Category) == "" {
		return errors.NewValidationError("Category must not be empty")
	}
	if t.Date.IsZero() {
		return errors.NewValidationError("Date must be set")
	}
	return nil
}

// Validate checks only the fields the patch actually carries.
func (p *TransactionPatch) Validate() error {
	if p.Description != nil {
		if strings.TrimSpace(*p.Description) == "" {
			return errors.NewValidationError("Description must not be empty")
		}
		if len(*p.Description) > 200 {
			return errors.NewValidationError("Description must be of length less than 200")
		}
	}
	if p.Amount != nil && *p.Amount <= 0 {
		return errors.NewValidationError("Amount must be greater than zero")
	}
	if p.Type != nil && *p.Type != TypeIncome && *p.Type != TypeExpense {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if p.Category != nil && strings.TrimSpace(*p.Category) == "" {
		return errors.NewValidationError("Category must not be empty")
	}
	return nil
}

// Apply merges the patch into the transaction, field by field.
func (p *TransactionPatch) Apply(t *Transaction) {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Amount != nil {
		t.Amount = math.Round(*p.Amount*100) / 100
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
}
