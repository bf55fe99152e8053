package domain

import (
	"strings"

	"github.com/Desai0Aryan/finance-tracker/internal/finance/errors"
)

// CategoryRepository stores categories for all users in insertion order.
// Save does not check for duplicates and Delete does not check usage;
// both checks belong to the application layer.
type CategoryRepository interface {
	SaveCategory(category Category) error
	DeleteCategory(categoryID string) error
	UpdateCategory(categoryID string, patch CategoryPatch) error
	FindCategoriesByUser(userID string) ([]Category, error)
	// EnsureDefaultCategories appends the default category set for the user
	// if the user has no categories yet. Idempotent and atomic per user.
	EnsureDefaultCategories(userID string) error
}

type Category struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Type   string `json:"type"` // "income" or "expense"
}

// CategoryPatch carries a sparse update. Nil fields are left unchanged.
type CategoryPatch struct {
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

type DefaultCategory struct {
	Name string
	Type string
}

// DefaultCategories is the fixed set every new user starts with.
var DefaultCategories = []DefaultCategory{
	{Name: "Food", Type: TypeExpense},
	{Name: "Transportation", Type: TypeExpense},
	{Name: "Housing", Type: TypeExpense},
	{Name: "Utilities", Type: TypeExpense},
	{Name: "Entertainment", Type: TypeExpense},
	{Name: "Income", Type: TypeIncome},
	{Name: "Salary", Type: TypeIncome},
	{Name: "Freelance", Type: TypeIncome},
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.NewValidationError("Name must not be empty")
	}
	if c.Type != TypeIncome && c.Type != TypeExpense {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	return nil
}

func (p *CategoryPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return errors.NewValidationError("Name must not be empty")
	}
	if p.Type != nil && *p.Type != TypeIncome && *p.Type != TypeExpense {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	return nil
}

func (p *CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
}
