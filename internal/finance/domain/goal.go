package domain

import (
	"strings"

	"github.com/Desai0Aryan/finance-tracker/internal/finance/errors"
)

// GoalRepository stores savings goals for all users in insertion order,
// with the same silent no-op semantics as the other repositories.
type GoalRepository interface {
	SaveGoal(goal SavingsGoal) error
	DeleteGoal(goalID string) error
	UpdateGoal(goalID string, patch GoalPatch) error
	FindGoalsByUser(userID string) ([]SavingsGoal, error)
}

// SavingsGoal is a named savings target. Progress against it is always
// derived from the user's transactions, never stored.
type SavingsGoal struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
}

type GoalPatch struct {
	Name         *string  `json:"name,omitempty"`
	TargetAmount *float64 `json:"target_amount,omitempty"`
}

func (g *SavingsGoal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return errors.NewValidationError("Goal name must not be empty")
	}
	if g.TargetAmount <= 0 {
		return errors.NewValidationError("Target amount must be greater than zero")
	}
	return nil
}

func (p *GoalPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return errors.NewValidationError("Goal name must not be empty")
	}
	if p.TargetAmount != nil && *p.TargetAmount <= 0 {
		return errors.NewValidationError("Target amount must be greater than zero")
	}
	return nil
}

func (p *GoalPatch) Apply(g *SavingsGoal) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
}
