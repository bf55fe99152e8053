package application

import (
	"testing"

	"github.com/Desai0Aryan/finance-tracker/internal/finance/domain"
	financeErrors "github.com/Desai0Aryan/finance-tracker/internal/finance/errors"
	"github.com/Desai0Aryan/finance-tracker/internal/finance/infrastructure"
	"github.com/stretchr/testify/assert"
)

func newGoalService() (*GoalService, *infrastructure.MemoryStore) {
	store := infrastructure.NewMemoryStore()
	return NewGoalService(store), store
}

func TestCreateGoal(t *testing.T) {
	service, store := newGoalService()

	goal := domain.SavingsGoal{UserID: "u1", Name: "Vacation", TargetAmount: 5000}
	assert.NoError(t, service.CreateGoal(&goal))
	assert.NotEmpty(t, goal.ID)

	goals, _ := store.FindGoalsByUser("u1")
	assert.Len(t, goals, 1)
	assert.Equal(t, "Vacation", goals[0].Name)
	assert.Equal(t, 5000.0, goals[0].TargetAmount)
}

func TestCreateGoal_ValidationFailures(t *testing.T) {
	service, store := newGoalService()

	tests := []struct {
		name string
		goal domain.SavingsGoal
	}{
		{"empty name", domain.SavingsGoal{UserID: "u1", Name: "  ", TargetAmount: 100}},
		{"zero target", domain.SavingsGoal{UserID: "u1", Name: "Vacation", TargetAmount: 0}},
		{"negative target", domain.SavingsGoal{UserID: "u1", Name: "Vacation", TargetAmount: -10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := tt.goal
			err := service.CreateGoal(&goal)
			assert.True(t, financeErrors.IsValidationError(err))
		})
	}

	goals, _ := store.FindGoalsByUser("u1")
	assert.Empty(t, goals)
}

func TestEditGoal(t *testing.T) {
	service, store := newGoalService()
	goal := domain.SavingsGoal{UserID: "u1", Name: "Vacation", TargetAmount: 5000}
	assert.NoError(t, service.CreateGoal(&goal))

	newTarget := 7500.0
	assert.NoError(t, service.EditGoal("u1", goal.ID, domain.GoalPatch{TargetAmount: &newTarget}))

	goals, _ := store.FindGoalsByUser("u1")
	assert.Equal(t, 7500.0, goals[0].TargetAmount)
	assert.Equal(t, "Vacation", goals[0].Name)
}

func TestEditGoal_OtherUsersGoalIsSilentNoOp(t *testing.T) {
	service, store := newGoalService()
	goal := domain.SavingsGoal{UserID: "u1", Name: "Vacation", TargetAmount: 5000}
	assert.NoError(t, service.CreateGoal(&goal))

	newName := "hijacked"
	assert.NoError(t, service.EditGoal("u2", goal.ID, domain.GoalPatch{Name: &newName}))

	goals, _ := store.FindGoalsByUser("u1")
	assert.Equal(t, "Vacation", goals[0].Name)
}

func TestDeleteGoal(t *testing.T) {
	service, _ := newGoalService()
	goal := domain.SavingsGoal{UserID: "u1", Name: "Vacation", TargetAmount: 5000}
	assert.NoError(t, service.CreateGoal(&goal))

	assert.NoError(t, service.DeleteGoal("u1", goal.ID))

	goals, _ := service.GetUserGoals("u1")
	assert.Empty(t, goals)

	// Deleting again is a silent no-op.
	assert.NoError(t, service.DeleteGoal("u1", goal.ID))
}
