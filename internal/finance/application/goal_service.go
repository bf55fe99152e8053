package application

import (
	"github.com/Desai0Aryan/finance-tracker/internal/finance/domain"
	"github.com/google/uuid"
)

// GoalService validates and partitions savings goal operations per user.
type GoalService struct {
	repo domain.GoalRepository
}

func NewGoalService(repo domain.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

func (s *GoalService) CreateGoal(goal *domain.SavingsGoal) error {
	goal.ID = uuid.NewString()
	if err := goal.Validate(); err != nil {
		return err
	}
	return s.repo.SaveGoal(*goal)
}

// EditGoal merges the patch into the user's goal. Unknown or foreign ids are
// a silent no-op.
func (s *GoalService) EditGoal(userID, goalID string, patch domain.GoalPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	ok, err := s.owns(userID, goalID)
	if err != nil || !ok {
		return err
	}
	return s.repo.UpdateGoal(goalID, patch)
}

func (s *GoalService) DeleteGoal(userID, goalID string) error {
	ok, err := s.owns(userID, goalID)
	if err != nil || !ok {
		return err
	}
	return s.repo.DeleteGoal(goalID)
}

func (s *GoalService) GetUserGoals(userID string) ([]domain.SavingsGoal, error) {
	return s.repo.FindGoalsByUser(userID)
}

func (s *GoalService) owns(userID, goalID string) (bool, error) {
	goals, err := s.repo.FindGoalsByUser(userID)
	if err != nil {
		return false, err
	}
	for _, g := range goals {
		if g.ID == goalID {
			return true, nil
		}
	}
	return false, nil
}
