package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/monjournal/journal-api/internal/models"
	"github.com/monjournal/journal-api/internal/repository"
)

var ErrGoalNotFound = errors.New("goal not found")

// GoalService handles goal business logic
type GoalService struct {
	goalRepo repository.GoalRepository
}

// NewGoalService creates a new GoalService
func NewGoalService(goalRepo repository.GoalRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo}
}

// CreateGoalInput represents input for creating a goal
type CreateGoalInput struct {
	Title       string
	Description *string
	Deadline    time.Time
}

// CreateGoal creates a new goal
func (s *GoalService) CreateGoal(user *models.User, input CreateGoalInput) (*models.Goal, error) {
	goal := &models.Goal{
		UserID:      user.ID,
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline,
	}

	if err := s.goalRepo.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

// ListGoals returns the user's goals ordered by deadline ascending
func (s *GoalService) ListGoals(user *models.User) ([]models.Goal, error) {
	goals, err := s.goalRepo.ListByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// ToggleCompletion flips a goal's completion state. CompletedAt is set or
// cleared atomically with the flip: two consecutive toggles return the
// goal to its starting state.
func (s *GoalService) ToggleCompletion(user *models.User, goalID string) (*models.Goal, error) {
	goal, err := s.findGoal(user, goalID)
	if err != nil {
		return nil, err
	}

	goal.IsCompleted = !goal.IsCompleted
	if goal.IsCompleted {
		now := time.Now()
		goal.CompletedAt = &now
	} else {
		goal.CompletedAt = nil
	}

	if err := s.goalRepo.Save(goal); err != nil {
		return nil, fmt.Errorf("failed to toggle goal: %w", err)
	}

	return goal, nil
}

// SetRemark stores a freeform remark on a goal. Whitespace is trimmed;
// a blank remark is stored as null.
func (s *GoalService) SetRemark(user *models.User, goalID string, remark *string) (*models.Goal, error) {
	goal, err := s.findGoal(user, goalID)
	if err != nil {
		return nil, err
	}

	if remark != nil {
		trimmed := strings.TrimSpace(*remark)
		if trimmed == "" {
			goal.Remark = nil
		} else {
			goal.Remark = &trimmed
		}
	} else {
		goal.Remark = nil
	}

	if err := s.goalRepo.Save(goal); err != nil {
		return nil, fmt.Errorf("failed to update remark: %w", err)
	}

	return goal, nil
}

func (s *GoalService) findGoal(user *models.User, goalID string) (*models.Goal, error) {
	goal, err := s.goalRepo.FindByID(user.ID, goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	return goal, nil
}
