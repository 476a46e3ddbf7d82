package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abisgit/pillar-backend/internal/model"
	"github.com/abisgit/pillar-backend/internal/repository"
	"github.com/abisgit/pillar-backend/internal/validation"
)

var (
	ErrNotGoalOwner      = errors.New("goal belongs to another user")
	ErrDuplicateAdoption = errors.New("template already adopted")
)

// GoalService owns the goal lifecycle. Every successful completion toggle
// commits the goal's cached state together with that day's ledger fact; the
// ledger is the source of truth for the consistency graph, the goal fields
// are a projection of its latest entry.
type GoalService struct {
	repo         repository.GoalRepository
	templateRepo repository.TemplateRepository
}

func NewGoalService(repo repository.GoalRepository, templateRepo repository.TemplateRepository) *GoalService {
	return &GoalService{
		repo:         repo,
		templateRepo: templateRepo,
	}
}

func (s *GoalService) Create(userID, title, description string, pillar model.Pillar, horizon model.Horizon) (*model.Goal, error) {
	err := validation.ValidateTitle(title)
	if err != nil {
		return nil, err
	}

	if horizon == model.HorizonOccasional {
		return nil, model.ErrUnknownHorizon
	}

	now := time.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Description: description,
		Pillar:      pillar,
		Horizon:     horizon,
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

// Adopt copies a catalog template into a personal goal. A user cannot hold
// two goals from the same template at once.
func (s *GoalService) Adopt(userID, templateID string) (*model.Goal, error) {
	tpl, err := s.templateRepo.ByID(templateID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByTemplate(userID, templateID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateAdoption
	}

	horizon := tpl.Horizon
	if horizon == model.HorizonOccasional {
		// Occasional is a catalog-only bucket; adopted goals default to weekly.
		horizon = model.HorizonWeekly
	}

	now := time.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		TemplateID:  &tpl.ID,
		Title:       tpl.Title,
		Description: tpl.Description,
		Pillar:      tpl.Pillar,
		Horizon:     horizon,
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to adopt template: %w", err)
	}

	return goal, nil
}

func (s *GoalService) ByID(userID, goalID string) (*model.Goal, error) {
	goal, err := s.repo.ByID(goalID)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrNotGoalOwner
	}
	return goal, nil
}

func (s *GoalService) Goals(userID string, pillar *model.Pillar) ([]*model.Goal, error) {
	return s.repo.Goals(userID, pillar)
}

// SetCompletion moves the goal to the requested completion state. Asking for
// the state the goal is already in is a no-op and returns the goal unchanged,
// which makes duplicate clicks idempotent. A real transition writes the
// goal and the day's ledger fact atomically.
func (s *GoalService) SetCompletion(userID, goalID string, completed bool) (*model.Goal, error) {
	goal, err := s.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	if goal.IsCompleted == completed {
		return goal, nil
	}

	wasCompleted := goal.IsCompleted
	now := time.Now()

	goal.IsCompleted = completed
	goal.UpdatedAt = now
	if completed {
		goal.CompletedAt = &now
	} else {
		goal.CompletedAt = nil
	}

	fact := &model.CompletionFact{
		GoalID:     goal.ID,
		UserID:     userID,
		Day:        model.Day(now),
		Completed:  completed,
		RecordedAt: now,
	}

	err = s.repo.SetCompletion(goal, wasCompleted, fact)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) Update(userID, goalID, title, description string) (*model.Goal, error) {
	err := validation.ValidateTitle(title)
	if err != nil {
		return nil, err
	}

	goal, err := s.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Title = strings.TrimSpace(title)
	goal.Description = description
	goal.UpdatedAt = time.Now()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// Delete removes the goal. Its completion history stays in the ledger so
// past consistency graphs are unaffected.
func (s *GoalService) Delete(userID, goalID string) error {
	_, err := s.ByID(userID, goalID)
	if err != nil {
		return err
	}

	return s.repo.Delete(userID, goalID)
}
