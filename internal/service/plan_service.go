package service

import (
	"context"
	"errors"
	"strings"

	"flexzone/fitness-platform/internal/domain"
	"flexzone/fitness-platform/internal/planner"
	"flexzone/fitness-platform/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var ErrPlanNotFound = errors.New("workout plan not found")

// PlanValidationError carries every save-time violation collected by the
// planner so the UI can show them all at once.
type PlanValidationError struct {
	Violations []planner.Violation
}

func (e *PlanValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message()
	}
	return "plan validation failed: " + strings.Join(msgs, "; ")
}

// --- Service Interface ---
type PlanService interface {
	CreatePlan(ctx context.Context, ownerID primitive.ObjectID, name, description string, days []domain.Day) (*domain.Plan, error)
	GetPlan(ctx context.Context, ownerID, planID primitive.ObjectID) (*domain.Plan, error)
	ListPlans(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Plan, error)
	UpdatePlan(ctx context.Context, ownerID, planID primitive.ObjectID, name, description string, days []domain.Day) (*domain.Plan, error)
	DeletePlan(ctx context.Context, ownerID, planID primitive.ObjectID) error
}

// planService implements the PlanService interface.
type planService struct {
	planRepo repository.PlanRepository
}

// NewPlanService creates a new instance of planService.
func NewPlanService(planRepo repository.PlanRepository) PlanService {
	return &planService{planRepo: planRepo}
}

// CreatePlan validates a drafted plan and persists it. The returned plan
// carries the repository-assigned ID and timestamps.
func (s *planService) CreatePlan(ctx context.Context, ownerID primitive.ObjectID, name, description string, days []domain.Day) (*domain.Plan, error) {
	if ownerID == primitive.NilObjectID {
		return nil, errors.New("owner ID is required to create a plan")
	}

	plan := &domain.Plan{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Days:        normalizeDays(days),
	}
	if violations := planner.ValidateForSave(*plan); violations != nil {
		return nil, &PlanValidationError{Violations: violations}
	}

	planID, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = planID
	return plan, nil
}

// GetPlan retrieves a single plan owned by the member.
func (s *planService) GetPlan(ctx context.Context, ownerID, planID primitive.ObjectID) (*domain.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// ListPlans retrieves all plans of the member, newest first.
func (s *planService) ListPlans(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Plan, error) {
	if ownerID == primitive.NilObjectID {
		return nil, errors.New("owner ID cannot be nil")
	}
	return s.planRepo.GetByOwner(ctx, ownerID)
}

// UpdatePlan validates the edited draft and replaces the stored plan.
// Concurrent edits from two sessions resolve as last write wins.
func (s *planService) UpdatePlan(ctx context.Context, ownerID, planID primitive.ObjectID, name, description string, days []domain.Day) (*domain.Plan, error) {
	existing, err := s.planRepo.GetByID(ctx, planID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	existing.Name = name
	existing.Description = description
	existing.Days = normalizeDays(days)
	if violations := planner.ValidateForSave(*existing); violations != nil {
		return nil, &PlanValidationError{Violations: violations}
	}

	if err := s.planRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return existing, nil
}

// DeletePlan removes a plan from the member's collection, irrevocably.
func (s *planService) DeletePlan(ctx context.Context, ownerID, planID primitive.ObjectID) error {
	err := s.planRepo.Delete(ctx, planID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}

// normalizeDays guards the structural invariants the wire layer cannot:
// a plan always has at least one day and every exercise keeps positive
// targets (defaults applied when the client sent zero values).
func normalizeDays(days []domain.Day) []domain.Day {
	if len(days) == 0 {
		return []domain.Day{{Name: "Day 1", Exercises: []domain.PlanExercise{}}}
	}
	out := make([]domain.Day, len(days))
	for i, day := range days {
		exs := make([]domain.PlanExercise, len(day.Exercises))
		for j, ex := range day.Exercises {
			if ex.Sets < 1 {
				ex.Sets = planner.DefaultSets
			}
			if ex.Reps < 1 {
				ex.Reps = planner.DefaultReps
			}
			exs[j] = ex
		}
		out[i] = domain.Day{Name: day.Name, Exercises: exs}
	}
	return out
}
