package service

import (
	"context"
	"errors"
	"fmt"

	"flexzone/fitness-platform/internal/ai"
	"flexzone/fitness-platform/internal/nutrition"
)

// --- Error Definitions ---
var ErrDietGeneration = errors.New("failed to generate diet plan")

// DietPlanResult bundles the computed targets with the generated text.
type DietPlanResult struct {
	Targets  nutrition.MacroTargets
	DietPlan string
}

// --- Service Interface ---
type DietService interface {
	// CalculateTargets runs only the macro calculation.
	CalculateTargets(profile nutrition.BodyProfile) (nutrition.MacroTargets, error)
	// GenerateDietPlan computes targets and asks the AI service for a
	// matching diet text.
	GenerateDietPlan(ctx context.Context, profile nutrition.BodyProfile) (*DietPlanResult, error)
}

// dietService implements the DietService interface.
type dietService struct {
	generator ai.Generator
}

// NewDietService creates a new instance of dietService.
func NewDietService(generator ai.Generator) DietService {
	return &dietService{generator: generator}
}

// CalculateTargets derives daily macro targets from the body profile.
// Deterministic: identical input always yields identical output.
func (s *dietService) CalculateTargets(profile nutrition.BodyProfile) (nutrition.MacroTargets, error) {
	return nutrition.Calculate(profile)
}

// GenerateDietPlan computes targets and delegates text generation to the
// external AI service. Upstream failures surface as ErrDietGeneration; the
// targets themselves are pure computation and never at risk.
func (s *dietService) GenerateDietPlan(ctx context.Context, profile nutrition.BodyProfile) (*DietPlanResult, error) {
	targets, err := nutrition.Calculate(profile)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.GenerateDietPlan(ctx, targets, profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDietGeneration, err)
	}

	return &DietPlanResult{Targets: targets, DietPlan: text}, nil
}
