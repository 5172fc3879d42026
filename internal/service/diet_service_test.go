package service

import (
	"context"
	"errors"
	"testing"

	"flexzone/fitness-platform/internal/nutrition"
)

// stubGenerator returns a canned diet text or a canned failure.
type stubGenerator struct {
	text string
	err  error

	gotTargets nutrition.MacroTargets
	gotProfile nutrition.BodyProfile
}

func (g *stubGenerator) GenerateDietPlan(ctx context.Context, targets nutrition.MacroTargets, profile nutrition.BodyProfile) (string, error) {
	g.gotTargets = targets
	g.gotProfile = profile
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

func testBodyProfile() nutrition.BodyProfile {
	return nutrition.BodyProfile{
		WeightKg: 70, HeightCm: 175, Age: 25,
		Gender:         nutrition.GenderMale,
		ActivityLevel:  nutrition.ActivityModerate,
		Goal:           nutrition.GoalMaintain,
		DietPreference: nutrition.DietVegan,
	}
}

func TestCalculateTargets(t *testing.T) {
	svc := NewDietService(&stubGenerator{})

	got, err := svc.CalculateTargets(testBodyProfile())
	if err != nil {
		t.Fatalf("CalculateTargets() error = %v", err)
	}
	want := nutrition.MacroTargets{Calories: 2594, ProteinG: 154, CarbsG: 292, FatsG: 72}
	if got != want {
		t.Errorf("CalculateTargets() = %+v, want %+v", got, want)
	}
}

func TestCalculateTargets_InvalidProfile(t *testing.T) {
	svc := NewDietService(&stubGenerator{})

	p := testBodyProfile()
	p.WeightKg = 0
	if _, err := svc.CalculateTargets(p); !errors.Is(err, nutrition.ErrInvalidBodyProfile) {
		t.Errorf("CalculateTargets() error = %v, want ErrInvalidBodyProfile", err)
	}
}

func TestGenerateDietPlan_Service(t *testing.T) {
	gen := &stubGenerator{text: "Breakfast: tofu scramble..."}
	svc := NewDietService(gen)

	result, err := svc.GenerateDietPlan(context.Background(), testBodyProfile())
	if err != nil {
		t.Fatalf("GenerateDietPlan() error = %v", err)
	}
	if result.DietPlan != "Breakfast: tofu scramble..." {
		t.Errorf("DietPlan = %q", result.DietPlan)
	}
	if result.Targets.Calories != 2594 {
		t.Errorf("Targets.Calories = %d, want 2594", result.Targets.Calories)
	}
	// The generator must see the same targets the caller gets back.
	if gen.gotTargets != result.Targets {
		t.Errorf("generator saw %+v, caller got %+v", gen.gotTargets, result.Targets)
	}
	if gen.gotProfile.DietPreference != nutrition.DietVegan {
		t.Errorf("generator profile preference = %q", gen.gotProfile.DietPreference)
	}
}

func TestGenerateDietPlan_UpstreamFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model over capacity")}
	svc := NewDietService(gen)

	_, err := svc.GenerateDietPlan(context.Background(), testBodyProfile())
	if !errors.Is(err, ErrDietGeneration) {
		t.Errorf("GenerateDietPlan() error = %v, want ErrDietGeneration", err)
	}
}

func TestGenerateDietPlan_InvalidProfileSkipsGenerator(t *testing.T) {
	gen := &stubGenerator{text: "should never be used"}
	svc := NewDietService(gen)

	p := testBodyProfile()
	p.Age = -1
	_, err := svc.GenerateDietPlan(context.Background(), p)
	if !errors.Is(err, nutrition.ErrInvalidBodyProfile) {
		t.Fatalf("GenerateDietPlan() error = %v, want ErrInvalidBodyProfile", err)
	}
	if gen.gotProfile.Age != 0 {
		t.Error("generator was called for an invalid profile")
	}
}
