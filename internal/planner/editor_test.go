package planner

import (
	"errors"
	"testing"

	"flexzone/fitness-platform/internal/domain"
)

func benchPress() domain.Exercise {
	return domain.Exercise{
		ID:          "chest-001",
		Name:        "Bench Press",
		MuscleGroup: "chest",
	}
}

func squat() domain.Exercise {
	return domain.Exercise{
		ID:          "legs-001",
		Name:        "Squat",
		MuscleGroup: "legs",
	}
}

func draftWithDays(n int) Draft {
	d := NewDraft("Push Pull Legs", "")
	for i := 1; i < n; i++ {
		d = AddDay(d)
	}
	return d
}

func TestNewDraft(t *testing.T) {
	d := NewDraft("My Plan", "strength block")

	if d.Plan.Name != "My Plan" {
		t.Errorf("Name = %q, want %q", d.Plan.Name, "My Plan")
	}
	if len(d.Plan.Days) != 1 {
		t.Fatalf("new draft has %d days, want 1", len(d.Plan.Days))
	}
	if d.Plan.Days[0].Name != "Day 1" {
		t.Errorf("first day name = %q, want %q", d.Plan.Days[0].Name, "Day 1")
	}
	if len(d.Plan.Days[0].Exercises) != 0 {
		t.Errorf("first day has %d exercises, want 0", len(d.Plan.Days[0].Exercises))
	}
	if d.ActiveDay != 0 {
		t.Errorf("ActiveDay = %d, want 0", d.ActiveDay)
	}
}

func TestAddDay(t *testing.T) {
	d := draftWithDays(1)
	d = AddDay(d)

	if len(d.Plan.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(d.Plan.Days))
	}
	if d.Plan.Days[1].Name != "Day 2" {
		t.Errorf("new day name = %q, want %q", d.Plan.Days[1].Name, "Day 2")
	}
	if d.ActiveDay != 1 {
		t.Errorf("ActiveDay = %d, want 1 (new day becomes active)", d.ActiveDay)
	}
}

func TestRemoveDay(t *testing.T) {
	tests := []struct {
		name          string
		days          int
		active        int
		removeIndex   int
		wantErr       error
		wantDays      int
		wantActive    int
		wantFirstName string
	}{
		{
			name:        "last remaining day cannot be removed",
			days:        1,
			removeIndex: 0,
			wantErr:     ErrCannotRemoveLastDay,
			wantDays:    1,
		},
		{
			name:          "remove first of two",
			days:          2,
			active:        1,
			removeIndex:   0,
			wantDays:      1,
			wantActive:    0,
			wantFirstName: "Day 2",
		},
		{
			name:          "remove last of two keeps active at zero",
			days:          2,
			active:        0,
			removeIndex:   1,
			wantDays:      1,
			wantActive:    0,
			wantFirstName: "Day 1",
		},
		{
			name:        "remove middle of five shifts active back",
			days:        5,
			active:      3,
			removeIndex: 2,
			wantDays:    4,
			wantActive:  2,
		},
		{
			name:        "remove after active leaves active alone",
			days:        5,
			active:      1,
			removeIndex: 4,
			wantDays:    4,
			wantActive:  1,
		},
		{
			name:        "index out of range",
			days:        2,
			removeIndex: 5,
			wantErr:     ErrDayIndexOutOfRange,
			wantDays:    2,
		},
		{
			name:        "negative index",
			days:        2,
			removeIndex: -1,
			wantErr:     ErrDayIndexOutOfRange,
			wantDays:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draftWithDays(tt.days)
			d.ActiveDay = tt.active

			got, err := RemoveDay(d, tt.removeIndex)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("RemoveDay() error = %v, want %v", err, tt.wantErr)
				}
				if len(got.Plan.Days) != tt.wantDays {
					t.Errorf("days after failed remove = %d, want %d", len(got.Plan.Days), tt.wantDays)
				}
				return
			}
			if err != nil {
				t.Fatalf("RemoveDay() error = %v", err)
			}
			if len(got.Plan.Days) != tt.wantDays {
				t.Errorf("days = %d, want %d", len(got.Plan.Days), tt.wantDays)
			}
			if got.ActiveDay != tt.wantActive {
				t.Errorf("ActiveDay = %d, want %d", got.ActiveDay, tt.wantActive)
			}
			if tt.wantFirstName != "" && got.Plan.Days[0].Name != tt.wantFirstName {
				t.Errorf("first day = %q, want %q", got.Plan.Days[0].Name, tt.wantFirstName)
			}
		})
	}
}

func TestRenameDay(t *testing.T) {
	d := draftWithDays(2)

	got, err := RenameDay(d, 1, "Pull")
	if err != nil {
		t.Fatalf("RenameDay() error = %v", err)
	}
	if got.Plan.Days[1].Name != "Pull" {
		t.Errorf("day name = %q, want %q", got.Plan.Days[1].Name, "Pull")
	}

	// An empty name is accepted during editing.
	got, err = RenameDay(got, 1, "")
	if err != nil {
		t.Fatalf("RenameDay(empty) error = %v", err)
	}
	if got.Plan.Days[1].Name != "" {
		t.Errorf("day name = %q, want empty", got.Plan.Days[1].Name)
	}

	if _, err := RenameDay(d, 7, "x"); !errors.Is(err, ErrDayIndexOutOfRange) {
		t.Errorf("RenameDay(out of range) error = %v, want %v", err, ErrDayIndexOutOfRange)
	}
}

func TestAddExercise(t *testing.T) {
	tests := []struct {
		name     string
		sets     int
		reps     int
		wantErr  error
		wantSets int
		wantReps int
	}{
		{name: "explicit targets", sets: 5, reps: 5, wantSets: 5, wantReps: 5},
		{name: "zero falls back to defaults", sets: 0, reps: 0, wantSets: DefaultSets, wantReps: DefaultReps},
		{name: "negative sets rejected", sets: -1, reps: 10, wantErr: ErrInvalidTarget},
		{name: "negative reps rejected", sets: 3, reps: -5, wantErr: ErrInvalidTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draftWithDays(1)
			got, err := AddExercise(d, 0, benchPress(), tt.sets, tt.reps)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("AddExercise() error = %v, want %v", err, tt.wantErr)
				}
				if len(got.Plan.Days[0].Exercises) != 0 {
					t.Errorf("exercise was added despite error")
				}
				return
			}
			if err != nil {
				t.Fatalf("AddExercise() error = %v", err)
			}
			exs := got.Plan.Days[0].Exercises
			if len(exs) != 1 {
				t.Fatalf("exercises = %d, want 1", len(exs))
			}
			if exs[0].ExerciseID != "chest-001" {
				t.Errorf("ExerciseID = %q, want %q", exs[0].ExerciseID, "chest-001")
			}
			if exs[0].Sets != tt.wantSets {
				t.Errorf("Sets = %d, want %d", exs[0].Sets, tt.wantSets)
			}
			if exs[0].Reps != tt.wantReps {
				t.Errorf("Reps = %d, want %d", exs[0].Reps, tt.wantReps)
			}
		})
	}
}

func TestAddExercise_DuplicatesAllowed(t *testing.T) {
	d := draftWithDays(1)
	d, err := AddExercise(d, 0, benchPress(), 3, 10)
	if err != nil {
		t.Fatalf("AddExercise() error = %v", err)
	}
	d, err = AddExercise(d, 0, benchPress(), 5, 5)
	if err != nil {
		t.Fatalf("AddExercise() second copy error = %v", err)
	}

	exs := d.Plan.Days[0].Exercises
	if len(exs) != 2 {
		t.Fatalf("exercises = %d, want 2 (duplicates are allowed)", len(exs))
	}
	if exs[0].Sets == exs[1].Sets {
		t.Errorf("the two entries should keep independent targets")
	}
}

func TestRemoveExercise(t *testing.T) {
	d := draftWithDays(1)
	d, _ = AddExercise(d, 0, benchPress(), 3, 10)
	d, _ = AddExercise(d, 0, squat(), 5, 5)

	got, err := RemoveExercise(d, 0, 0)
	if err != nil {
		t.Fatalf("RemoveExercise() error = %v", err)
	}
	exs := got.Plan.Days[0].Exercises
	if len(exs) != 1 {
		t.Fatalf("exercises = %d, want 1", len(exs))
	}
	if exs[0].ExerciseID != "legs-001" {
		t.Errorf("remaining exercise = %q, want %q", exs[0].ExerciseID, "legs-001")
	}

	if _, err := RemoveExercise(d, 0, 9); !errors.Is(err, ErrExerciseIndexOutOfRange) {
		t.Errorf("RemoveExercise(out of range) error = %v, want %v", err, ErrExerciseIndexOutOfRange)
	}
	if _, err := RemoveExercise(d, 3, 0); !errors.Is(err, ErrDayIndexOutOfRange) {
		t.Errorf("RemoveExercise(bad day) error = %v, want %v", err, ErrDayIndexOutOfRange)
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	d := draftWithDays(1)
	d, _ = AddExercise(d, 0, benchPress(), 3, 10)

	before := len(d.Plan.Days[0].Exercises)
	d, err := AddExercise(d, 0, squat(), 4, 8)
	if err != nil {
		t.Fatalf("AddExercise() error = %v", err)
	}
	d, err = RemoveExercise(d, 0, len(d.Plan.Days[0].Exercises)-1)
	if err != nil {
		t.Fatalf("RemoveExercise() error = %v", err)
	}

	exs := d.Plan.Days[0].Exercises
	if len(exs) != before {
		t.Fatalf("exercises = %d, want %d", len(exs), before)
	}
	if exs[0].ExerciseID != "chest-001" || exs[0].Sets != 3 || exs[0].Reps != 10 {
		t.Errorf("surviving exercise changed: %+v", exs[0])
	}
}

func TestUpdateExerciseTargets(t *testing.T) {
	tests := []struct {
		name    string
		field   TargetField
		value   string
		wantErr error
		want    int
	}{
		{name: "valid sets", field: FieldSets, value: "5", want: 5},
		{name: "valid reps", field: FieldReps, value: "12", want: 12},
		{name: "leading space accepted", field: FieldReps, value: " 8 ", want: 8},
		{name: "zero rejected", field: FieldSets, value: "0", wantErr: ErrInvalidTarget},
		{name: "negative rejected", field: FieldReps, value: "-3", wantErr: ErrInvalidTarget},
		{name: "decimal rejected", field: FieldReps, value: "1.5", wantErr: ErrInvalidTarget},
		{name: "non-numeric rejected", field: FieldSets, value: "ten", wantErr: ErrInvalidTarget},
		{name: "empty rejected", field: FieldSets, value: "", wantErr: ErrInvalidTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draftWithDays(1)
			d, _ = AddExercise(d, 0, benchPress(), 3, 10)

			got, err := UpdateExerciseTargets(d, 0, 0, tt.field, tt.value)
			ex := got.Plan.Days[0].Exercises[0]
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UpdateExerciseTargets() error = %v, want %v", err, tt.wantErr)
				}
				// Stored targets must be untouched after a rejected input.
				if ex.Sets != 3 || ex.Reps != 10 {
					t.Errorf("targets changed after rejection: sets=%d reps=%d", ex.Sets, ex.Reps)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateExerciseTargets() error = %v", err)
			}
			switch tt.field {
			case FieldSets:
				if ex.Sets != tt.want {
					t.Errorf("Sets = %d, want %d", ex.Sets, tt.want)
				}
			case FieldReps:
				if ex.Reps != tt.want {
					t.Errorf("Reps = %d, want %d", ex.Reps, tt.want)
				}
			}
		})
	}
}

func TestEditorOperationsDoNotAliasInput(t *testing.T) {
	d := draftWithDays(2)
	d, _ = AddExercise(d, 0, benchPress(), 3, 10)

	edited, err := UpdateExerciseTargets(d, 0, 0, FieldSets, "5")
	if err != nil {
		t.Fatalf("UpdateExerciseTargets() error = %v", err)
	}
	if d.Plan.Days[0].Exercises[0].Sets != 3 {
		t.Errorf("input draft mutated: sets = %d, want 3", d.Plan.Days[0].Exercises[0].Sets)
	}
	if edited.Plan.Days[0].Exercises[0].Sets != 5 {
		t.Errorf("edited draft sets = %d, want 5", edited.Plan.Days[0].Exercises[0].Sets)
	}

	removed, err := RemoveDay(d, 1)
	if err != nil {
		t.Fatalf("RemoveDay() error = %v", err)
	}
	if len(d.Plan.Days) != 2 {
		t.Errorf("input draft mutated: days = %d, want 2", len(d.Plan.Days))
	}
	if len(removed.Plan.Days) != 1 {
		t.Errorf("result days = %d, want 1", len(removed.Plan.Days))
	}
}

// A full editing session: build a three day split, reshuffle it, and
// confirm the result is save-ready.
func TestEditorScenario(t *testing.T) {
	d := NewDraft("PPL", "three day split")
	d = AddDay(d)
	d = AddDay(d)

	var err error
	if d, err = RenameDay(d, 0, "Push"); err != nil {
		t.Fatalf("RenameDay() error = %v", err)
	}
	if d, err = RenameDay(d, 1, "Pull"); err != nil {
		t.Fatalf("RenameDay() error = %v", err)
	}
	if d, err = RenameDay(d, 2, "Legs"); err != nil {
		t.Fatalf("RenameDay() error = %v", err)
	}

	if d, err = AddExercise(d, 0, benchPress(), 4, 8); err != nil {
		t.Fatalf("AddExercise() error = %v", err)
	}
	if d, err = AddExercise(d, 1, benchPress(), 0, 0); err != nil {
		t.Fatalf("AddExercise() error = %v", err)
	}
	if d, err = AddExercise(d, 2, squat(), 5, 5); err != nil {
		t.Fatalf("AddExercise() error = %v", err)
	}

	if d, err = UpdateExerciseTargets(d, 2, 0, FieldReps, "3"); err != nil {
		t.Fatalf("UpdateExerciseTargets() error = %v", err)
	}

	if violations := ValidateForSave(d.Plan); violations != nil {
		t.Fatalf("ValidateForSave() = %v, want nil", violations)
	}
	if d.Plan.Days[2].Exercises[0].Reps != 3 {
		t.Errorf("legs reps = %d, want 3", d.Plan.Days[2].Exercises[0].Reps)
	}
	if d.Plan.Days[1].Exercises[0].Sets != DefaultSets {
		t.Errorf("pull sets = %d, want default %d", d.Plan.Days[1].Exercises[0].Sets, DefaultSets)
	}
}
