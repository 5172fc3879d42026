// Package planner implements the in-memory workout plan editor. All
// operations are pure: they take a draft value, return a new draft value
// and never touch the network or the database. Persistence is the
// caller's job, after ValidateForSave passes.
package planner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"flexzone/fitness-platform/internal/domain"
)

// Default targets applied when an exercise is added without explicit ones.
const (
	DefaultSets = 3
	DefaultReps = 10
)

// --- Error Definitions ---
var (
	ErrCannotRemoveLastDay     = errors.New("cannot remove the last remaining day")
	ErrInvalidTarget           = errors.New("sets and reps must be positive integers")
	ErrDayIndexOutOfRange      = errors.New("day index out of range")
	ErrExerciseIndexOutOfRange = errors.New("exercise index out of range")
)

// TargetField selects which per-exercise target an update applies to.
type TargetField string

const (
	FieldSets TargetField = "sets"
	FieldReps TargetField = "reps"
)

// Draft is an in-memory plan being edited, together with the index of the
// day currently open in the editor.
type Draft struct {
	Plan      domain.Plan
	ActiveDay int
}

// NewDraft creates an unsaved plan with a single empty "Day 1".
func NewDraft(name, description string) Draft {
	return Draft{
		Plan: domain.Plan{
			Name:        name,
			Description: description,
			Days:        []domain.Day{{Name: "Day 1", Exercises: []domain.PlanExercise{}}},
		},
		ActiveDay: 0,
	}
}

// DraftFromPlan wraps an existing plan for editing. The first day becomes
// the active one.
func DraftFromPlan(plan domain.Plan) Draft {
	return Draft{Plan: clonePlan(plan), ActiveDay: 0}
}

// AddDay appends a new empty day named "Day N" and makes it active.
func AddDay(d Draft) Draft {
	out := cloneDraft(d)
	out.Plan.Days = append(out.Plan.Days, domain.Day{
		Name:      fmt.Sprintf("Day %d", len(out.Plan.Days)+1),
		Exercises: []domain.PlanExercise{},
	})
	out.ActiveDay = len(out.Plan.Days) - 1
	return out
}

// RemoveDay deletes the day at index. The last remaining day can never be
// removed. If the removed day was at or before the active one, the active
// index shifts back (but never below zero).
func RemoveDay(d Draft, index int) (Draft, error) {
	if index < 0 || index >= len(d.Plan.Days) {
		return d, ErrDayIndexOutOfRange
	}
	if len(d.Plan.Days) <= 1 {
		return d, ErrCannotRemoveLastDay
	}
	out := cloneDraft(d)
	out.Plan.Days = append(out.Plan.Days[:index], out.Plan.Days[index+1:]...)
	if out.ActiveDay >= index && out.ActiveDay > 0 {
		out.ActiveDay--
	}
	return out, nil
}

// RenameDay sets the name of the day at index. An empty name is accepted
// here; it only fails validation at save time.
func RenameDay(d Draft, index int, name string) (Draft, error) {
	if index < 0 || index >= len(d.Plan.Days) {
		return d, ErrDayIndexOutOfRange
	}
	out := cloneDraft(d)
	out.Plan.Days[index].Name = name
	return out, nil
}

// AddExercise appends a catalog exercise to the day at dayIndex with the
// given targets. Zero sets/reps fall back to the defaults; negative values
// are rejected. The same exercise may appear in a day more than once.
func AddExercise(d Draft, dayIndex int, ex domain.Exercise, sets, reps int) (Draft, error) {
	if dayIndex < 0 || dayIndex >= len(d.Plan.Days) {
		return d, ErrDayIndexOutOfRange
	}
	if sets == 0 {
		sets = DefaultSets
	}
	if reps == 0 {
		reps = DefaultReps
	}
	if sets < 1 || reps < 1 {
		return d, ErrInvalidTarget
	}
	out := cloneDraft(d)
	out.Plan.Days[dayIndex].Exercises = append(out.Plan.Days[dayIndex].Exercises, domain.PlanExercise{
		ExerciseID:   ex.ID,
		Name:         ex.Name,
		MuscleGroup:  ex.MuscleGroup,
		GifURL:       ex.GifURL,
		Description1: ex.Description1,
		Description2: ex.Description2,
		Sets:         sets,
		Reps:         reps,
	})
	return out, nil
}

// RemoveExercise deletes the exercise at exerciseIndex from the day at
// dayIndex.
func RemoveExercise(d Draft, dayIndex, exerciseIndex int) (Draft, error) {
	if dayIndex < 0 || dayIndex >= len(d.Plan.Days) {
		return d, ErrDayIndexOutOfRange
	}
	day := d.Plan.Days[dayIndex]
	if exerciseIndex < 0 || exerciseIndex >= len(day.Exercises) {
		return d, ErrExerciseIndexOutOfRange
	}
	out := cloneDraft(d)
	exs := out.Plan.Days[dayIndex].Exercises
	out.Plan.Days[dayIndex].Exercises = append(exs[:exerciseIndex], exs[exerciseIndex+1:]...)
	return out, nil
}

// UpdateExerciseTargets sets the sets or reps of one scheduled exercise.
// The raw value comes from a form field, so it is parsed here: anything
// that is not a positive integer is rejected with ErrInvalidTarget and the
// stored value stays unchanged.
func UpdateExerciseTargets(d Draft, dayIndex, exerciseIndex int, field TargetField, value string) (Draft, error) {
	if dayIndex < 0 || dayIndex >= len(d.Plan.Days) {
		return d, ErrDayIndexOutOfRange
	}
	day := d.Plan.Days[dayIndex]
	if exerciseIndex < 0 || exerciseIndex >= len(day.Exercises) {
		return d, ErrExerciseIndexOutOfRange
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return d, ErrInvalidTarget
	}
	out := cloneDraft(d)
	switch field {
	case FieldSets:
		out.Plan.Days[dayIndex].Exercises[exerciseIndex].Sets = n
	case FieldReps:
		out.Plan.Days[dayIndex].Exercises[exerciseIndex].Reps = n
	default:
		return d, fmt.Errorf("unknown target field %q", field)
	}
	return out, nil
}

// cloneDraft deep-copies a draft so editor operations never alias the
// caller's slices.
func cloneDraft(d Draft) Draft {
	return Draft{Plan: clonePlan(d.Plan), ActiveDay: d.ActiveDay}
}

func clonePlan(p domain.Plan) domain.Plan {
	out := p
	out.Days = make([]domain.Day, len(p.Days))
	for i, day := range p.Days {
		out.Days[i] = domain.Day{
			Name:      day.Name,
			Exercises: append([]domain.PlanExercise(nil), day.Exercises...),
		}
	}
	return out
}
