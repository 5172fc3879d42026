package planner

import (
	"fmt"
	"strings"

	"flexzone/fitness-platform/internal/domain"
)

// ViolationCode identifies one kind of save-time validation failure.
type ViolationCode string

const (
	ViolationEmptyName    ViolationCode = "empty_name"
	ViolationEmptyDay     ViolationCode = "empty_day"
	ViolationDayNameEmpty ViolationCode = "day_name_empty"
)

// Violation is a single save-time validation failure. DayIndex is -1 for
// plan-level violations.
type Violation struct {
	Code     ViolationCode `json:"code"`
	DayIndex int           `json:"dayIndex"`
}

// Message renders a human-readable description for the UI.
func (v Violation) Message() string {
	switch v.Code {
	case ViolationEmptyName:
		return "plan name must not be empty"
	case ViolationEmptyDay:
		return fmt.Sprintf("day %d has no exercises", v.DayIndex+1)
	case ViolationDayNameEmpty:
		return fmt.Sprintf("day %d has no name", v.DayIndex+1)
	default:
		return string(v.Code)
	}
}

// ValidateForSave checks a plan before it is handed to the persistence
// layer. All violations are collected and returned together, not
// fail-fast, so the caller can report every problem in one pass. A nil
// result means the plan is valid.
func ValidateForSave(plan domain.Plan) []Violation {
	var violations []Violation
	if strings.TrimSpace(plan.Name) == "" {
		violations = append(violations, Violation{Code: ViolationEmptyName, DayIndex: -1})
	}
	for i, day := range plan.Days {
		if strings.TrimSpace(day.Name) == "" {
			violations = append(violations, Violation{Code: ViolationDayNameEmpty, DayIndex: i})
		}
		if len(day.Exercises) == 0 {
			violations = append(violations, Violation{Code: ViolationEmptyDay, DayIndex: i})
		}
	}
	return violations
}
