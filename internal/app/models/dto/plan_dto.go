package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/oguzk/degreeplanner/internal/app/models"
	"github.com/oguzk/degreeplanner/internal/pkg/apperrors"
)

// PlanRequest represents the raw planning form input from the presentation
// layer: a comma-separated target list and optional positive caps. Zero
// values mean "absent" and take the configured defaults; negative values are
// validation errors and never reach the solver.
type PlanRequest struct {
	TargetCourses string `json:"targetCourses" validate:"required"`
	MaxCourses    int    `json:"maxCourses" validate:"omitempty,min=1"`
	MaxSemesters  int    `json:"maxSemesters" validate:"omitempty,min=1"`
}

// Defaults holds the values applied when optional request fields are absent.
type Defaults struct {
	MaxCourses   int
	MaxSemesters int
}

// ToPlanningRequest validates and normalizes the raw input into a planning
// request: targets are split on commas, trimmed, upper-cased and
// deduplicated preserving first occurrence.
func (r PlanRequest) ToPlanningRequest(validate *validator.Validate, defaults Defaults) (models.PlanningRequest, error) {
	if validate == nil {
		validate = validator.New()
	}

	if err := validate.Struct(r); err != nil {
		return models.PlanningRequest{}, apperrors.NewValidationError(validationMessage(err))
	}

	targets := SplitCourseList(r.TargetCourses)
	if len(targets) == 0 {
		return models.PlanningRequest{}, apperrors.NewValidationError("at least one target course is required")
	}

	maxCourses := r.MaxCourses
	if maxCourses == 0 {
		maxCourses = defaults.MaxCourses
	}
	maxSemesters := r.MaxSemesters
	if maxSemesters == 0 {
		maxSemesters = defaults.MaxSemesters
	}

	return models.PlanningRequest{
		TargetCourses: targets,
		MaxCourses:    maxCourses,
		MaxSemesters:  maxSemesters,
	}, nil
}

// SplitCourseList parses a comma-separated identifier list, trimming,
// upper-casing, dropping empties and deduplicating in order.
func SplitCourseList(raw string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, part := range strings.Split(raw, ",") {
		id := strings.ToUpper(strings.TrimSpace(part))
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// validationMessage flattens validator errors into a form-level message
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			switch fe.Field() {
			case "TargetCourses":
				parts = append(parts, "target courses are required")
			case "MaxCourses":
				parts = append(parts, "max courses per semester must be a positive whole number")
			case "MaxSemesters":
				parts = append(parts, "max semesters must be a positive whole number")
			default:
				parts = append(parts, fmt.Sprintf("invalid field %s", fe.Field()))
			}
		}
		return strings.Join(parts, "; ")
	}
	return fmt.Sprintf("invalid request: %v", err)
}
