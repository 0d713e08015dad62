package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/degreeplanner/internal/pkg/apperrors"
)

var testDefaults = Defaults{MaxCourses: 5, MaxSemesters: 8}

func TestSplitCourseList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single", "CSC110", []string{"CSC110"}},
		{"trims and uppercases", " csc110 , mat137 ", []string{"CSC110", "MAT137"}},
		{"dedupes preserving order", "CSC111,CSC110,csc111", []string{"CSC111", "CSC110"}},
		{"drops empties", ",CSC110,,", []string{"CSC110"}},
		{"all empty", " , , ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitCourseList(tt.raw))
		})
	}
}

func TestToPlanningRequestAppliesDefaults(t *testing.T) {
	form := PlanRequest{TargetCourses: "CSC110"}

	req, err := form.ToPlanningRequest(validator.New(), testDefaults)
	require.NoError(t, err)

	assert.Equal(t, []string{"CSC110"}, req.TargetCourses)
	assert.Equal(t, 5, req.MaxCourses)
	assert.Equal(t, 8, req.MaxSemesters)
}

func TestToPlanningRequestKeepsExplicitValues(t *testing.T) {
	form := PlanRequest{TargetCourses: "CSC110", MaxCourses: 3, MaxSemesters: 12}

	req, err := form.ToPlanningRequest(validator.New(), testDefaults)
	require.NoError(t, err)

	assert.Equal(t, 3, req.MaxCourses)
	assert.Equal(t, 12, req.MaxSemesters)
}

func TestToPlanningRequestRejectsNegatives(t *testing.T) {
	for _, form := range []PlanRequest{
		{TargetCourses: "CSC110", MaxCourses: -1},
		{TargetCourses: "CSC110", MaxSemesters: -4},
	} {
		_, err := form.ToPlanningRequest(validator.New(), testDefaults)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
}

func TestToPlanningRequestRejectsEmptyTargets(t *testing.T) {
	for _, raw := range []string{"", "  ", " , , "} {
		_, err := PlanRequest{TargetCourses: raw}.ToPlanningRequest(validator.New(), testDefaults)
		require.Error(t, err, "raw %q", raw)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
}

func TestToPlanningRequestValidationMessageNamesField(t *testing.T) {
	_, err := PlanRequest{TargetCourses: "CSC110", MaxCourses: -1}.ToPlanningRequest(validator.New(), testDefaults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max courses per semester")
}
