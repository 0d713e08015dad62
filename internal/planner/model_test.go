package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/degreeplanner/internal/app/models"
	"github.com/oguzk/degreeplanner/internal/pkg/apperrors"
)

func fallWinter() []models.Term {
	return []models.Term{models.TermFall, models.TermWinter}
}

func TestBuildModelDomainsRespectTermAvailability(t *testing.T) {
	closure := map[string]models.Course{
		"ANY":  {ID: "ANY"},
		"FALL": {ID: "FALL", Terms: []models.Term{models.TermFall}},
		"WIN":  {ID: "WIN", Terms: []models.Term{models.TermWinter}},
	}
	req := models.PlanningRequest{MaxCourses: 5, MaxSemesters: 4}

	m, err := BuildModel(closure, req, fallWinter())
	require.NoError(t, err)

	require.Equal(t, []string{"ANY", "FALL", "WIN"}, m.Courses)
	assert.Equal(t, []int{1, 2, 3, 4}, m.Domains[m.Index["ANY"]])
	assert.Equal(t, []int{1, 3}, m.Domains[m.Index["FALL"]])
	assert.Equal(t, []int{2, 4}, m.Domains[m.Index["WIN"]])
}

func TestBuildModelFullYearDomains(t *testing.T) {
	closure := map[string]models.Course{
		"PHY": {ID: "PHY", FullYear: true},
	}

	// Full-year courses start in Fall only and need the following semester
	// inside the horizon.
	m, err := BuildModel(closure, models.PlanningRequest{MaxCourses: 5, MaxSemesters: 4}, fallWinter())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, m.Domains[0])
	assert.Equal(t, 2, m.Spans[0])

	// A domain emptied by horizon clipping alone is left for the solver to
	// prove infeasible; it is not a data error.
	m, err = BuildModel(closure, models.PlanningRequest{MaxCourses: 5, MaxSemesters: 1}, fallWinter())
	require.NoError(t, err)
	assert.Empty(t, m.Domains[0])
}

func TestBuildModelPrecedenceEdges(t *testing.T) {
	closure := map[string]models.Course{
		"A": {ID: "A"},
		"B": {ID: "B", Prerequisites: []string{"A"}},
	}
	req := models.PlanningRequest{MaxCourses: 5, MaxSemesters: 8}

	m, err := BuildModel(closure, req, fallWinter())
	require.NoError(t, err)

	a, b := m.Index["A"], m.Index["B"]
	assert.Equal(t, []int{a}, m.Prereqs[b])
	assert.Equal(t, []int{b}, m.Dependents[a])
	assert.Empty(t, m.Prereqs[a])
}

func TestBuildModelNoTermAvailableIsDataError(t *testing.T) {
	// Summer never occurs in a Fall/Winter cycle, so the course can never
	// be placed. That is a catalog data error, not infeasibility.
	closure := map[string]models.Course{
		"SUM": {ID: "SUM", Terms: []models.Term{models.TermSummer}},
	}
	req := models.PlanningRequest{MaxCourses: 5, MaxSemesters: 8}

	_, err := BuildModel(closure, req, fallWinter())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNoTermAvailable)
	assert.Contains(t, err.Error(), "SUM")
}

func TestMakespanLowerBound(t *testing.T) {
	closure := map[string]models.Course{
		"A": {ID: "A"},
		"B": {ID: "B", Prerequisites: []string{"A"}},
		"C": {ID: "C", Prerequisites: []string{"B"}},
		"D": {ID: "D"},
	}

	// Chain A -> B -> C forces at least 3 semesters.
	m, err := BuildModel(closure, models.PlanningRequest{MaxCourses: 5, MaxSemesters: 8}, fallWinter())
	require.NoError(t, err)
	assert.Equal(t, 3, m.makespanLowerBound())

	// With one course per semester, capacity forces 4.
	m, err = BuildModel(closure, models.PlanningRequest{MaxCourses: 1, MaxSemesters: 8}, fallWinter())
	require.NoError(t, err)
	assert.Equal(t, 4, m.makespanLowerBound())
}
