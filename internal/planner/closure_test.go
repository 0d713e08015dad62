package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/degreeplanner/internal/app/catalog"
	"github.com/oguzk/degreeplanner/internal/app/models"
	"github.com/oguzk/degreeplanner/internal/pkg/apperrors"
)

func newCatalog(t *testing.T, courses ...models.Course) *catalog.Catalog {
	t.Helper()
	cat, _, err := catalog.New(courses)
	require.NoError(t, err)
	return cat
}

func TestClosureExpandsTransitivePrerequisites(t *testing.T) {
	cat := newCatalog(t,
		models.Course{ID: "CSC110"},
		models.Course{ID: "CSC111", Prerequisites: []string{"CSC110"}},
		models.Course{ID: "CSC236", Prerequisites: []string{"CSC111"}},
		models.Course{ID: "MAT137"},
	)

	closure, err := Closure(cat, []string{"CSC236"})
	require.NoError(t, err)

	assert.Len(t, closure, 3)
	assert.Contains(t, closure, "CSC110")
	assert.Contains(t, closure, "CSC111")
	assert.Contains(t, closure, "CSC236")
	assert.NotContains(t, closure, "MAT137")
}

func TestClosureDeterministicAcrossTargetOrder(t *testing.T) {
	cat := newCatalog(t,
		models.Course{ID: "A"},
		models.Course{ID: "B", Prerequisites: []string{"A"}},
		models.Course{ID: "C", Prerequisites: []string{"A"}},
	)

	first, err := Closure(cat, []string{"B", "C"})
	require.NoError(t, err)
	second, err := Closure(cat, []string{"C", "B"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClosureUnknownTarget(t *testing.T) {
	cat := newCatalog(t, models.Course{ID: "CSC110"})

	_, err := Closure(cat, []string{"NOPE"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnknownCourse)
	assert.Contains(t, err.Error(), "NOPE")
}

func TestClosureUnknownTransitivePrerequisite(t *testing.T) {
	courses := []models.Course{
		{ID: "CSC111", Prerequisites: []string{"GHOST"}},
	}
	cat, dangling, err := catalog.New(courses)
	require.NoError(t, err)
	require.Equal(t, []string{"GHOST"}, dangling)

	_, err = Closure(cat, []string{"CSC111"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnknownCourse)
	assert.Contains(t, err.Error(), "GHOST")
	assert.Contains(t, err.Error(), "CSC111")
}

func TestClosureDetectsCycle(t *testing.T) {
	cat := newCatalog(t,
		models.Course{ID: "A", Prerequisites: []string{"B"}},
		models.Course{ID: "B", Prerequisites: []string{"A"}},
	)

	for _, target := range []string{"A", "B"} {
		_, err := Closure(cat, []string{target})
		require.Error(t, err, "target %s", target)
		assert.ErrorIs(t, err, apperrors.ErrCyclicPrerequisite)
		assert.Contains(t, err.Error(), "A")
		assert.Contains(t, err.Error(), "B")
	}
}

func TestClosureCycleDiagnosticIsCanonical(t *testing.T) {
	cat := newCatalog(t,
		models.Course{ID: "X", Prerequisites: []string{"Y"}},
		models.Course{ID: "Y", Prerequisites: []string{"Z"}},
		models.Course{ID: "Z", Prerequisites: []string{"X"}},
	)

	// Whichever course the traversal enters through, the reported cycle
	// starts at the lexicographically smallest member.
	for _, target := range []string{"X", "Y", "Z"} {
		_, err := Closure(cat, []string{target})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "X -> Y -> Z -> X", "target %s", target)
	}
}

func TestClosureNormalizesTargetIdentifiers(t *testing.T) {
	cat := newCatalog(t, models.Course{ID: "CSC110"})

	closure, err := Closure(cat, []string{"csc110"})
	require.NoError(t, err)
	assert.Contains(t, closure, "CSC110")
}
