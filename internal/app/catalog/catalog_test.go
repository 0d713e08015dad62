package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/degreeplanner/internal/app/models"
	"github.com/oguzk/degreeplanner/internal/pkg/apperrors"
)

func TestNewNormalizesAndSorts(t *testing.T) {
	cat, dangling, err := New([]models.Course{
		{ID: " csc111 ", Prerequisites: []string{"csc110", "CSC110"}},
		{ID: "CSC110"},
	})
	require.NoError(t, err)
	assert.Empty(t, dangling)

	assert.Equal(t, []string{"CSC110", "CSC111"}, cat.ListIdentifiers())

	course, ok := cat.GetCourse("csc111")
	require.True(t, ok)
	assert.Equal(t, "CSC111", course.ID)
	// Duplicate prerequisite references collapse to one.
	assert.Equal(t, []string{"CSC110"}, course.Prerequisites)
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, _, err := New([]models.Course{
		{ID: "CSC110"},
		{ID: "csc110"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCatalogInvalid)
}

func TestNewRejectsEmptyIdentifier(t *testing.T) {
	_, _, err := New([]models.Course{{ID: "   "}})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCatalogInvalid)
}

func TestNewFlagsDanglingPrerequisites(t *testing.T) {
	cat, dangling, err := New([]models.Course{
		{ID: "CSC111", Prerequisites: []string{"GHOST2", "GHOST1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"GHOST1", "GHOST2"}, dangling)
	assert.Equal(t, 1, cat.Len())
}

func TestListIdentifiersReturnsCopy(t *testing.T) {
	cat, _, err := New([]models.Course{{ID: "A"}, {ID: "B"}})
	require.NoError(t, err)

	ids := cat.ListIdentifiers()
	ids[0] = "MUTATED"
	assert.Equal(t, []string{"A", "B"}, cat.ListIdentifiers())
}

func TestStoreReplaceSwapsSnapshot(t *testing.T) {
	first, _, err := New([]models.Course{{ID: "A"}})
	require.NoError(t, err)
	second, _, err := New([]models.Course{{ID: "A"}, {ID: "B"}})
	require.NoError(t, err)

	store := NewStore(first)
	held := store.Load()
	assert.Equal(t, 1, held.Len())

	store.Replace(second)
	assert.Equal(t, 2, store.Load().Len())
	// The snapshot picked up before the swap is untouched.
	assert.Equal(t, 1, held.Len())
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"id": "CSC110", "title": "Foundations of Computer Science I", "terms": ["Fall"]},
		{"id": "CSC111", "title": "Foundations of Computer Science II", "prerequisites": ["CSC110"], "terms": ["Winter"]},
		{"id": "PHY180", "title": "Classical Mechanics", "full_year": true}
	]`)

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())

	course, ok := cat.GetCourse("CSC111")
	require.True(t, ok)
	assert.Equal(t, []string{"CSC110"}, course.Prerequisites)
	assert.Equal(t, []models.Term{models.TermWinter}, course.Terms)

	phy, ok := cat.GetCourse("PHY180")
	require.True(t, ok)
	assert.True(t, phy.FullYear)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCatalogUnavailable)
}

func TestLoadFileMalformedJSON(t *testing.T) {
	path := writeCatalogFile(t, `{"not": "a list"}`)
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCatalogInvalid)
}

func TestLoadFileInvalidTerm(t *testing.T) {
	path := writeCatalogFile(t, `[{"id": "CSC110", "terms": ["Spring"]}]`)
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCatalogInvalid)
	assert.Contains(t, err.Error(), "CSC110")
}
