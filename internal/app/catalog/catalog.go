// Package catalog provides the immutable course catalog snapshot and its
// sources. A snapshot is built once, shared read-only across concurrent
// planning requests, and replaced wholesale on reload.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oguzk/degreeplanner/internal/app/models"
	"github.com/oguzk/degreeplanner/internal/pkg/apperrors"
)

// Source is the narrow read interface the planner requires from a catalog.
type Source interface {
	GetCourse(id string) (models.Course, bool)
	ListIdentifiers() []string
}

// Catalog is an immutable snapshot of the known courses.
type Catalog struct {
	courses map[string]models.Course
	ids     []string
}

// New builds a catalog snapshot from a course list. Duplicate identifiers
// are rejected. Prerequisite identifiers that reference no known course are
// not fatal; they are returned so the caller can flag the data error, and
// the closure resolver reports them if a plan ever reaches one.
func New(courses []models.Course) (*Catalog, []string, error) {
	byID := make(map[string]models.Course, len(courses))
	for _, course := range courses {
		id := NormalizeID(course.ID)
		if id == "" {
			return nil, nil, fmt.Errorf("%w: course with empty identifier", apperrors.ErrCatalogInvalid)
		}
		if _, exists := byID[id]; exists {
			return nil, nil, fmt.Errorf("%w: duplicate course identifier %q", apperrors.ErrCatalogInvalid, id)
		}
		course.ID = id
		course.Prerequisites = normalizeIDs(course.Prerequisites)
		byID[id] = course
	}

	danglingSet := make(map[string]struct{})
	for _, course := range byID {
		for _, prereq := range course.Prerequisites {
			if _, ok := byID[prereq]; !ok {
				danglingSet[prereq] = struct{}{}
			}
		}
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	dangling := make([]string, 0, len(danglingSet))
	for id := range danglingSet {
		dangling = append(dangling, id)
	}
	sort.Strings(dangling)

	return &Catalog{courses: byID, ids: ids}, dangling, nil
}

// GetCourse retrieves a course by identifier
func (c *Catalog) GetCourse(id string) (models.Course, bool) {
	course, ok := c.courses[NormalizeID(id)]
	return course, ok
}

// ListIdentifiers returns the sorted identifiers of all known courses
func (c *Catalog) ListIdentifiers() []string {
	ids := make([]string, len(c.ids))
	copy(ids, c.ids)
	return ids
}

// Len returns the number of courses in the snapshot
func (c *Catalog) Len() int {
	return len(c.ids)
}

// NormalizeID canonicalizes a course identifier for lookups
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

func normalizeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		normalized := NormalizeID(id)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}
