// Package planner implements the scheduling engine: prerequisite closure
// resolution, constraint model construction, the search itself, and schedule
// extraction.
package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oguzk/degreeplanner/internal/app/catalog"
	"github.com/oguzk/degreeplanner/internal/app/models"
	"github.com/oguzk/degreeplanner/internal/pkg/apperrors"
)

// Traversal colors for cycle detection. Grey marks courses on the current
// DFS path, black marks completed subtrees.
const (
	colorWhite = iota
	colorGrey
	colorBlack
)

// Closure expands the target identifiers to the full set of courses the plan
// must contain: the targets plus every direct and transitive prerequisite.
// It fails if any reached identifier is absent from the catalog or if the
// prerequisite graph contains a cycle. The returned set is deterministic for
// a fixed catalog and target set.
func Closure(src catalog.Source, targets []string) (map[string]models.Course, error) {
	sorted := make([]string, len(targets))
	copy(sorted, targets)
	sort.Strings(sorted)

	closure := make(map[string]models.Course)
	state := make(map[string]int)
	var path []string

	var visit func(id, requiredBy string) error
	visit = func(id, requiredBy string) error {
		course, ok := src.GetCourse(id)
		if !ok {
			if requiredBy == "" {
				return apperrors.NewUnknownCourseError(
					fmt.Sprintf("course %q not found in catalog", id))
			}
			return apperrors.NewUnknownCourseError(
				fmt.Sprintf("prerequisite %q of course %q not found in catalog", id, requiredBy))
		}

		switch state[course.ID] {
		case colorBlack:
			return nil
		case colorGrey:
			return cycleError(path, course.ID)
		}

		state[course.ID] = colorGrey
		path = append(path, course.ID)

		prereqs := make([]string, len(course.Prerequisites))
		copy(prereqs, course.Prerequisites)
		sort.Strings(prereqs)
		for _, prereq := range prereqs {
			if err := visit(prereq, course.ID); err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		state[course.ID] = colorBlack
		closure[course.ID] = course
		return nil
	}

	for _, target := range sorted {
		if err := visit(catalog.NormalizeID(target), ""); err != nil {
			return nil, err
		}
	}

	return closure, nil
}

// cycleError reports a prerequisite cycle. The cycle is rotated so that its
// lexicographically smallest member comes first, keeping the diagnostic
// stable regardless of where the traversal entered the cycle.
func cycleError(path []string, revisited string) error {
	start := -1
	for i, id := range path {
		if id == revisited {
			start = i
			break
		}
	}
	if start < 0 {
		// Should not happen; the revisited course is always on the path.
		return apperrors.NewCyclicPrerequisiteError("prerequisite cycle detected")
	}

	cycle := append([]string(nil), path[start:]...)

	smallest := 0
	for i, id := range cycle {
		if id < cycle[smallest] {
			smallest = i
		}
	}
	canonical := append(append([]string(nil), cycle[smallest:]...), cycle[:smallest]...)
	canonical = append(canonical, canonical[0])

	return apperrors.NewCyclicPrerequisiteError(
		fmt.Sprintf("prerequisite cycle detected: %s", strings.Join(canonical, " -> ")))
}
