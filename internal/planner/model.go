package planner

import (
	"fmt"
	"sort"

	"github.com/oguzk/degreeplanner/internal/app/models"
	"github.com/oguzk/degreeplanner/internal/pkg/apperrors"
)

// Model is the finite constraint model for one planning request. Each course
// in the closure gets one decision variable whose value is the 1-based
// semester it is taken in. Courses are kept in lexicographic identifier
// order; that order fixes the search order and makes solving deterministic.
type Model struct {
	// Courses holds the closure identifiers, sorted.
	Courses []string
	// Index maps a course identifier to its position in Courses.
	Index map[string]int
	// Prereqs lists, per course position, the positions of its direct
	// prerequisites. Every prerequisite's variable must be strictly less
	// than the course's own.
	Prereqs [][]int
	// Dependents is the reverse of Prereqs.
	Dependents [][]int
	// Domains lists, per course position, the allowed starting semester
	// indices in ascending order after term-availability filtering.
	Domains [][]int
	// Spans gives, per course position, how many consecutive semesters the
	// course occupies. Full-year courses span two, everything else one.
	Spans []int

	MaxCourses   int
	MaxSemesters int
	Cycle        []models.Term
}

// BuildModel translates a closure and request parameters into a constraint
// model. It performs no search. The only failure mode is a course whose
// offered terms never occur in the semester cycle, which is a data error
// rather than a scheduling impossibility.
func BuildModel(closure map[string]models.Course, req models.PlanningRequest, cycle []models.Term) (*Model, error) {
	if len(cycle) == 0 {
		cycle = models.DefaultTermCycle
	}

	courses := make([]string, 0, len(closure))
	for id := range closure {
		courses = append(courses, id)
	}
	sort.Strings(courses)

	m := &Model{
		Courses:      courses,
		Index:        make(map[string]int, len(courses)),
		Prereqs:      make([][]int, len(courses)),
		Dependents:   make([][]int, len(courses)),
		Domains:      make([][]int, len(courses)),
		Spans:        make([]int, len(courses)),
		MaxCourses:   req.MaxCourses,
		MaxSemesters: req.MaxSemesters,
		Cycle:        cycle,
	}
	for i, id := range courses {
		m.Index[id] = i
	}

	for i, id := range courses {
		course := closure[id]
		m.Spans[i] = course.Span()

		eligible := make([]int, 0, req.MaxSemesters)
		for s := 1; s <= req.MaxSemesters; s++ {
			if course.OfferedIn(models.TermForIndex(s, cycle)) {
				eligible = append(eligible, s)
			}
		}
		if len(eligible) == 0 {
			return nil, apperrors.NewCustomError(apperrors.ErrNoTermAvailable,
				fmt.Sprintf("course %q is never offered in the configured term cycle", id))
		}

		// A course starting at s occupies s..s+span-1. Starts that would run
		// past the horizon are clipped; a domain emptied by clipping alone is
		// a scheduling impossibility the solver proves, not a data error.
		domain := eligible[:0]
		for _, s := range eligible {
			if s+m.Spans[i]-1 <= req.MaxSemesters {
				domain = append(domain, s)
			}
		}
		m.Domains[i] = domain

		for _, prereq := range course.Prerequisites {
			j, ok := m.Index[prereq]
			if !ok {
				// The closure is transitively closed, so a missing
				// prerequisite here means the resolver let a data error
				// through.
				return nil, apperrors.NewUnknownCourseError(
					fmt.Sprintf("prerequisite %q of course %q missing from closure", prereq, id))
			}
			m.Prereqs[i] = append(m.Prereqs[i], j)
			m.Dependents[j] = append(m.Dependents[j], i)
		}
	}

	for i := range m.Prereqs {
		sort.Ints(m.Prereqs[i])
		sort.Ints(m.Dependents[i])
	}

	return m, nil
}

// depthLowerBound returns the earliest semester in which the longest
// prerequisite chain can finish, a lower bound on the schedule makespan.
// Each course contributes its span to the chain length.
func (m *Model) depthLowerBound() int {
	depth := make([]int, len(m.Courses))
	var compute func(i int) int
	compute = func(i int) int {
		if depth[i] != 0 {
			return depth[i]
		}
		d := m.Spans[i]
		for _, p := range m.Prereqs[i] {
			if pd := compute(p) + m.Spans[i]; pd > d {
				d = pd
			}
		}
		depth[i] = d
		return d
	}

	longest := 0
	for i := range m.Courses {
		if d := compute(i); d > longest {
			longest = d
		}
	}
	return longest
}

// capacityLowerBound returns the minimum number of semesters needed to fit
// every occupied course-semester slot under the per-semester cap.
func (m *Model) capacityLowerBound() int {
	if m.MaxCourses <= 0 {
		return m.MaxSemesters
	}
	slots := 0
	for _, span := range m.Spans {
		slots += span
	}
	return (slots + m.MaxCourses - 1) / m.MaxCourses
}

// makespanLowerBound combines the chain and capacity bounds.
func (m *Model) makespanLowerBound() int {
	lb := m.depthLowerBound()
	if c := m.capacityLowerBound(); c > lb {
		lb = c
	}
	if lb < 1 {
		lb = 1
	}
	return lb
}
