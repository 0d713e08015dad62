package planner

import (
	"sort"

	"github.com/oguzk/degreeplanner/internal/app/models"
)

// Extract converts a terminal solve outcome into the result handed to the
// presentation layer. For Optimal and Feasible outcomes the assignment is
// grouped into semesters up to the highest occupied index, keeping gap
// semesters in between and dropping trailing unused ones. A full-year course
// is listed in both semesters it occupies. All other statuses carry through
// with no schedule.
func Extract(outcome Outcome, closure map[string]models.Course, req models.PlanningRequest, cycle []models.Term) *models.PlanningResult {
	result := &models.PlanningResult{
		Status:        outcome.Status,
		TargetCourses: req.TargetCourses,
		MaxCourses:    req.MaxCourses,
		MaxSemesters:  req.MaxSemesters,
	}

	if !outcome.Status.HasSchedule() || len(outcome.Assignment) == 0 {
		return result
	}

	byIndex := make(map[int][]string)
	highest := 0
	for id, start := range outcome.Assignment {
		end := start + closure[id].Span() - 1
		for index := start; index <= end; index++ {
			byIndex[index] = append(byIndex[index], id)
		}
		if end > highest {
			highest = end
		}
	}

	schedule := make(models.Schedule, 0, highest)
	for index := 1; index <= highest; index++ {
		courses := byIndex[index]
		sort.Strings(courses)
		if courses == nil {
			courses = []string{}
		}
		schedule = append(schedule, models.ScheduleEntry{
			Semester: models.Semester{
				Index: index,
				Term:  models.TermForIndex(index, cycle),
				Name:  models.SemesterName(index, cycle),
			},
			Courses: courses,
		})
	}
	result.Schedule = schedule

	return result
}
