package models

// PlanningRequest carries the parameters of a single planning run. It is
// created per request and discarded once the result is produced.
type PlanningRequest struct {
	// RequestID correlates log lines and results for one run.
	RequestID string `json:"requestId,omitempty"`
	// TargetCourses are the course identifiers the plan must include,
	// trimmed, upper-cased and deduplicated.
	TargetCourses []string `json:"targetCourses"`
	// MaxCourses caps the number of courses assigned to one semester.
	MaxCourses int `json:"maxCourses"`
	// MaxSemesters is the planning horizon.
	MaxSemesters int `json:"maxSemesters"`
}

// Semester is an ordered position in the plan with its cyclic term label.
type Semester struct {
	Index int    `json:"index"`
	Term  Term   `json:"term"`
	Name  string `json:"name"`
}

// ScheduleEntry pairs a semester with the courses assigned to it. Courses
// are identifiers sorted lexicographically; the list may be empty for a gap
// semester between populated ones.
type ScheduleEntry struct {
	Semester Semester `json:"semester"`
	Courses  []string `json:"courses"`
}

// Schedule is the ordered sequence of semesters up to the highest used
// index. Trailing unused semesters are never included.
type Schedule []ScheduleEntry

// PlanningResult is the sole object handed to the presentation layer. It is
// immutable once produced.
type PlanningResult struct {
	Status Status `json:"status"`
	// Diagnostic carries human-readable detail for Error results.
	Diagnostic string   `json:"diagnostic,omitempty"`
	Schedule   Schedule `json:"schedule,omitempty"`

	// Echoed request parameters, verbatim, for display.
	TargetCourses []string `json:"targetCourses"`
	MaxCourses    int      `json:"maxCourses"`
	MaxSemesters  int      `json:"maxSemesters"`
}
