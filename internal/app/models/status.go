package models

// Status is the terminal outcome of a planning run. Every solve ends in
// exactly one of the six labels below, and only these ever appear in a
// PlanningResult.
type Status string

const (
	// StatusOptimal means a feasible assignment was found and proven optimal.
	StatusOptimal Status = "Optimal"
	// StatusFeasible means a feasible assignment was found but optimality was
	// not proven before the time budget expired.
	StatusFeasible Status = "Feasible"
	// StatusInfeasible means the solver proved no assignment satisfies the
	// constraints.
	StatusInfeasible Status = "Infeasible"
	// StatusError means a structural problem prevented solving, such as an
	// unknown course or a prerequisite cycle.
	StatusError Status = "Error"
	// StatusUnknown means the budget expired before any feasible assignment
	// was found and infeasibility was not proven.
	StatusUnknown Status = "Unknown"
	// StatusInterrupted means the caller cancelled the search before it
	// completed.
	StatusInterrupted Status = "Interrupted"
)

// String returns the bare status label.
func (s Status) String() string {
	return string(s)
}

// Terminal reports whether the status is a terminal solver outcome.
func (s Status) Terminal() bool {
	switch s {
	case StatusOptimal, StatusFeasible, StatusInfeasible, StatusError, StatusUnknown, StatusInterrupted:
		return true
	}
	return false
}

// HasSchedule reports whether a result with this status carries a schedule.
func (s Status) HasSchedule() bool {
	return s == StatusOptimal || s == StatusFeasible
}
