package planner

import (
	"context"
	"errors"
	"time"

	"github.com/oguzk/degreeplanner/internal/app/models"
)

// Outcome is the terminal result of one solve. Assignment maps each course
// to its starting semester and is only set for Optimal and Feasible outcomes.
type Outcome struct {
	Status     models.Status
	Assignment map[string]int
	Makespan   int
	// Nodes counts search node expansions, for logging.
	Nodes int64
}

var (
	errBudgetExpired = errors.New("solver budget expired")
	errCancelled     = errors.New("solver cancelled")
)

// checkMask bounds how often the search polls for cancellation and budget
// expiry: every node whose ordinal matches the mask.
const checkMask = 0x3F

// Solve searches the model for an assignment satisfying all constraints,
// within the given wall-clock budget. The objective is lexicographic:
// minimize the highest occupied semester first, then the total spread (sum
// of starting indices). Search order is fixed by course identifier, so a
// given model always produces the same outcome.
//
// Phase 1 proves the minimal makespan by trying horizons from the model's
// lower bound upward; phase 2 fixes that makespan and minimizes the spread
// by branch and bound. Optimal means both phases completed; Feasible means
// an assignment was found but the budget expired before the proof finished.
func Solve(ctx context.Context, m *Model, budget time.Duration) Outcome {
	s := &searcher{
		m:        m,
		ctx:      ctx,
		deadline: time.Now().Add(budget),
	}

	if ctx.Err() != nil {
		return Outcome{Status: models.StatusInterrupted}
	}
	if len(m.Courses) == 0 {
		return Outcome{Status: models.StatusOptimal, Assignment: map[string]int{}}
	}

	// Phase 1: find the smallest feasible makespan. Each horizon below the
	// found one is exhaustively proven infeasible, so the first solution
	// pins the optimum.
	var incumbent []int
	makespan := 0
	for horizon := m.makespanLowerBound(); horizon <= m.MaxSemesters; horizon++ {
		sol, err := s.search(horizon)
		if err != nil {
			return s.abort(err, nil, 0)
		}
		if sol != nil {
			incumbent = sol
			makespan = horizon
			break
		}
	}
	if incumbent == nil {
		return Outcome{Status: models.StatusInfeasible, Nodes: s.nodes}
	}

	// Phase 2: fix the makespan, minimize the spread.
	s.minimize = true
	s.found = true
	s.best = incumbent
	s.bestSum = sumOf(incumbent)
	best, err := s.search(makespan)
	if err != nil {
		return s.abort(err, s.best, makespan)
	}
	if best == nil {
		// The phase 1 incumbent is itself a solution under this horizon, so
		// a completed phase 2 always retains at least that.
		best = incumbent
	}

	return Outcome{
		Status:     models.StatusOptimal,
		Assignment: s.toMap(best),
		Makespan:   makespanOf(best, m.Spans),
		Nodes:      s.nodes,
	}
}

type searcher struct {
	m        *Model
	ctx      context.Context
	deadline time.Time
	nodes    int64

	// minimize switches the search from first-solution mode to exhaustive
	// branch and bound over the spread objective.
	minimize bool
	best     []int
	bestSum  int
	found    bool
}

// abort maps an interrupting error to the outcome the state machine
// requires: caller cancellation beats budget expiry, and a budget expiry
// with an assignment in hand is Feasible rather than Unknown.
func (s *searcher) abort(err error, incumbent []int, makespan int) Outcome {
	if errors.Is(err, errCancelled) {
		return Outcome{Status: models.StatusInterrupted, Nodes: s.nodes}
	}
	if incumbent != nil {
		return Outcome{
			Status:     models.StatusFeasible,
			Assignment: s.toMap(incumbent),
			Makespan:   makespan,
			Nodes:      s.nodes,
		}
	}
	return Outcome{Status: models.StatusUnknown, Nodes: s.nodes}
}

// search runs one complete DFS under the given horizon. In first-solution
// mode it returns the first assignment found, or nil if the horizon is
// proven infeasible. In minimize mode it exhausts the space, tightening
// s.best, and returns the final incumbent.
func (s *searcher) search(horizon int) ([]int, error) {
	lb, ub, ok := s.initialBounds(horizon)
	if !ok {
		if s.minimize {
			return s.best, nil
		}
		return nil, nil
	}

	n := len(s.m.Courses)
	counts := make([]int, s.m.MaxSemesters+1)
	assign := make([]int, n)

	stop, err := s.dfs(0, lb, ub, counts, assign, 0)
	if err != nil {
		return nil, err
	}
	if s.minimize || stop {
		return s.best, nil
	}
	return nil, nil
}

// dfs assigns courses in fixed lexicographic order, one per level, with
// forward propagation of precedence bounds. Returns stop=true when a
// first-solution search can unwind.
func (s *searcher) dfs(pos int, lb, ub, counts, assign []int, sum int) (bool, error) {
	s.nodes++
	if s.nodes&checkMask == 0 {
		if s.ctx.Err() != nil {
			return false, errCancelled
		}
		if time.Now().After(s.deadline) {
			return false, errBudgetExpired
		}
	}

	n := len(s.m.Courses)
	if pos == n {
		if !s.minimize {
			s.best = append([]int(nil), assign...)
			s.found = true
			return true, nil
		}
		if !s.found || sum < s.bestSum {
			s.best = append([]int(nil), assign...)
			s.bestSum = sum
			s.found = true
		}
		return false, nil
	}

	span := s.m.Spans[pos]
	for _, v := range s.m.Domains[pos] {
		if v < lb[pos] {
			continue
		}
		if v > ub[pos] {
			break
		}
		// A spanning course needs capacity in every semester it occupies.
		full := false
		for o := v; o < v+span; o++ {
			if counts[o] >= s.m.MaxCourses {
				full = true
				break
			}
		}
		if full {
			continue
		}

		newLb, newUb, ok := s.propagate(pos, v, lb, ub, assign)
		if !ok {
			continue
		}

		if s.minimize && s.found {
			bound := sum + v
			feasible := true
			for j := pos + 1; j < n; j++ {
				first, ok := firstFeasible(s.m.Domains[j], newLb[j], newUb[j])
				if !ok {
					feasible = false
					break
				}
				bound += first
			}
			if !feasible || bound >= s.bestSum {
				continue
			}
		}

		assign[pos] = v
		for o := v; o < v+span; o++ {
			counts[o]++
		}
		stop, err := s.dfs(pos+1, newLb, newUb, counts, assign, sum+v)
		for o := v; o < v+span; o++ {
			counts[o]--
		}
		assign[pos] = 0
		if err != nil {
			return false, err
		}
		if stop {
			return true, nil
		}
	}

	return false, nil
}

// propagate applies the precedence constraints of assigning course pos to
// semester v: assigned neighbors are checked directly, unassigned ones get
// tightened bounds. Returns ok=false when the assignment is inconsistent or
// empties a future domain.
func (s *searcher) propagate(pos, v int, lb, ub, assign []int) ([]int, []int, bool) {
	newLb := append([]int(nil), lb...)
	newUb := append([]int(nil), ub...)
	newLb[pos], newUb[pos] = v, v

	// A prerequisite finishing at start+span-1 must do so strictly before
	// its dependent starts.
	for _, p := range s.m.Prereqs[pos] {
		if p < pos {
			if assign[p]+s.m.Spans[p] > v {
				return nil, nil, false
			}
			continue
		}
		if last := v - s.m.Spans[p]; last < newUb[p] {
			newUb[p] = last
		}
	}
	for _, d := range s.m.Dependents[pos] {
		if d < pos {
			if assign[d] < v+s.m.Spans[pos] {
				return nil, nil, false
			}
			continue
		}
		if first := v + s.m.Spans[pos]; first > newLb[d] {
			newLb[d] = first
		}
	}

	for j := pos + 1; j < len(s.m.Courses); j++ {
		if _, ok := firstFeasible(s.m.Domains[j], newLb[j], newUb[j]); !ok {
			return nil, nil, false
		}
	}

	return newLb, newUb, true
}

// initialBounds derives static per-course bounds for a horizon from the
// longest prerequisite chains below and above each course. ok=false means
// the horizon is trivially infeasible.
func (s *searcher) initialBounds(horizon int) ([]int, []int, bool) {
	n := len(s.m.Courses)
	depth := make([]int, n)
	height := make([]int, n)

	var computeDepth func(i int) int
	computeDepth = func(i int) int {
		if depth[i] != 0 {
			return depth[i]
		}
		d := s.m.Spans[i]
		for _, p := range s.m.Prereqs[i] {
			if pd := computeDepth(p) + s.m.Spans[i]; pd > d {
				d = pd
			}
		}
		depth[i] = d
		return d
	}
	var computeHeight func(i int) int
	computeHeight = func(i int) int {
		if height[i] != 0 {
			return height[i]
		}
		h := s.m.Spans[i]
		for _, d := range s.m.Dependents[i] {
			if dh := computeHeight(d) + s.m.Spans[i]; dh > h {
				h = dh
			}
		}
		height[i] = h
		return h
	}

	// depth is the earliest finish of course i, so its earliest start backs
	// off by the span; height bounds the latest start the same way.
	lb := make([]int, n)
	ub := make([]int, n)
	for i := 0; i < n; i++ {
		lb[i] = computeDepth(i) - s.m.Spans[i] + 1
		ub[i] = horizon - computeHeight(i) + 1
		if lb[i] > ub[i] {
			return nil, nil, false
		}
		if _, ok := firstFeasible(s.m.Domains[i], lb[i], ub[i]); !ok {
			return nil, nil, false
		}
	}
	return lb, ub, true
}

func (s *searcher) toMap(assign []int) map[string]int {
	out := make(map[string]int, len(assign))
	for i, v := range assign {
		out[s.m.Courses[i]] = v
	}
	return out
}

// firstFeasible returns the smallest domain value within [lb, ub].
func firstFeasible(domain []int, lb, ub int) (int, bool) {
	for _, v := range domain {
		if v < lb {
			continue
		}
		if v > ub {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

func sumOf(assign []int) int {
	sum := 0
	for _, v := range assign {
		sum += v
	}
	return sum
}

// makespanOf returns the highest semester any course occupies.
func makespanOf(assign, spans []int) int {
	max := 0
	for i, v := range assign {
		if end := v + spans[i] - 1; end > max {
			max = end
		}
	}
	return max
}
