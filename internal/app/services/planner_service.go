package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/oguzk/degreeplanner/internal/app/catalog"
	"github.com/oguzk/degreeplanner/internal/app/models"
	"github.com/oguzk/degreeplanner/internal/app/models/dto"
	"github.com/oguzk/degreeplanner/internal/pkg/apperrors"
	"github.com/oguzk/degreeplanner/internal/pkg/logger"
	"github.com/oguzk/degreeplanner/internal/pkg/metrics"
	"github.com/oguzk/degreeplanner/internal/planner"
)

// PlannerService runs the full planning pipeline: closure resolution, model
// construction, solving and schedule extraction. Every internal failure is
// mapped to a PlanningResult with status Error; nothing escapes to the
// caller as a panic.
type PlannerService struct {
	store    *catalog.Store
	cycle    []models.Term
	budget   time.Duration
	validate *validator.Validate
	defaults dto.Defaults
}

// NewPlannerService creates a new planner service instance
func NewPlannerService(store *catalog.Store, cycle []models.Term, budget time.Duration, defaults dto.Defaults) *PlannerService {
	if len(cycle) == 0 {
		cycle = models.DefaultTermCycle
	}
	if budget <= 0 {
		budget = 10 * time.Second
	}
	if defaults.MaxCourses <= 0 {
		defaults.MaxCourses = 5
	}
	if defaults.MaxSemesters <= 0 {
		defaults.MaxSemesters = 8
	}
	return &PlannerService{
		store:    store,
		cycle:    cycle,
		budget:   budget,
		validate: validator.New(),
		defaults: defaults,
	}
}

// PlanForm validates raw form input and runs the planner. Input validation
// failures are returned as an error for form-level messaging and never reach
// the solver; all later failures surface inside the result.
func (s *PlannerService) PlanForm(ctx context.Context, form dto.PlanRequest) (*models.PlanningResult, error) {
	req, err := form.ToPlanningRequest(s.validate, s.defaults)
	if err != nil {
		return nil, err
	}
	return s.Plan(ctx, req), nil
}

// Plan executes one planning request against the current catalog snapshot.
func (s *PlannerService) Plan(ctx context.Context, req models.PlanningRequest) (result *models.PlanningResult) {
	start := time.Now()
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	log := logger.WithField("request_id", req.RequestID)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("planner panicked")
			fault := fmt.Errorf("%w: %v", apperrors.ErrSolverFault, r)
			result = errorResult(req, fault.Error())
		}
		s.observe(log, result, start)
	}()

	snapshot := s.store.Load()
	if snapshot == nil {
		return errorResult(req, "course catalog unavailable")
	}

	closure, err := planner.Closure(snapshot, req.TargetCourses)
	if err != nil {
		return errorResult(req, err.Error())
	}

	model, err := planner.BuildModel(closure, req, s.cycle)
	if err != nil {
		return errorResult(req, err.Error())
	}

	log.Debug().
		Strs("targets", req.TargetCourses).
		Int("closure", len(closure)).
		Int("max_courses", req.MaxCourses).
		Int("max_semesters", req.MaxSemesters).
		Msg("solving planning model")

	outcome := planner.Solve(ctx, model, s.budget)
	metrics.SolveNodes.Observe(float64(outcome.Nodes))

	return planner.Extract(outcome, closure, req, s.cycle)
}

// ListCourseIdentifiers returns the sorted identifiers of the current
// catalog snapshot, the feed the presentation layer's autocomplete consumes.
func (s *PlannerService) ListCourseIdentifiers() []string {
	snapshot := s.store.Load()
	if snapshot == nil {
		return nil
	}
	return snapshot.ListIdentifiers()
}

// observe records the terminal status in logs and metrics
func (s *PlannerService) observe(log zerolog.Logger, result *models.PlanningResult, start time.Time) {
	if result == nil {
		return
	}
	elapsed := time.Since(start)
	metrics.PlansTotal.WithLabelValues(result.Status.String()).Inc()
	metrics.SolveDuration.Observe(elapsed.Seconds())

	event := log.Info()
	if result.Status == models.StatusError {
		event = log.Error().Str("diagnostic", result.Diagnostic)
	}
	event.
		Str("status", result.Status.String()).
		Dur("elapsed", elapsed).
		Msg("planning completed")
}

// errorResult builds an Error result carrying the diagnostic text
func errorResult(req models.PlanningRequest, diagnostic string) *models.PlanningResult {
	return &models.PlanningResult{
		Status:        models.StatusError,
		Diagnostic:    diagnostic,
		TargetCourses: req.TargetCourses,
		MaxCourses:    req.MaxCourses,
		MaxSemesters:  req.MaxSemesters,
	}
}
