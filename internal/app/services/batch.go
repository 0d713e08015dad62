package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/oguzk/degreeplanner/internal/app/models"
)

// maxConcurrentPlans bounds how many requests one batch solves at a time.
const maxConcurrentPlans = 4

// PlanAll plans several independent requests concurrently. Requests share
// the catalog snapshot each picks up but no mutable state; results are
// returned in request order.
func (s *PlannerService) PlanAll(ctx context.Context, reqs []models.PlanningRequest) []*models.PlanningResult {
	results := make([]*models.PlanningResult, len(reqs))

	var g errgroup.Group
	g.SetLimit(maxConcurrentPlans)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			results[i] = s.Plan(ctx, req)
			return nil
		})
	}
	// Workers never return errors; failures land in their result slot.
	_ = g.Wait()

	return results
}
