package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oguzk/degreeplanner/internal/app/catalog"
	"github.com/oguzk/degreeplanner/internal/app/models"
	"github.com/oguzk/degreeplanner/internal/app/models/dto"
	"github.com/oguzk/degreeplanner/internal/app/services"
)

// batchEntry is one request in a --batch YAML file.
type batchEntry struct {
	TargetCourses string `yaml:"targetCourses"`
	MaxCourses    int    `yaml:"maxCourses"`
	MaxSemesters  int    `yaml:"maxSemesters"`
}

func newPlanCmd() *cobra.Command {
	var (
		catalogPath  string
		targets      string
		maxCourses   int
		maxSemesters int
		timeout      time.Duration
		batchPath    string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute a schedule for the given target courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(catalogPath, timeout)
			if err != nil {
				return err
			}

			if batchPath != "" {
				return runBatch(cmd, svc, batchPath)
			}

			result, err := svc.PlanForm(cmd.Context(), dto.PlanRequest{
				TargetCourses: targets,
				MaxCourses:    maxCourses,
				MaxSemesters:  maxSemesters,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "course catalog file (defaults to the configured path)")
	cmd.Flags().StringVarP(&targets, "targets", "t", "", "comma-separated target course identifiers")
	cmd.Flags().IntVar(&maxCourses, "max-courses", 0, "max courses per semester (0 uses the configured default)")
	cmd.Flags().IntVar(&maxSemesters, "max-semesters", 0, "max semesters (0 uses the configured default)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "solver budget override, e.g. 30s")
	cmd.Flags().StringVar(&batchPath, "batch", "", "YAML file with several requests to plan concurrently")

	return cmd
}

// buildService loads the catalog snapshot and wires the planner service from
// the active configuration.
func buildService(catalogPath string, timeout time.Duration) (*services.PlannerService, error) {
	if catalogPath == "" {
		catalogPath = cfg.Catalog.Path
	}
	cat, err := catalog.LoadFile(catalogPath)
	if err != nil {
		return nil, err
	}

	cycle, err := cfg.TermCycle()
	if err != nil {
		return nil, err
	}

	budget := cfg.SolverBudget()
	if timeout > 0 {
		budget = timeout
	}

	return services.NewPlannerService(catalog.NewStore(cat), cycle, budget, dto.Defaults{
		MaxCourses:   cfg.Planner.DefaultMaxCourses,
		MaxSemesters: cfg.Planner.DefaultMaxSemesters,
	}), nil
}

// runBatch plans every request in a YAML batch file concurrently and prints
// the results in file order.
func runBatch(cmd *cobra.Command, svc *services.PlannerService, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []batchEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("batch file %s contains no requests", path)
	}

	reqs := make([]models.PlanningRequest, 0, len(entries))
	for i, entry := range entries {
		form := dto.PlanRequest{
			TargetCourses: entry.TargetCourses,
			MaxCourses:    entry.MaxCourses,
			MaxSemesters:  entry.MaxSemesters,
		}
		req, err := form.ToPlanningRequest(nil, dto.Defaults{
			MaxCourses:   cfg.Planner.DefaultMaxCourses,
			MaxSemesters: cfg.Planner.DefaultMaxSemesters,
		})
		if err != nil {
			return fmt.Errorf("batch entry %d: %w", i+1, err)
		}
		reqs = append(reqs, req)
	}

	results := svc.PlanAll(cmd.Context(), reqs)
	return printJSON(results)
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
