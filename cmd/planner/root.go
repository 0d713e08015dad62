package main

import (
	"github.com/spf13/cobra"

	"github.com/oguzk/degreeplanner/internal/config"
	"github.com/oguzk/degreeplanner/internal/pkg/logger"
)

var (
	cfgPath string
	cfg     *config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "planner",
		Short: "Degree planner: schedule target courses across semesters",
		Long: `planner computes multi-semester course schedules that respect
prerequisite ordering, per-semester capacity, term availability and a
semester horizon, or reports why no such schedule exists.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			logger.Configure(logger.Config{
				Level:  logger.LogLevel(cfg.Logging.Level),
				Pretty: cfg.Logging.Format != "json",
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "path to the configuration file")

	root.AddCommand(newPlanCmd())
	root.AddCommand(newCheckCmd())

	return root
}
