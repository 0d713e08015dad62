package main

import (
	"github.com/spf13/cobra"

	"github.com/oguzk/degreeplanner/internal/app/catalog"
)

func newCheckCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load and validate a course catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if catalogPath == "" {
				catalogPath = cfg.Catalog.Path
			}
			cat, err := catalog.LoadFile(catalogPath)
			if err != nil {
				return err
			}
			return printJSON(map[string]interface{}{
				"path":    catalogPath,
				"courses": cat.Len(),
			})
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "course catalog file (defaults to the configured path)")

	return cmd
}
