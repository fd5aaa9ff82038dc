package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"a11ylint/src/service/deps"
)

func (h *Handler) graphCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print stylesheet dependency graph statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				return fmt.Errorf("--project is required")
			}

			graph, buildStats := deps.Build(projectPath, h.cfg.Scan.IgnorePatterns)
			stats := graph.Stats()

			fmt.Printf("Stylesheet dependency graph for %s:\n", projectPath)
			fmt.Printf("  Files:            %d\n", stats.FileCount)
			fmt.Printf("  Import edges:     %d\n", stats.EdgeCount)
			fmt.Printf("  Avg imports/file: %.2f\n", stats.AvgImportsPerFile)
			fmt.Printf("  Scanned:          %d\n", buildStats.FilesScanned)
			if len(buildStats.SkippedFiles) > 0 {
				fmt.Printf("  Skipped (unreadable): %d\n", len(buildStats.SkippedFiles))
				for _, f := range buildStats.SkippedFiles {
					fmt.Printf("    - %s\n", f)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&projectPath, "project", "p", "", "Project directory (required)")
	cmd.MarkFlagRequired("project")

	return cmd
}
