package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"a11ylint/src/controller"
	"a11ylint/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		projectPath string
		outputDir   string
		format      string
		noOptimize  bool
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a project for accessibility issues",
		Long:  "Runs all enabled checks against a project directory and generates a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				return fmt.Errorf("--project is required")
			}

			if noOptimize {
				h.cfg.Optimizer.Enabled = false
			}

			util.Info("Analyzing project: %s (timeout: %v)", projectPath, timeout)

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			// Run analysis
			analysisCtrl := controller.NewAnalysisController(h.cfg)
			report, err := analysisCtrl.Analyze(ctx, controller.AnalyzeRequest{
				ProjectPath: projectPath,
			})
			if err != nil {
				util.Error("Analysis failed: %v", err)
				return fmt.Errorf("analysis failed: %w", err)
			}

			// Output results
			reportCtrl := controller.NewReportController(h.cfg)
			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
				if format != "" {
					h.cfg.Output.Formats = []string{format}
				}

				paths, err := reportCtrl.GenerateReports(report)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, path := range paths {
					fmt.Printf("Report written to %s\n", path)
				}
			} else {
				outputFormat := format
				if outputFormat == "" {
					outputFormat = "json"
				}

				output, err := reportCtrl.GenerateToString(report, outputFormat)
				if err != nil {
					// Fallback to raw JSON
					data, _ := json.MarshalIndent(report, "", "  ")
					fmt.Println(string(data))
				} else {
					fmt.Println(output)
				}
			}

			// Print summary to stderr
			fmt.Fprintf(os.Stderr, "\nAnalysis complete:\n")
			fmt.Fprintf(os.Stderr, "  Total issues: %d\n", report.Summary.TotalFindings)
			if opt := report.Summary.Optimization; opt != nil && opt.CollapsedCount > 0 {
				fmt.Fprintf(os.Stderr, "  %d issues → %d unique fixes\n",
					opt.OriginalIssueCount, opt.OptimizedIssueCount)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&projectPath, "project", "p", "", "Project directory (required)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory path")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, markdown, sarif)")
	cmd.Flags().BoolVar(&noOptimize, "no-optimize", false, "Disable root-cause optimization")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "Analysis timeout")

	cmd.MarkFlagRequired("project")

	return cmd
}
