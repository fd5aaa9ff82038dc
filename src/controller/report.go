package controller

import (
	"os"
	"path/filepath"

	"a11ylint/src/config"
	"a11ylint/src/model"
	"a11ylint/src/service/report"
	"a11ylint/src/util"
)

// ReportController handles report generation
type ReportController struct {
	cfg *config.Config
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg}
}

// GenerateReports generates reports in all configured formats
func (c *ReportController) GenerateReports(analysisReport *model.AnalysisReport) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Output.Formats), c.cfg.Output.Formats)
	generator := report.NewGenerator(c.cfg.Output)
	var outputPaths []string

	for _, format := range c.cfg.Output.Formats {
		util.Debug("Generating %s report", format)
		output, err := generator.Generate(analysisReport, format)
		if err != nil {
			util.Error("Failed to generate %s report: %v", format, err)
			return nil, err
		}

		outputPath := c.getOutputPath(analysisReport.ProjectPath, format)

		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			util.Error("Failed to create output directory: %v", err)
			return nil, err
		}

		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			util.Error("Failed to write report to %s: %v", outputPath, err)
			return nil, err
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString generates a report to a string
func (c *ReportController) GenerateToString(analysisReport *model.AnalysisReport, format string) (string, error) {
	generator := report.NewGenerator(c.cfg.Output)
	return generator.Generate(analysisReport, format)
}

func (c *ReportController) getOutputPath(projectPath, format string) string {
	ext := format
	if format == "markdown" {
		ext = "md"
	}

	filename := filepath.Base(projectPath) + "-a11y-report." + ext
	return filepath.Join(c.cfg.Output.OutputDir, filename)
}
