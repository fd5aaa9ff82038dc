package controller

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"a11ylint/src/config"
	"a11ylint/src/model"
	"a11ylint/src/service/checker"
	"a11ylint/src/service/deps"
	"a11ylint/src/service/optimizer"
	"a11ylint/src/service/source"
	"a11ylint/src/util"
)

// AnalysisController orchestrates the accessibility analysis process
type AnalysisController struct {
	cfg *config.Config
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	return &AnalysisController{cfg: cfg}
}

// AnalyzeRequest represents a request to analyze a project directory
type AnalyzeRequest struct {
	ProjectPath string
}

// Analyze runs the full analysis pipeline: check the project, then collapse
// duplicate findings to their root causes through the dependency graph.
func (c *AnalysisController) Analyze(ctx context.Context, req AnalyzeRequest) (*model.AnalysisReport, error) {
	startTime := time.Now()

	root, err := filepath.Abs(req.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving project path: %w", err)
	}
	util.Info("Starting analysis for project: %s", root)

	provider := source.NewProvider(root, c.cfg.Scan)

	runner := checker.NewRunner(provider, c.cfg)
	util.Info("Running checks")
	findings, err := runner.RunAll(ctx)
	if err != nil {
		util.Error("Check run failed: %v", err)
		return nil, err
	}

	var optStats *model.OptimizationStats
	if c.cfg.Optimizer.Enabled {
		result := c.optimize(root, findings)
		findings = result.Findings
		optStats = &result.Stats
	}

	preFilterCount := len(findings)
	findings = c.applyGlobalFilters(findings)
	if preFilterCount != len(findings) {
		util.Debug("Global filters reduced findings from %d to %d", preFilterCount, len(findings))
	}

	report := &model.AnalysisReport{
		ProjectPath: root,
		GeneratedAt: time.Now().UTC(),
		Findings:    findings,
		Summary:     c.generateSummary(findings, optStats),
	}

	util.Info("Analysis complete: %d issues found (took %v)", len(findings), time.Since(startTime))

	return report, nil
}

// optimize builds the stylesheet dependency graph and collapses duplicate
// findings to their shared root causes
func (c *AnalysisController) optimize(root string, findings []model.Finding) optimizer.Result {
	util.Info("Optimizing findings through the stylesheet dependency graph")

	graph, buildStats := deps.Build(root, c.cfg.Scan.IgnorePatterns)
	if len(buildStats.SkippedFiles) > 0 {
		util.Warn("Graph build skipped %d unreadable files", len(buildStats.SkippedFiles))
	}

	opt := optimizer.New(graph, optimizer.Options{
		Enabled:       true,
		MinGroupSize:  c.cfg.Optimizer.MinGroupSize,
		ScssOnly:      c.cfg.Optimizer.ScssOnly,
		MinConfidence: c.cfg.Optimizer.MinConfidence,
	})
	result := opt.Optimize(findings)

	if result.Stats.CollapsedCount > 0 {
		util.Info("Optimization: %d issues → %d unique fixes (%d root causes)",
			result.Stats.OriginalIssueCount, result.Stats.OptimizedIssueCount,
			result.Stats.RootCausesFound)
	}

	return result
}

func (c *AnalysisController) applyGlobalFilters(findings []model.Finding) []model.Finding {
	maxPerCheck := c.cfg.Output.MaxFindingsPerCheck
	if maxPerCheck <= 0 {
		return findings
	}

	counts := make(map[string]int)
	filtered := make([]model.Finding, 0, len(findings))
	for _, f := range findings {
		if counts[f.Check] >= maxPerCheck {
			continue
		}
		counts[f.Check]++
		filtered = append(filtered, f)
	}

	return filtered
}

func (c *AnalysisController) generateSummary(findings []model.Finding, optStats *model.OptimizationStats) model.ReportSummary {
	byCategory := make(map[model.Category]int)
	bySeverity := make(map[model.Severity]int)
	byFile := make(map[string]int)

	for _, f := range findings {
		byCategory[f.Category]++
		bySeverity[f.Severity]++
		byFile[f.FilePath]++
	}

	type fileCount struct {
		path  string
		count int
	}
	var files []fileCount
	for path, count := range byFile {
		files = append(files, fileCount{path, count})
	}
	for i := 0; i < len(files); i++ {
		for j := i + 1; j < len(files); j++ {
			if files[j].count > files[i].count ||
				(files[j].count == files[i].count && files[j].path < files[i].path) {
				files[i], files[j] = files[j], files[i]
			}
		}
	}

	topN := c.cfg.Output.HotspotsTopN
	if topN > len(files) {
		topN = len(files)
	}

	hotspots := make([]model.FileHotspot, topN)
	for i := 0; i < topN; i++ {
		hotspots[i] = model.FileHotspot{
			FilePath:     files[i].path,
			FindingCount: files[i].count,
		}
	}

	return model.ReportSummary{
		TotalFindings: len(findings),
		ByCategory:    byCategory,
		BySeverity:    bySeverity,
		HotspotFiles:  hotspots,
		Optimization:  optStats,
	}
}
