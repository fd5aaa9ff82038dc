package checker

import (
	"context"

	"a11ylint/src/config"
	"a11ylint/src/model"
	"a11ylint/src/service/source"
	"a11ylint/src/util"
)

// Check is the interface for all accessibility checks
type Check interface {
	// Name returns the check name
	Name() string

	// IsEnabled returns whether the check is enabled
	IsEnabled() bool

	// Run scans the project and returns found issues
	Run(ctx context.Context) ([]model.Finding, error)
}

// BaseCheck provides common functionality for checks
type BaseCheck struct {
	Source *source.Provider
	Cfg    *config.Config
}

// NewBaseCheck creates a new base check
func NewBaseCheck(provider *source.Provider, cfg *config.Config) BaseCheck {
	return BaseCheck{
		Source: provider,
		Cfg:    cfg,
	}
}

// ShouldExclude checks if a file is excluded from checking
func (b *BaseCheck) ShouldExclude(relPath string) bool {
	for _, pattern := range b.Cfg.Checks.ExcludeFilePatterns {
		if util.MatchGlob(pattern, relPath) {
			return true
		}
	}
	return false
}

// FilterBySeverity filters findings by minimum severity
func (b *BaseCheck) FilterBySeverity(findings []model.Finding) []model.Finding {
	minSev := model.Severity(b.Cfg.Severity.MinSeverity)
	order := []model.Severity{
		model.SeverityLow, model.SeverityMedium,
		model.SeverityHigh, model.SeverityCritical,
	}

	minIdx := 0
	for i, s := range order {
		if s == minSev {
			minIdx = i
			break
		}
	}

	filtered := make([]model.Finding, 0, len(findings))
	for _, f := range findings {
		for i, s := range order {
			if s == f.Severity && i >= minIdx {
				filtered = append(filtered, f)
				break
			}
		}
	}

	return filtered
}

// ApplyOverride swaps a finding's severity when the config overrides its check
func (b *BaseCheck) ApplyOverride(f model.Finding) model.Finding {
	if override, ok := b.Cfg.Severity.Overrides[f.Check]; ok {
		f.Severity = model.Severity(override)
	}
	return f
}

// lineOf returns the 1-based line number of a byte offset in content
func lineOf(content string, offset int) int {
	if offset > len(content) {
		offset = len(content)
	}
	line := 1
	for i := 0; i < offset; i++ {
		if content[i] == '\n' {
			line++
		}
	}
	return line
}
