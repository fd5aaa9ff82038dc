package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"a11ylint/src/config"
	"a11ylint/src/model"
	"a11ylint/src/util"
)

// Generator generates reports in various formats
type Generator struct {
	cfg config.OutputConfig
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate generates a report in the specified format
func (g *Generator) Generate(report *model.AnalysisReport, format string) (string, error) {
	util.Debug("Generating report in %s format (%d findings)", format, len(report.Findings))
	switch format {
	case "json":
		return g.generateJSON(report)
	case "markdown", "md":
		return g.generateMarkdown(report)
	case "sarif":
		return g.generateSARIF(report)
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateJSON(report *model.AnalysisReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

var categoryOrder = []model.Category{
	model.CategoryMotion, model.CategoryFocus, model.CategoryTypography,
	model.CategoryImages, model.CategoryInteraction,
}

var severityOrder = []model.Severity{
	model.SeverityCritical, model.SeverityHigh,
	model.SeverityMedium, model.SeverityLow,
}

func (g *Generator) generateMarkdown(report *model.AnalysisReport) (string, error) {
	var sb strings.Builder

	// Header
	sb.WriteString("# Accessibility Analysis Report\n\n")
	sb.WriteString(fmt.Sprintf("**Project:** %s\n", report.ProjectPath))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Total Issues:** %d\n", report.Summary.TotalFindings))
	if opt := report.Summary.Optimization; opt != nil && opt.Enabled && opt.CollapsedCount > 0 {
		sb.WriteString(fmt.Sprintf("- **Optimization:** %d issues → %d unique fixes (%d root causes found)\n",
			opt.OriginalIssueCount, opt.OptimizedIssueCount, opt.RootCausesFound))
	}
	sb.WriteString("\n")

	// By Severity
	sb.WriteString("### Issues by Severity\n\n")
	sb.WriteString("| Severity | Count |\n")
	sb.WriteString("|----------|-------|\n")
	for _, sev := range severityOrder {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", sev, report.Summary.BySeverity[sev]))
	}
	sb.WriteString("\n")

	// By Category
	sb.WriteString("### Issues by Category\n\n")
	sb.WriteString("| Category | Count |\n")
	sb.WriteString("|----------|-------|\n")
	for _, cat := range categoryOrder {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", cat, report.Summary.ByCategory[cat]))
	}
	sb.WriteString("\n")

	// Hotspots
	if len(report.Summary.HotspotFiles) > 0 {
		sb.WriteString("### Hotspot Files\n\n")
		sb.WriteString("| File | Issue Count |\n")
		sb.WriteString("|------|-------------|\n")
		for _, hs := range report.Summary.HotspotFiles {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", hs.FilePath, hs.FindingCount))
		}
		sb.WriteString("\n")
	}

	// Findings by category
	sb.WriteString("## Issues\n\n")

	byCategory := make(map[model.Category][]model.Finding)
	for _, f := range report.Findings {
		byCategory[f.Category] = append(byCategory[f.Category], f)
	}

	for _, cat := range categoryOrder {
		findings := byCategory[cat]
		if len(findings) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("### %s (%d issues)\n\n", strings.Title(string(cat)), len(findings)))

		for _, f := range findings {
			sb.WriteString(fmt.Sprintf("#### %s `%s`\n\n", severityTag(f.Severity), f.Check))
			if f.IsRootCause {
				sb.WriteString(fmt.Sprintf("- **Root cause:** `%s` (affects %d files)\n", f.FilePath, f.ImpactCount))
			} else {
				sb.WriteString(fmt.Sprintf("- **File:** `%s:%d`\n", f.FilePath, f.Line))
			}
			sb.WriteString(fmt.Sprintf("- **Severity:** %s\n", f.Severity))
			sb.WriteString(fmt.Sprintf("- **Description:** %s\n", f.Message))

			if g.cfg.IncludeSuggestions && f.Suggestion != "" {
				sb.WriteString(fmt.Sprintf("- **Suggestion:** %s\n", f.Suggestion))
			}

			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

func (g *Generator) generateSARIF(report *model.AnalysisReport) (string, error) {
	sarif := map[string]any{
		"$schema": "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		"version": "2.1.0",
		"runs": []map[string]any{
			{
				"tool": map[string]any{
					"driver": map[string]any{
						"name":    "a11ylint",
						"version": "1.0.0",
						"rules":   g.buildSARIFRules(report.Findings),
					},
				},
				"results": g.buildSARIFResults(report.Findings),
			},
		},
	}

	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) buildSARIFRules(findings []model.Finding) []map[string]any {
	ruleMap := make(map[string]bool)
	var rules []map[string]any

	for _, f := range findings {
		ruleID := string(f.Category) + "/" + f.Check
		if ruleMap[ruleID] {
			continue
		}
		ruleMap[ruleID] = true

		rules = append(rules, map[string]any{
			"id":   ruleID,
			"name": f.Check,
			"shortDescription": map[string]any{
				"text": f.Message,
			},
			"defaultConfiguration": map[string]any{
				"level": sarifLevel(f.Severity),
			},
		})
	}

	return rules
}

func (g *Generator) buildSARIFResults(findings []model.Finding) []map[string]any {
	var results []map[string]any

	for _, f := range findings {
		message := f.Message
		if f.IsRootCause {
			message = fmt.Sprintf("%s (root cause, affects %d files)", f.Message, f.ImpactCount)
		}

		line := f.Line
		if line <= 0 {
			line = 1
		}

		result := map[string]any{
			"ruleId":  string(f.Category) + "/" + f.Check,
			"level":   sarifLevel(f.Severity),
			"message": map[string]any{"text": message},
			"locations": []map[string]any{
				{
					"physicalLocation": map[string]any{
						"artifactLocation": map[string]any{
							"uri": f.FilePath,
						},
						"region": map[string]any{
							"startLine": line,
						},
					},
				},
			},
		}

		if f.Suggestion != "" {
			result["fixes"] = []map[string]any{
				{
					"description": map[string]any{"text": f.Suggestion},
				},
			}
		}

		results = append(results, result)
	}

	return results
}

func severityTag(s model.Severity) string {
	switch s {
	case model.SeverityCritical:
		return "[CRITICAL]"
	case model.SeverityHigh:
		return "[HIGH]"
	case model.SeverityMedium:
		return "[MEDIUM]"
	default:
		return "[LOW]"
	}
}

func sarifLevel(s model.Severity) string {
	switch s {
	case model.SeverityCritical, model.SeverityHigh:
		return "error"
	case model.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}
