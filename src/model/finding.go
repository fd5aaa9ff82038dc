package model

import "time"

// Severity represents the severity level of an accessibility finding
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Category represents the category of an accessibility finding
type Category string

const (
	CategoryMotion      Category = "motion"
	CategoryFocus       Category = "focus"
	CategoryTypography  Category = "typography"
	CategoryImages      Category = "images"
	CategoryInteraction Category = "interaction"
)

// Finding represents a single detected accessibility issue
type Finding struct {
	Check       string   `json:"check"`
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	FilePath    string   `json:"file_path"`
	Line        int      `json:"line"`
	Suggestion  string   `json:"suggestion,omitempty"`
	IsRootCause bool     `json:"is_root_cause,omitempty"`
	ImpactCount int      `json:"impact_count,omitempty"`
}

// AnalysisReport represents the complete analysis output
type AnalysisReport struct {
	ProjectPath string        `json:"project_path"`
	GeneratedAt time.Time     `json:"generated_at"`
	Summary     ReportSummary `json:"summary"`
	Findings    []Finding     `json:"findings"`
}

// ReportSummary contains aggregated statistics
type ReportSummary struct {
	TotalFindings int                `json:"total_findings"`
	ByCategory    map[Category]int   `json:"by_category"`
	BySeverity    map[Severity]int   `json:"by_severity"`
	HotspotFiles  []FileHotspot      `json:"hotspot_files"`
	Optimization  *OptimizationStats `json:"optimization,omitempty"`
}

// OptimizationStats describes what the root-cause optimizer did to the finding list
type OptimizationStats struct {
	Enabled             bool `json:"enabled"`
	OriginalIssueCount  int  `json:"original_issue_count"`
	OptimizedIssueCount int  `json:"optimized_issue_count"`
	CollapsedCount      int  `json:"collapsed_count"`
	RootCausesFound     int  `json:"root_causes_found"`
}

// FileHotspot represents a file with many findings
type FileHotspot struct {
	FilePath     string `json:"file_path"`
	FindingCount int    `json:"finding_count"`
}
