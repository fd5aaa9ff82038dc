package config

// Config is the root configuration structure
type Config struct {
	Analyzer  AnalyzerConfig  `yaml:"analyzer"`
	Scan      ScanConfig      `yaml:"scan"`
	Checks    ChecksConfig    `yaml:"checks"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
	Severity  SeverityConfig  `yaml:"severity"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// AnalyzerConfig contains analyzer metadata
type AnalyzerConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// ScanConfig contains directory scan settings
type ScanConfig struct {
	StylesheetExtensions []string `yaml:"stylesheet_extensions"`
	TemplateExtensions   []string `yaml:"template_extensions"`
	IgnorePatterns       []string `yaml:"ignore_patterns"`
	MaxFileSizeKB        int      `yaml:"max_file_size_kb"`
}

// ChecksConfig contains settings for all checks
type ChecksConfig struct {
	FailFast            bool                   `yaml:"fail_fast"`
	MaxParallel         int                    `yaml:"max_parallel"`
	ExcludeFilePatterns []string               `yaml:"exclude_file_patterns"`
	Stylesheet          StylesheetChecksConfig `yaml:"stylesheet"`
	Template            TemplateChecksConfig   `yaml:"template"`
}

// StylesheetChecksConfig contains stylesheet check settings
type StylesheetChecksConfig struct {
	Enabled       bool `yaml:"enabled"`
	MinFontSizePx int  `yaml:"min_font_size_px"`
}

// TemplateChecksConfig contains template check settings
type TemplateChecksConfig struct {
	Enabled bool `yaml:"enabled"`
}

// OptimizerConfig contains root-cause optimizer settings
type OptimizerConfig struct {
	Enabled       bool    `yaml:"enabled"`
	MinGroupSize  int     `yaml:"min_group_size"`
	ScssOnly      bool    `yaml:"scss_only"`
	MinConfidence float64 `yaml:"min_confidence"`
}

// SeverityConfig contains severity settings
type SeverityConfig struct {
	MinSeverity string            `yaml:"min_severity"`
	Overrides   map[string]string `yaml:"overrides"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Formats             []string `yaml:"formats"`
	OutputDir           string   `yaml:"output_dir"`
	IncludeSuggestions  bool     `yaml:"include_suggestions"`
	MaxFindingsPerCheck int      `yaml:"max_findings_per_check"`
	HotspotsTopN        int      `yaml:"hotspots_top_n"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	Format           string `yaml:"format"` // text, json
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
	IncludeCaller    bool   `yaml:"include_caller"`
}
