package config

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Analyzer: AnalyzerConfig{
			Name:        "a11ylint",
			Version:     "1.0.0",
			Description: "Angular accessibility analyzer",
		},
		Scan: ScanConfig{
			StylesheetExtensions: []string{".scss", ".css"},
			TemplateExtensions:   []string{".html"},
			IgnorePatterns: []string{
				"node_modules", ".git", "dist", "build", ".angular", "coverage",
			},
			MaxFileSizeKB: 1024,
		},
		Checks: ChecksConfig{
			FailFast:    false,
			MaxParallel: 4,
			ExcludeFilePatterns: []string{
				"**/.spec.html", "vendor/**",
			},
			Stylesheet: StylesheetChecksConfig{
				Enabled:       true,
				MinFontSizePx: 12,
			},
			Template: TemplateChecksConfig{
				Enabled: true,
			},
		},
		Optimizer: OptimizerConfig{
			Enabled:       true,
			MinGroupSize:  2,
			ScssOnly:      true,
			MinConfidence: 0.5,
		},
		Severity: SeverityConfig{
			MinSeverity: "low",
			Overrides:   map[string]string{},
		},
		Output: OutputConfig{
			Formats:             []string{"json"},
			OutputDir:           ".",
			IncludeSuggestions:  true,
			MaxFindingsPerCheck: 100,
			HotspotsTopN:        10,
		},
		Logging: LoggingConfig{
			Level:            "info",
			Format:           "text",
			IncludeTimestamp: true,
			IncludeCaller:    false,
		},
	}
}
