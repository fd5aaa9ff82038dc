package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// envVarPattern matches ${VAR} or ${VAR:-default}
var envVarPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// Load loads configuration from a YAML file, overlaying values on the
// defaults. Environment variables can be referenced in the YAML using:
//   - ${VAR_NAME} - substitutes the value of VAR_NAME, empty string if not set
//   - ${VAR_NAME:-default} - substitutes VAR_NAME or "default" if not set
//
// When configPath is empty, a set of conventional locations is probed; if
// none exists the defaults are returned unchanged.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	filePath := resolveConfigPath(configPath)
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := expandEnvVars(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

func resolveConfigPath(configPath string) string {
	if configPath != "" {
		return configPath
	}

	candidates := []string{
		"a11ylint.yaml",
		"config/a11ylint.yaml",
		filepath.Join(os.Getenv("HOME"), ".a11ylint", "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

func expandEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		sub := envVarPattern.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}

		if val, exists := os.LookupEnv(sub[1]); exists {
			return val
		}
		if len(sub) >= 3 {
			return sub[2]
		}
		return ""
	})
}
