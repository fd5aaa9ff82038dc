package util

import (
	"path/filepath"
	"strings"
)

// IgnoreMatcher matches filesystem paths against scan ignore patterns.
// A path is ignored when any pattern is an exact match for one of its
// components or a substring of the whole path.
type IgnoreMatcher struct {
	patterns []string
}

// NewIgnoreMatcher creates a matcher from a list of ignore patterns
func NewIgnoreMatcher(patterns []string) *IgnoreMatcher {
	return &IgnoreMatcher{patterns: patterns}
}

// Matches checks whether a path should be ignored
func (m *IgnoreMatcher) Matches(path string) bool {
	if len(m.patterns) == 0 {
		return false
	}

	components := strings.Split(filepath.ToSlash(path), "/")
	for _, pattern := range m.patterns {
		if strings.Contains(path, pattern) {
			return true
		}
		for _, c := range components {
			if c == pattern {
				return true
			}
		}
	}

	return false
}

// MatchGlob matches a path against a glob pattern, with ** support
func MatchGlob(pattern, path string) bool {
	if strings.Contains(pattern, "**") {
		return matchDoubleGlob(pattern, path)
	}
	matched, _ := filepath.Match(pattern, path)
	return matched
}

// matchDoubleGlob handles ** patterns in globs
func matchDoubleGlob(pattern, path string) bool {
	parts := strings.Split(pattern, "**")
	if len(parts) != 2 {
		return false
	}

	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	if prefix == "" && suffix != "" {
		return strings.HasSuffix(path, suffix) || strings.Contains(path, "/"+suffix)
	}
	if suffix == "" && prefix != "" {
		return strings.HasPrefix(path, prefix) || strings.Contains(path, prefix+"/")
	}
	if prefix != "" && suffix != "" {
		return strings.Contains(path, prefix) && strings.Contains(path, suffix)
	}

	return false
}
