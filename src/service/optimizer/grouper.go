package optimizer

import (
	"regexp"
	"strings"

	"a11ylint/src/model"
)

// Message normalization strips the file-specific parts of a finding
// message so the same kind of issue reported against different files still
// groups together: quoted stylesheet names, "line N" references, and
// pixel values all become placeholders.
var (
	quotedStylesheetPattern = regexp.MustCompile(`['"][^'"]*\.(?:scss|css)['"]`)
	lineRefPattern          = regexp.MustCompile(`(?i)\bline \d+`)
	pixelValuePattern       = regexp.MustCompile(`\b\d+px\b`)
)

// NormalizeMessage replaces file-specific substrings of a message with
// placeholders
func NormalizeMessage(message string) string {
	normalized := quotedStylesheetPattern.ReplaceAllString(message, "<file>")
	normalized = lineRefPattern.ReplaceAllString(normalized, "line <n>")
	normalized = pixelValuePattern.ReplaceAllString(normalized, "<n>px")
	return normalized
}

// PatternKey returns the grouping key for a finding: its check name plus
// the normalized message
func PatternKey(f model.Finding) string {
	return f.Check + "::" + NormalizeMessage(f.Message)
}

// IsStylesheet reports whether a finding's file is a stylesheet
func IsStylesheet(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".scss") || strings.HasSuffix(lower, ".css")
}

// GroupByPattern clusters findings by pattern key. When stylesheetOnly is
// set, findings on non-stylesheet files are left out of every group and
// pass through the optimizer untouched.
func GroupByPattern(findings []model.Finding, stylesheetOnly bool) map[string][]model.Finding {
	groups := make(map[string][]model.Finding)
	for _, f := range findings {
		if stylesheetOnly && !IsStylesheet(f.FilePath) {
			continue
		}
		key := PatternKey(f)
		groups[key] = append(groups[key], f)
	}
	return groups
}
