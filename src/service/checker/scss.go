package checker

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"a11ylint/src/config"
	"a11ylint/src/model"
	"a11ylint/src/service/source"
	"a11ylint/src/util"
)

// StylesheetCheck scans SCSS/CSS files for motion, focus, and typography
// accessibility issues
type StylesheetCheck struct {
	BaseCheck
	cfg config.StylesheetChecksConfig
}

// NewStylesheetCheck creates a new stylesheet check
func NewStylesheetCheck(base BaseCheck, cfg config.StylesheetChecksConfig) *StylesheetCheck {
	return &StylesheetCheck{
		BaseCheck: base,
		cfg:       cfg,
	}
}

// Name returns the check name
func (c *StylesheetCheck) Name() string {
	return "stylesheet"
}

// IsEnabled returns whether the check is enabled
func (c *StylesheetCheck) IsEnabled() bool {
	return c.cfg.Enabled
}

var (
	animationPattern     = regexp.MustCompile(`(?m)^\s*(?:animation|transition)(?:-[a-z]+)?\s*:`)
	reducedMotionPattern = regexp.MustCompile(`prefers-reduced-motion`)
	outlineNonePattern   = regexp.MustCompile(`outline\s*:\s*(?:none|0)\b`)
	focusStylePattern    = regexp.MustCompile(`:focus(?:-visible|-within)?\b`)
	fontSizePattern      = regexp.MustCompile(`font-size\s*:\s*(\d+)px`)
)

// Run scans every stylesheet in the project
func (c *StylesheetCheck) Run(ctx context.Context) ([]model.Finding, error) {
	stylesheets, err := c.Source.Stylesheets(ctx)
	if err != nil {
		return nil, err
	}

	var findings []model.Finding
	skipped := 0

	for _, file := range stylesheets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if c.ShouldExclude(file.RelPath) {
			continue
		}

		content, err := c.Source.Content(file.Path)
		if err != nil {
			skipped++
			continue
		}

		findings = append(findings, c.checkReducedMotion(file, content)...)
		findings = append(findings, c.checkFocusStyles(file, content)...)
		findings = append(findings, c.checkFontSizes(file, content)...)
	}

	if skipped > 0 {
		util.Debug("Stylesheet check skipped %d unreadable files", skipped)
	}

	for i := range findings {
		findings[i] = c.ApplyOverride(findings[i])
	}
	return c.FilterBySeverity(findings), nil
}

// checkReducedMotion flags files that declare animations or transitions
// without a prefers-reduced-motion guard anywhere in the file
func (c *StylesheetCheck) checkReducedMotion(file source.File, content string) []model.Finding {
	loc := animationPattern.FindStringIndex(content)
	if loc == nil || reducedMotionPattern.MatchString(content) {
		return nil
	}

	return []model.Finding{{
		Check:      "reducedMotion",
		Category:   model.CategoryMotion,
		Severity:   model.SeverityMedium,
		Message:    "Animation or transition without a prefers-reduced-motion guard",
		FilePath:   file.Path,
		Line:       lineOf(content, loc[0]),
		Suggestion: "Wrap motion styles in @media (prefers-reduced-motion: no-preference) or disable them under reduce",
	}}
}

// checkFocusStyles flags outline removal without any focus style elsewhere
// in the file
func (c *StylesheetCheck) checkFocusStyles(file source.File, content string) []model.Finding {
	var findings []model.Finding
	for _, loc := range outlineNonePattern.FindAllStringIndex(content, -1) {
		if focusStylePattern.MatchString(content) {
			break
		}
		findings = append(findings, model.Finding{
			Check:      "focusStyles",
			Category:   model.CategoryFocus,
			Severity:   model.SeverityHigh,
			Message:    "Outline removed without a replacement focus style",
			FilePath:   file.Path,
			Line:       lineOf(content, loc[0]),
			Suggestion: "Provide a visible :focus-visible style when removing the default outline",
		})
	}
	return findings
}

// checkFontSizes flags px font sizes below the configured minimum
func (c *StylesheetCheck) checkFontSizes(file source.File, content string) []model.Finding {
	minPx := c.cfg.MinFontSizePx
	if minPx <= 0 {
		return nil
	}

	var findings []model.Finding
	indices := fontSizePattern.FindAllStringSubmatchIndex(content, -1)
	for _, idx := range indices {
		value, err := strconv.Atoi(content[idx[2]:idx[3]])
		if err != nil || value >= minPx {
			continue
		}
		findings = append(findings, model.Finding{
			Check:      "fontSize",
			Category:   model.CategoryTypography,
			Severity:   model.SeverityMedium,
			Message:    fmt.Sprintf("Font size %dpx is below the %dpx readability minimum", value, minPx),
			FilePath:   file.Path,
			Line:       lineOf(content, idx[0]),
			Suggestion: "Use a larger font size, preferably in rem units",
		})
	}
	return findings
}
