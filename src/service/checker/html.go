package checker

import (
	"context"
	"regexp"
	"strings"

	"a11ylint/src/config"
	"a11ylint/src/model"
	"a11ylint/src/service/source"
	"a11ylint/src/util"
)

// TemplateCheck scans Angular HTML templates for common accessibility
// violations
type TemplateCheck struct {
	BaseCheck
	cfg config.TemplateChecksConfig
}

// NewTemplateCheck creates a new template check
func NewTemplateCheck(base BaseCheck, cfg config.TemplateChecksConfig) *TemplateCheck {
	return &TemplateCheck{
		BaseCheck: base,
		cfg:       cfg,
	}
}

// Name returns the check name
func (c *TemplateCheck) Name() string {
	return "template"
}

// IsEnabled returns whether the check is enabled
func (c *TemplateCheck) IsEnabled() bool {
	return c.cfg.Enabled
}

var (
	imgTagPattern          = regexp.MustCompile(`<img\b[^>]*>`)
	altAttrPattern         = regexp.MustCompile(`\balt\s*=`)
	iconButtonPattern      = regexp.MustCompile(`<button\b[^>]*>\s*<(?:i|mat-icon|span)\b[^>]*>[^<]*</(?:i|mat-icon|span)>\s*</button>`)
	accessibleNamePattern  = regexp.MustCompile(`\b(?:aria-label|aria-labelledby|\[attr\.aria-label\])\s*=`)
	positiveTabindexRegexp = regexp.MustCompile(`\btabindex\s*=\s*["']([1-9]\d*)["']`)
	autofocusPattern       = regexp.MustCompile(`\bautofocus\b`)
	clickOnDivPattern      = regexp.MustCompile(`<(?:div|span)\b[^>]*\(click\)[^>]*>`)
	rolePattern            = regexp.MustCompile(`\brole\s*=`)
	tabindexPattern        = regexp.MustCompile(`\btabindex\s*=`)
)

// Run scans every template in the project
func (c *TemplateCheck) Run(ctx context.Context) ([]model.Finding, error) {
	templates, err := c.Source.Templates(ctx)
	if err != nil {
		return nil, err
	}

	var findings []model.Finding
	skipped := 0

	for _, file := range templates {
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

		findings = append(findings, c.checkImgAlt(file, content)...)
		findings = append(findings, c.checkIconButtons(file, content)...)
		findings = append(findings, c.checkTabindex(file, content)...)
		findings = append(findings, c.checkClickTargets(file, content)...)
	}

	if skipped > 0 {
		util.Debug("Template check skipped %d unreadable files", skipped)
	}

	for i := range findings {
		findings[i] = c.ApplyOverride(findings[i])
	}
	return c.FilterBySeverity(findings), nil
}

func (c *TemplateCheck) checkImgAlt(file source.File, content string) []model.Finding {
	var findings []model.Finding
	for _, loc := range imgTagPattern.FindAllStringIndex(content, -1) {
		tag := content[loc[0]:loc[1]]
		if altAttrPattern.MatchString(tag) {
			continue
		}
		findings = append(findings, model.Finding{
			Check:      "imgAlt",
			Category:   model.CategoryImages,
			Severity:   model.SeverityHigh,
			Message:    "Image element without an alt attribute",
			FilePath:   file.Path,
			Line:       lineOf(content, loc[0]),
			Suggestion: "Add alt text describing the image, or alt=\"\" for decorative images",
		})
	}
	return findings
}

func (c *TemplateCheck) checkIconButtons(file source.File, content string) []model.Finding {
	var findings []model.Finding
	for _, loc := range iconButtonPattern.FindAllStringIndex(content, -1) {
		tag := content[loc[0]:loc[1]]
		if accessibleNamePattern.MatchString(tag) {
			continue
		}
		findings = append(findings, model.Finding{
			Check:      "buttonLabel",
			Category:   model.CategoryInteraction,
			Severity:   model.SeverityHigh,
			Message:    "Icon-only button without an accessible name",
			FilePath:   file.Path,
			Line:       lineOf(content, loc[0]),
			Suggestion: "Add an aria-label describing the button action",
		})
	}
	return findings
}

func (c *TemplateCheck) checkTabindex(file source.File, content string) []model.Finding {
	var findings []model.Finding

	for _, loc := range positiveTabindexRegexp.FindAllStringIndex(content, -1) {
		findings = append(findings, model.Finding{
			Check:      "positiveTabindex",
			Category:   model.CategoryInteraction,
			Severity:   model.SeverityMedium,
			Message:    "Positive tabindex overrides the natural tab order",
			FilePath:   file.Path,
			Line:       lineOf(content, loc[0]),
			Suggestion: "Use tabindex=\"0\" and let DOM order drive focus",
		})
	}

	for _, loc := range autofocusPattern.FindAllStringIndex(content, -1) {
		// Skip occurrences inside Angular bindings like [autofocus]
		if loc[0] > 0 && content[loc[0]-1] == '[' {
			continue
		}
		findings = append(findings, model.Finding{
			Check:      "autofocus",
			Category:   model.CategoryInteraction,
			Severity:   model.SeverityLow,
			Message:    "Autofocus can disorient screen reader and keyboard users",
			FilePath:   file.Path,
			Line:       lineOf(content, loc[0]),
			Suggestion: "Move focus programmatically only in response to user action",
		})
	}

	return findings
}

func (c *TemplateCheck) checkClickTargets(file source.File, content string) []model.Finding {
	var findings []model.Finding
	for _, loc := range clickOnDivPattern.FindAllStringIndex(content, -1) {
		tag := content[loc[0]:loc[1]]
		if rolePattern.MatchString(tag) && tabindexPattern.MatchString(tag) {
			continue
		}
		element := "div"
		if strings.HasPrefix(tag, "<span") {
			element = "span"
		}
		findings = append(findings, model.Finding{
			Check:      "clickTarget",
			Category:   model.CategoryInteraction,
			Severity:   model.SeverityMedium,
			Message:    "Click handler on non-interactive " + element + " without role and tabindex",
			FilePath:   file.Path,
			Line:       lineOf(content, loc[0]),
			Suggestion: "Use a button, or add role=\"button\" and tabindex=\"0\" with key handlers",
		})
	}
	return findings
}
