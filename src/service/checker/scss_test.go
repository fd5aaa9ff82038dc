package checker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"a11ylint/src/config"
	"a11ylint/src/model"
	"a11ylint/src/service/source"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

func newStylesheetCheck(t *testing.T, root string) *StylesheetCheck {
	t.Helper()
	cfg := config.DefaultConfig()
	provider := source.NewProvider(root, cfg.Scan)
	return NewStylesheetCheck(NewBaseCheck(provider, cfg), cfg.Checks.Stylesheet)
}

func findingsByCheck(findings []model.Finding, check string) []model.Finding {
	var out []model.Finding
	for _, f := range findings {
		if f.Check == check {
			out = append(out, f)
		}
	}
	return out
}

func TestReducedMotionFlagged(t *testing.T) {
	root := writeProject(t, map[string]string{
		"spinner.scss": ".spinner {\n  animation: spin 1s linear infinite;\n}\n",
	})

	findings, err := newStylesheetCheck(t, root).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := findingsByCheck(findings, "reducedMotion")
	if len(got) != 1 {
		t.Fatalf("got %d reducedMotion findings, want 1", len(got))
	}
	if got[0].Line != 2 {
		t.Fatalf("Line = %d, want 2", got[0].Line)
	}
}

func TestReducedMotionGuardSuppresses(t *testing.T) {
	root := writeProject(t, map[string]string{
		"spinner.scss": ".spinner {\n  animation: spin 1s linear infinite;\n}\n" +
			"@media (prefers-reduced-motion: reduce) {\n  .spinner { animation: none; }\n}\n",
	})

	findings, err := newStylesheetCheck(t, root).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := findingsByCheck(findings, "reducedMotion"); len(got) != 0 {
		t.Fatalf("got %d reducedMotion findings, want 0", len(got))
	}
}

func TestFocusStylesFlagged(t *testing.T) {
	root := writeProject(t, map[string]string{
		"button.scss": "button {\n  outline: none;\n}\n",
	})

	findings, err := newStylesheetCheck(t, root).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := findingsByCheck(findings, "focusStyles"); len(got) != 1 {
		t.Fatalf("got %d focusStyles findings, want 1", len(got))
	}
}

func TestFocusStylesReplacementSuppresses(t *testing.T) {
	root := writeProject(t, map[string]string{
		"button.scss": "button {\n  outline: none;\n}\nbutton:focus-visible {\n  outline: 2px solid blue;\n}\n",
	})

	findings, err := newStylesheetCheck(t, root).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := findingsByCheck(findings, "focusStyles"); len(got) != 0 {
		t.Fatalf("got %d focusStyles findings, want 0", len(got))
	}
}

func TestFontSizeBelowMinimum(t *testing.T) {
	root := writeProject(t, map[string]string{
		"text.scss": ".fine { font-size: 14px; }\n.small { font-size: 10px; }\n",
	})

	findings, err := newStylesheetCheck(t, root).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := findingsByCheck(findings, "fontSize")
	if len(got) != 1 {
		t.Fatalf("got %d fontSize findings, want 1", len(got))
	}
	if got[0].Line != 2 {
		t.Fatalf("Line = %d, want 2", got[0].Line)
	}
}

func TestStylesheetCheckHonorsExclusions(t *testing.T) {
	root := writeProject(t, map[string]string{
		"vendor/lib.scss": ".x { animation: fade 1s; }\n",
	})

	cfg := config.DefaultConfig()
	cfg.Checks.ExcludeFilePatterns = []string{"vendor/**"}
	provider := source.NewProvider(root, cfg.Scan)
	check := NewStylesheetCheck(NewBaseCheck(provider, cfg), cfg.Checks.Stylesheet)

	findings, err := check.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("got %d findings in excluded path, want 0", len(findings))
	}
}
