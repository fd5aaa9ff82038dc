package deps

import (
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func abs(t *testing.T, root string, name string) string {
	t.Helper()
	return NormalizePath(filepath.Join(root, name))
}

func TestBuildMultiImportStatement(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"multi-import.scss": "@import 'variables', 'animations';\n",
		"_variables.scss":   "$x: 1;\n",
		"_animations.scss":  "@keyframes spin {}\n",
	})

	g, _ := Build(root, nil)

	got := g.DirectImports(abs(t, root, "multi-import.scss"))
	want := []string{
		abs(t, root, "_animations.scss"),
		abs(t, root, "_variables.scss"),
	}
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DirectImports = %v, want %v", got, want)
	}
}

func TestBuildCSSUrlImport(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"app.css":  "@import url('base.css');\nbody { margin: 0; }\n",
		"base.css": "html { box-sizing: border-box; }\n",
	})

	g, _ := Build(root, nil)

	got := g.DirectImports(abs(t, root, "app.css"))
	want := []string{abs(t, root, "base.css")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DirectImports = %v, want %v", got, want)
	}
}

func TestBuildUseAndForward(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"entry.scss":    "@use 'tokens' as t;\n@forward 'mixins';\n",
		"_tokens.scss":  "",
		"_mixins.scss":  "",
		"unrelated.css": "",
	})

	g, _ := Build(root, nil)

	got := g.DirectImports(abs(t, root, "entry.scss"))
	want := []string{
		abs(t, root, "_mixins.scss"),
		abs(t, root, "_tokens.scss"),
	}
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DirectImports = %v, want %v", got, want)
	}
}

func TestBuildMaintainsInverseMaps(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"a.scss":       "@import 'shared';\n",
		"b.scss":       "@import 'shared';\n@import 'a.scss';\n",
		"_shared.scss": "",
	})

	g, _ := Build(root, nil)

	// For every edge A -> B, B must list A as an importer and vice versa
	for importer, targets := range g.imports {
		for imported := range targets {
			if _, ok := g.importedBy[imported][importer]; !ok {
				t.Fatalf("edge %s -> %s missing from importedBy", importer, imported)
			}
		}
	}
	for imported, importers := range g.importedBy {
		for importer := range importers {
			if _, ok := g.imports[importer][imported]; !ok {
				t.Fatalf("edge %s -> %s missing from imports", importer, imported)
			}
		}
	}
}

func TestBuildSkipsIgnoredDirectories(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"app.scss":                  "",
		"node_modules/lib/dep.scss": "",
		"dist/out.css":              "",
	})

	g, _ := Build(root, []string{"node_modules", "dist"})

	files := g.Files()
	want := []string{abs(t, root, "app.scss")}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("Files = %v, want %v", files, want)
	}
}

func TestBuildUnresolvableImportsDropped(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"app.scss": "@import 'missing';\n@import '~bootstrap/scss/bootstrap';\n",
	})

	g, stats := Build(root, nil)

	if got := g.DirectImports(abs(t, root, "app.scss")); len(got) != 0 {
		t.Fatalf("DirectImports = %v, want none", got)
	}
	if stats.FilesScanned != 1 {
		t.Fatalf("FilesScanned = %d, want 1", stats.FilesScanned)
	}
	if len(stats.SkippedFiles) != 0 {
		t.Fatalf("SkippedFiles = %v, want none", stats.SkippedFiles)
	}
}

func TestBuildEmptyProject(t *testing.T) {
	g, stats := Build(t.TempDir(), nil)

	if len(g.Files()) != 0 {
		t.Fatalf("Files = %v, want empty", g.Files())
	}
	if stats.EdgeCount != 0 || stats.FilesScanned != 0 {
		t.Fatalf("stats = %+v, want zero", stats)
	}
}

func TestExtractImports(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "single import",
			content: "@import 'animations';",
			want:    []string{"animations"},
		},
		{
			name:    "comma separated",
			content: "@import 'a', \"b\", 'c';",
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "url form",
			content: "@import url('base.css');\n@import url(plain.css);",
			want:    []string{"base.css", "plain.css"},
		},
		{
			name:    "use and forward",
			content: "@use 'tokens';\n@forward 'mixins';",
			want:    []string{"tokens", "mixins"},
		},
		{
			name:    "duplicates unioned",
			content: "@import 'x';\n@use 'x';",
			want:    []string{"x"},
		},
		{
			name:    "no directives",
			content: "body { color: red; }",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractImports(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ExtractImports = %v, want %v", got, tt.want)
			}
		})
	}
}
