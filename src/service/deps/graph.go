package deps

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"a11ylint/src/util"
)

// Graph holds the stylesheet import relationships of a project as a pair
// of adjacency maps kept as exact inverses: for every edge A -> B,
// B is in imports[A] and A is in importedBy[B]. The graph is built once
// per analysis run and never mutated afterward.
type Graph struct {
	files      map[string]struct{}
	imports    map[string]map[string]struct{}
	importedBy map[string]map[string]struct{}
}

// BuildStats describes the outcome of a graph build. Skipped files are
// recorded so a best-effort walk is still observable.
type BuildStats struct {
	FilesScanned int
	SkippedFiles []string
	EdgeCount    int
}

var (
	importStmtPattern = regexp.MustCompile(`@import\s+([^;]+);`)
	importURLPattern  = regexp.MustCompile(`@import\s+url\(\s*['"]?([^'")]+)['"]?\s*\)`)
	usePattern        = regexp.MustCompile(`@use\s+['"]([^'"]+)['"]`)
	forwardPattern    = regexp.MustCompile(`@forward\s+['"]([^'"]+)['"]`)
	quotedTarget      = regexp.MustCompile(`['"]([^'"]+)['"]`)
)

// Build scans projectRoot for stylesheet files and constructs their import
// graph. Unreadable files and unresolvable imports contribute nothing; the
// walk never fails. A project with no stylesheets yields an empty graph.
func Build(projectRoot string, ignorePatterns []string) (*Graph, BuildStats) {
	g := newGraph()
	stats := BuildStats{}
	ignore := util.NewIgnoreMatcher(ignorePatterns)

	root := NormalizePath(projectRoot)
	var stylesheets []string

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if ignore.Matches(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".scss" || ext == ".css" {
			stylesheets = append(stylesheets, NormalizePath(path))
		}
		return nil
	})

	for _, file := range stylesheets {
		g.addFile(file)
	}

	for _, file := range stylesheets {
		content, err := os.ReadFile(file)
		if err != nil {
			stats.SkippedFiles = append(stats.SkippedFiles, file)
			continue
		}
		stats.FilesScanned++

		fromDir := filepath.Dir(file)
		for _, specifier := range ExtractImports(string(content)) {
			resolved := Resolve(fromDir, specifier)
			if resolved == "" {
				continue
			}
			g.addEdge(file, resolved)
		}
	}

	stats.EdgeCount = g.edgeCount()
	util.Debug("Dependency graph built: %d files, %d edges, %d skipped",
		len(g.files), stats.EdgeCount, len(stats.SkippedFiles))

	return g, stats
}

// ExtractImports returns the import-like specifiers found in stylesheet
// text: @import (single or comma-separated targets), @import url(...),
// @use, and @forward. Results are unioned and deduplicated per file.
func ExtractImports(content string) []string {
	seen := make(map[string]struct{})
	var specifiers []string

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		specifiers = append(specifiers, s)
	}

	for _, m := range importStmtPattern.FindAllStringSubmatch(content, -1) {
		targets := strings.TrimSpace(m[1])
		if strings.HasPrefix(targets, "url(") {
			continue // CSS-native form, handled below
		}
		for _, q := range quotedTarget.FindAllStringSubmatch(targets, -1) {
			add(q[1])
		}
	}

	for _, m := range importURLPattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}

	for _, m := range usePattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}

	for _, m := range forwardPattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}

	return specifiers
}

func newGraph() *Graph {
	return &Graph{
		files:      make(map[string]struct{}),
		imports:    make(map[string]map[string]struct{}),
		importedBy: make(map[string]map[string]struct{}),
	}
}

func (g *Graph) addFile(file string) {
	g.files[file] = struct{}{}
}

func (g *Graph) addEdge(importer, imported string) {
	g.addFile(importer)
	g.addFile(imported)

	if g.imports[importer] == nil {
		g.imports[importer] = make(map[string]struct{})
	}
	g.imports[importer][imported] = struct{}{}

	if g.importedBy[imported] == nil {
		g.importedBy[imported] = make(map[string]struct{})
	}
	g.importedBy[imported][importer] = struct{}{}
}

func (g *Graph) edgeCount() int {
	count := 0
	for _, targets := range g.imports {
		count += len(targets)
	}
	return count
}

// Files returns all discovered stylesheet files, sorted
func (g *Graph) Files() []string {
	return sortedKeys(g.files)
}

// Contains reports whether a file was discovered during the build
func (g *Graph) Contains(file string) bool {
	_, ok := g.files[file]
	return ok
}
