package deps

import (
	"fmt"
	"reflect"
	"testing"
)

// graphFromEdges builds an in-memory graph without touching the filesystem
func graphFromEdges(files []string, edges [][2]string) *Graph {
	g := newGraph()
	for _, f := range files {
		g.addFile(f)
	}
	for _, e := range edges {
		g.addEdge(e[0], e[1])
	}
	return g
}

func TestDirectLookupsUnknownFile(t *testing.T) {
	g := graphFromEdges([]string{"/a.scss"}, nil)

	if got := g.DirectImports("/missing.scss"); len(got) != 0 {
		t.Fatalf("DirectImports = %v, want empty", got)
	}
	if got := g.DirectImporters("/missing.scss"); len(got) != 0 {
		t.Fatalf("DirectImporters = %v, want empty", got)
	}
	if got := g.AllDescendants("/missing.scss"); len(got) != 0 {
		t.Fatalf("AllDescendants = %v, want empty", got)
	}
}

func TestAllDescendantsTransitive(t *testing.T) {
	g := graphFromEdges(nil, [][2]string{
		{"/a.scss", "/b.scss"},
		{"/b.scss", "/c.scss"},
		{"/c.scss", "/d.scss"},
	})

	got := g.AllDescendants("/a.scss")
	want := []string{"/b.scss", "/c.scss", "/d.scss"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AllDescendants = %v, want %v", got, want)
	}

	got = g.AllAncestors("/d.scss")
	want = []string{"/a.scss", "/b.scss", "/c.scss"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AllAncestors = %v, want %v", got, want)
	}
}

func TestCycleSafety(t *testing.T) {
	g := graphFromEdges(nil, [][2]string{
		{"/a.scss", "/b.scss"},
		{"/b.scss", "/a.scss"},
	})

	// Repeated calls must terminate and return stable results
	for i := 0; i < 3; i++ {
		desc := g.AllDescendants("/a.scss")
		if !reflect.DeepEqual(desc, []string{"/b.scss"}) {
			t.Fatalf("AllDescendants = %v, want [/b.scss]", desc)
		}
		anc := g.AllAncestors("/a.scss")
		if !reflect.DeepEqual(anc, []string{"/b.scss"}) {
			t.Fatalf("AllAncestors = %v, want [/b.scss]", anc)
		}
	}

	res := g.FindCommonAncestor([]string{"/a.scss", "/b.scss"})
	if res.Confidence == 0 && res.RootCause != "" {
		t.Fatalf("inconsistent result on cyclic graph: %+v", res)
	}
}

func TestImports(t *testing.T) {
	g := graphFromEdges(nil, [][2]string{
		{"/a.scss", "/b.scss"},
		{"/b.scss", "/c.scss"},
	})

	if !g.Imports("/a.scss", "/c.scss") {
		t.Fatal("expected /a.scss to transitively import /c.scss")
	}
	if g.Imports("/c.scss", "/a.scss") {
		t.Fatal("did not expect /c.scss to import /a.scss")
	}
	if g.Imports("/a.scss", "/a.scss") {
		t.Fatal("a file is not its own descendant without a cycle")
	}
}

func TestFindCommonAncestorEmptyInput(t *testing.T) {
	g := graphFromEdges(nil, nil)

	res := g.FindCommonAncestor(nil)
	if res.RootCause != "" || len(res.ImpactedFiles) != 0 || res.Confidence != 0 {
		t.Fatalf("FindCommonAncestor([]) = %+v, want zero result", res)
	}
}

func TestFindCommonAncestorSingleFile(t *testing.T) {
	g := graphFromEdges([]string{"/only.scss"}, nil)

	res := g.FindCommonAncestor([]string{"/only.scss"})
	if res.RootCause != "/only.scss" {
		t.Fatalf("RootCause = %q, want /only.scss", res.RootCause)
	}
	if !reflect.DeepEqual(res.ImpactedFiles, []string{"/only.scss"}) {
		t.Fatalf("ImpactedFiles = %v", res.ImpactedFiles)
	}
	if res.Confidence != 1 {
		t.Fatalf("Confidence = %v, want 1", res.Confidence)
	}
}

func TestFindCommonAncestorIndependentFiles(t *testing.T) {
	g := graphFromEdges([]string{"/component-a.scss", "/independent.scss"}, nil)

	files := []string{"/component-a.scss", "/independent.scss"}
	res := g.FindCommonAncestor(files)
	if res.RootCause != "" {
		t.Fatalf("RootCause = %q, want none", res.RootCause)
	}
	if res.Confidence != 0 {
		t.Fatalf("Confidence = %v, want 0", res.Confidence)
	}
	if !reflect.DeepEqual(res.ImpactedFiles, files) {
		t.Fatalf("ImpactedFiles = %v, want inputs", res.ImpactedFiles)
	}
}

func TestFindCommonAncestorSharedPartial(t *testing.T) {
	var edges [][2]string
	var files []string
	for i := 1; i <= 5; i++ {
		f := fmt.Sprintf("/component-%d.scss", i)
		files = append(files, f)
		edges = append(edges, [2]string{f, "/_animations.scss"})
	}
	g := graphFromEdges(nil, edges)

	res := g.FindCommonAncestor(files)
	if res.RootCause != "/_animations.scss" {
		t.Fatalf("RootCause = %q, want /_animations.scss", res.RootCause)
	}
	if len(res.ImpactedFiles) != 5 {
		t.Fatalf("ImpactedFiles = %v, want all five", res.ImpactedFiles)
	}
	if res.Confidence != 1 {
		t.Fatalf("Confidence = %v, want 1", res.Confidence)
	}
}

func TestFindCommonAncestorTransitiveRootCause(t *testing.T) {
	// Both components reach the partial through an intermediate layer
	g := graphFromEdges(nil, [][2]string{
		{"/one.scss", "/_layer.scss"},
		{"/two.scss", "/_layer.scss"},
		{"/_layer.scss", "/_base.scss"},
	})

	res := g.FindCommonAncestor([]string{"/one.scss", "/two.scss"})
	// _layer has two direct importers among the inputs, _base has none
	if res.RootCause != "/_layer.scss" {
		t.Fatalf("RootCause = %q, want /_layer.scss", res.RootCause)
	}
	if res.Confidence != 1 {
		t.Fatalf("Confidence = %v, want 1", res.Confidence)
	}
}

func TestFindCommonAncestorDeterministicTieBreak(t *testing.T) {
	// Two shared partials with identical direct-importer counts; the
	// lexicographically smaller path must win, regardless of input order.
	edges := [][2]string{
		{"/x.scss", "/_alpha.scss"},
		{"/x.scss", "/_beta.scss"},
		{"/y.scss", "/_alpha.scss"},
		{"/y.scss", "/_beta.scss"},
	}
	g := graphFromEdges(nil, edges)

	first := g.FindCommonAncestor([]string{"/x.scss", "/y.scss"})
	second := g.FindCommonAncestor([]string{"/y.scss", "/x.scss"})

	if first.RootCause != "/_alpha.scss" {
		t.Fatalf("RootCause = %q, want /_alpha.scss", first.RootCause)
	}
	if second.RootCause != first.RootCause {
		t.Fatalf("tie-break not stable: %q vs %q", first.RootCause, second.RootCause)
	}
}

func TestFindCommonAncestorPartialCoverage(t *testing.T) {
	// Three inputs; only the first two depend on the shared partial, the
	// third shares nothing, so the intersection is empty.
	g := graphFromEdges([]string{"/loner.scss"}, [][2]string{
		{"/p.scss", "/_shared.scss"},
		{"/q.scss", "/_shared.scss"},
	})

	res := g.FindCommonAncestor([]string{"/p.scss", "/q.scss", "/loner.scss"})
	if res.RootCause != "" || res.Confidence != 0 {
		t.Fatalf("expected no common ancestor, got %+v", res)
	}
}

func TestFindCommonAncestorDuplicateInputs(t *testing.T) {
	g := graphFromEdges(nil, [][2]string{
		{"/a.scss", "/_s.scss"},
		{"/b.scss", "/_s.scss"},
	})

	res := g.FindCommonAncestor([]string{"/a.scss", "/a.scss", "/b.scss"})
	if res.RootCause != "/_s.scss" {
		t.Fatalf("RootCause = %q, want /_s.scss", res.RootCause)
	}
	if len(res.ImpactedFiles) != 2 {
		t.Fatalf("ImpactedFiles = %v, want deduplicated inputs", res.ImpactedFiles)
	}
}

func TestStats(t *testing.T) {
	g := graphFromEdges([]string{"/lone.scss"}, [][2]string{
		{"/a.scss", "/b.scss"},
		{"/a.scss", "/c.scss"},
		{"/b.scss", "/c.scss"},
	})

	stats := g.Stats()
	if stats.FileCount != 4 {
		t.Fatalf("FileCount = %d, want 4", stats.FileCount)
	}
	if stats.EdgeCount != 3 {
		t.Fatalf("EdgeCount = %d, want 3", stats.EdgeCount)
	}
	if stats.AvgImportsPerFile != 0.75 {
		t.Fatalf("AvgImportsPerFile = %v, want 0.75", stats.AvgImportsPerFile)
	}
}

func TestStatsEmptyGraph(t *testing.T) {
	g := newGraph()
	stats := g.Stats()
	if stats.FileCount != 0 || stats.EdgeCount != 0 || stats.AvgImportsPerFile != 0 {
		t.Fatalf("stats = %+v, want zero", stats)
	}
}
