package deps

import "sort"

// RootCauseResult is the outcome of a common-ancestor query: the single
// shared dependency (if any) that explains an issue reported across a set
// of files, the input files it covers, and the covered fraction.
type RootCauseResult struct {
	RootCause     string
	ImpactedFiles []string
	Confidence    float64
}

// Stats contains diagnostic counts over the graph
type Stats struct {
	FileCount         int
	EdgeCount         int
	AvgImportsPerFile float64
}

// DirectImports returns the files a file imports directly. Unknown files
// return an empty slice.
func (g *Graph) DirectImports(file string) []string {
	return sortedKeys(g.imports[file])
}

// DirectImporters returns the files that import a file directly
func (g *Graph) DirectImporters(file string) []string {
	return sortedKeys(g.importedBy[file])
}

// AllDescendants returns the transitive closure of a file's imports.
// The file itself is not included.
func (g *Graph) AllDescendants(file string) []string {
	visited := make(map[string]struct{})
	g.walk(file, g.imports, visited)
	delete(visited, file)
	return sortedKeys(visited)
}

// AllAncestors returns the transitive closure of a file's importers
func (g *Graph) AllAncestors(file string) []string {
	visited := make(map[string]struct{})
	g.walk(file, g.importedBy, visited)
	delete(visited, file)
	return sortedKeys(visited)
}

// Imports reports whether b is in a's transitive descendant closure
func (g *Graph) Imports(a, b string) bool {
	visited := make(map[string]struct{})
	g.walk(a, g.imports, visited)
	delete(visited, a)
	_, ok := visited[b]
	return ok
}

// walk marks every node reachable from start through adjacency, start
// included. An explicit visited set keeps traversal safe on cyclic graphs
// and bounds growth on deep import chains.
func (g *Graph) walk(start string, adjacency map[string]map[string]struct{}, visited map[string]struct{}) {
	stack := []string{start}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited[node]; ok {
			continue
		}
		visited[node] = struct{}{}

		for next := range adjacency[node] {
			if _, ok := visited[next]; !ok {
				stack = append(stack, next)
			}
		}
	}
}

// FindCommonAncestor finds the single shared dependency that best explains
// an issue reported across a set of files. It intersects the
// self-inclusive descendant closure of every input file, then picks the
// intersection member (preferring non-input members) directly imported by
// the most input files, breaking ties lexicographically so results are
// stable across runs.
func (g *Graph) FindCommonAncestor(files []string) RootCauseResult {
	files = dedupe(files)

	if len(files) == 0 {
		return RootCauseResult{ImpactedFiles: []string{}}
	}
	if len(files) == 1 {
		return RootCauseResult{
			RootCause:     files[0],
			ImpactedFiles: []string{files[0]},
			Confidence:    1,
		}
	}

	closures := make([]map[string]struct{}, len(files))
	for i, f := range files {
		closure := make(map[string]struct{})
		g.walk(f, g.imports, closure)
		closures[i] = closure
	}

	intersection := intersect(closures)
	if len(intersection) == 0 {
		// No shared dependency: the files are independent
		return RootCauseResult{ImpactedFiles: files}
	}

	inputSet := make(map[string]struct{}, len(files))
	for _, f := range files {
		inputSet[f] = struct{}{}
	}

	var candidates []string
	for member := range intersection {
		if _, isInput := inputSet[member]; !isInput {
			candidates = append(candidates, member)
		}
	}
	if len(candidates) == 0 {
		// Every intersection member is one of the inputs
		candidates = sortedKeys(intersection)
	}
	sort.Strings(candidates)

	best := ""
	bestScore := -1
	for _, candidate := range candidates {
		score := 0
		for _, f := range files {
			if _, ok := g.imports[f][candidate]; ok {
				score++
			}
		}
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	var impacted []string
	for i, f := range files {
		if _, ok := closures[i][best]; ok {
			impacted = append(impacted, f)
		}
	}

	return RootCauseResult{
		RootCause:     best,
		ImpactedFiles: impacted,
		Confidence:    float64(len(impacted)) / float64(len(files)),
	}
}

// Stats returns diagnostic counts over the graph
func (g *Graph) Stats() Stats {
	s := Stats{
		FileCount: len(g.files),
		EdgeCount: g.edgeCount(),
	}
	if s.FileCount > 0 {
		s.AvgImportsPerFile = float64(s.EdgeCount) / float64(s.FileCount)
	}
	return s
}

func intersect(sets []map[string]struct{}) map[string]struct{} {
	if len(sets) == 0 {
		return map[string]struct{}{}
	}

	result := make(map[string]struct{})
	for member := range sets[0] {
		inAll := true
		for _, other := range sets[1:] {
			if _, ok := other[member]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			result[member] = struct{}{}
		}
	}
	return result
}

func dedupe(files []string) []string {
	seen := make(map[string]struct{}, len(files))
	out := make([]string, 0, len(files))
	for _, f := range files {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
