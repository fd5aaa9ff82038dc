package optimizer

import (
	"sort"

	"a11ylint/src/model"
	"a11ylint/src/service/deps"
	"a11ylint/src/util"
)

// Options controls the root-cause collapser
type Options struct {
	Enabled       bool
	MinGroupSize  int
	ScssOnly      bool
	MinConfidence float64
}

// DefaultOptions returns the default optimizer options
func DefaultOptions() Options {
	return Options{
		Enabled:       true,
		MinGroupSize:  2,
		ScssOnly:      true,
		MinConfidence: 0.5,
	}
}

// Result is the outcome of an optimization pass
type Result struct {
	Findings []model.Finding
	Stats    model.OptimizationStats
}

// rootCauseKey identifies a synthetic root-cause finding; each triple is
// emitted at most once per optimization run, even when the same collapse
// applies independently to many components.
type rootCauseKey struct {
	file    string
	check   string
	message string
}

// Optimizer collapses groups of same-pattern findings on stylesheet files
// into a single root-cause finding when the dependency graph shows one
// shared import explains them all. On any uncertainty a group is kept
// unchanged; collapsing never loses a distinct issue.
type Optimizer struct {
	graph   *deps.Graph
	opts    Options
	emitted map[rootCauseKey]struct{}
}

// New creates an optimizer over a pre-built dependency graph
func New(graph *deps.Graph, opts Options) *Optimizer {
	if opts.MinGroupSize <= 0 {
		opts.MinGroupSize = 2
	}
	if opts.MinConfidence <= 0 {
		opts.MinConfidence = 0.5
	}
	return &Optimizer{
		graph:   graph,
		opts:    opts,
		emitted: make(map[rootCauseKey]struct{}),
	}
}

// Run builds the dependency graph for projectRoot and optimizes findings
// against it in one call
func Run(findings []model.Finding, projectRoot string, ignorePatterns []string, opts Options) Result {
	graph, _ := deps.Build(projectRoot, ignorePatterns)
	return New(graph, opts).Optimize(findings)
}

// collapse describes a group that will be replaced by one synthetic finding
type collapse struct {
	synthetic model.Finding
	files     map[string]struct{}
	emit      bool
	placed    bool
}

// Optimize returns the collapsed finding list. Order of untouched findings
// is preserved; each synthetic finding takes the position of the first
// finding it replaces.
func (o *Optimizer) Optimize(findings []model.Finding) Result {
	stats := model.OptimizationStats{
		Enabled:             o.opts.Enabled,
		OriginalIssueCount:  len(findings),
		OptimizedIssueCount: len(findings),
	}

	if !o.opts.Enabled || len(findings) == 0 {
		return Result{Findings: findings, Stats: stats}
	}

	groups := GroupByPattern(findings, o.opts.ScssOnly)

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	collapses := make(map[string]*collapse)
	for _, key := range keys {
		group := groups[key]
		if len(group) < o.opts.MinGroupSize {
			continue
		}

		fileSet := make(map[string]struct{})
		for _, f := range group {
			if !IsStylesheet(f.FilePath) {
				continue
			}
			fileSet[deps.NormalizePath(f.FilePath)] = struct{}{}
		}
		if len(fileSet) < o.opts.MinGroupSize {
			continue
		}

		files := make([]string, 0, len(fileSet))
		for f := range fileSet {
			files = append(files, f)
		}
		sort.Strings(files)

		res := o.graph.FindCommonAncestor(files)
		if res.RootCause == "" || res.Confidence < o.opts.MinConfidence {
			util.Debug("Group %q not collapsed (confidence %.2f)", key, res.Confidence)
			continue
		}

		first := group[0]
		synthetic := first
		synthetic.FilePath = res.RootCause
		synthetic.Line = 0
		synthetic.IsRootCause = true
		synthetic.ImpactCount = len(res.ImpactedFiles)

		dedupKey := rootCauseKey{file: res.RootCause, check: first.Check, message: first.Message}
		_, seen := o.emitted[dedupKey]
		o.emitted[dedupKey] = struct{}{}

		collapses[key] = &collapse{
			synthetic: synthetic,
			files:     fileSet,
			emit:      !seen,
		}

		util.Debug("Collapsing %d findings into root cause %s (confidence %.2f)",
			len(res.ImpactedFiles), res.RootCause, res.Confidence)
	}

	if len(collapses) == 0 {
		return Result{Findings: findings, Stats: stats}
	}

	optimized := make([]model.Finding, 0, len(findings))
	for _, f := range findings {
		if o.opts.ScssOnly && !IsStylesheet(f.FilePath) {
			optimized = append(optimized, f)
			continue
		}

		c := collapses[PatternKey(f)]
		if c == nil {
			optimized = append(optimized, f)
			continue
		}
		if _, in := c.files[deps.NormalizePath(f.FilePath)]; !in {
			optimized = append(optimized, f)
			continue
		}

		stats.CollapsedCount++
		if c.emit && !c.placed {
			c.placed = true
			stats.RootCausesFound++
			optimized = append(optimized, c.synthetic)
		}
	}

	stats.OptimizedIssueCount = len(optimized)
	return Result{Findings: optimized, Stats: stats}
}
