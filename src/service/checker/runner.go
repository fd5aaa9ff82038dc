package checker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"a11ylint/src/config"
	"a11ylint/src/model"
	"a11ylint/src/service/source"
	"a11ylint/src/util"
)

// Runner manages and runs all checks.
// It handles check registration, parallel execution, and result aggregation.
type Runner struct {
	checks []Check
	cfg    *config.Config
}

// NewRunner creates a new check runner with all checks registered
func NewRunner(provider *source.Provider, cfg *config.Config) *Runner {
	base := NewBaseCheck(provider, cfg)

	checks := []Check{
		NewStylesheetCheck(base, cfg.Checks.Stylesheet),
		NewTemplateCheck(base, cfg.Checks.Template),
	}

	util.Debug("Check runner initialized with %d checks", len(checks))
	for _, c := range checks {
		status := "disabled"
		if c.IsEnabled() {
			status = "enabled"
		}
		util.Debug("  - %s: %s", c.Name(), status)
	}

	return &Runner{
		checks: checks,
		cfg:    cfg,
	}
}

// RunAll executes all enabled checks and returns combined findings
func (r *Runner) RunAll(ctx context.Context) ([]model.Finding, error) {
	startTime := time.Now()
	util.Info("Starting accessibility checks")

	maxParallel := r.cfg.Checks.MaxParallel
	if maxParallel <= 0 {
		maxParallel = 1
	}

	var (
		allFindings []model.Finding
		mu          sync.Mutex
		wg          sync.WaitGroup
		errChan     = make(chan error, len(r.checks))
		sem         = make(chan struct{}, maxParallel)
	)

	enabledCount := 0
	for _, c := range r.checks {
		if !c.IsEnabled() {
			util.Debug("Skipping disabled check: %s", c.Name())
			continue
		}
		enabledCount++

		wg.Add(1)
		go func(check Check) {
			defer wg.Done()

			sem <- struct{}{}        // Acquire semaphore
			defer func() { <-sem }() // Release semaphore

			checkStart := time.Now()
			util.Debug("Running check: %s", check.Name())

			findings, err := check.Run(ctx)
			if err != nil {
				util.Error("Check %s failed: %v", check.Name(), err)
				if r.cfg.Checks.FailFast {
					errChan <- fmt.Errorf("check %s: %w", check.Name(), err)
				}
				return
			}

			util.Info("Check %s found %d issues (took %v)", check.Name(), len(findings), time.Since(checkStart))

			mu.Lock()
			allFindings = append(allFindings, findings...)
			mu.Unlock()
		}(c)
	}

	util.Debug("Running %d enabled checks (max parallel: %d)", enabledCount, maxParallel)

	wg.Wait()
	close(errChan)

	if err, ok := <-errChan; ok {
		util.Error("Checks aborted due to error: %v", err)
		return nil, err
	}

	util.Info("Checks complete: %d total issues found (took %v)", len(allFindings), time.Since(startTime))
	return allFindings, nil
}

// ListChecks returns names of all registered checks
func (r *Runner) ListChecks() []string {
	names := make([]string, len(r.checks))
	for i, c := range r.checks {
		names[i] = c.Name()
	}
	return names
}
