package pass

import (
	"context"
	"fmt"
	"time"

	"fto/internal/config"
	"fto/internal/discovery"
	"fto/internal/domain"
	"fto/internal/execution"
	"fto/internal/ui"
)

// Executor dispatches the backend passes over the enumerated executables.
// Suites run strictly sequentially and the first failure aborts the run with
// the failing invocation's error; the results collected so far are still
// returned so they can be persisted.
type Executor struct {
	config    *config.Config
	runner    *execution.Runner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewExecutor creates a new Executor
func NewExecutor(cfg *config.Config, runner *execution.Runner, filter *discovery.Filter, formatter *ui.Formatter) *Executor {
	return &Executor{
		config:    cfg,
		runner:    runner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs every enabled pass against the enumerated executable paths
func (e *Executor) Execute(ctx context.Context, paths []string) ([]domain.SuiteResult, time.Duration, error) {
	startTime := time.Now()
	var results []domain.SuiteResult

	for _, p := range Passes() {
		if !p.Enabled(e.config.TestOnly) {
			continue
		}

		env, err := p.Env(e.config)
		if err != nil {
			return results, time.Since(startTime), err
		}

		suites := p.Suites(e.config)
		e.formatter.PassStart(p.Backend, len(suites))

		for _, suite := range suites {
			executable, err := e.filter.SelectOne(paths, suite.Pattern)
			if err != nil {
				return results, time.Since(startTime), fmt.Errorf("suite %s: %w", suite.Name, err)
			}

			e.formatter.SuiteStart(suite.Name, p.Backend)
			result := e.runner.Run(ctx, suite, executable, p.Backend, env)
			results = append(results, result)

			if !result.Success {
				e.formatter.SuiteFailed(result)
				return results, time.Since(startTime), fmt.Errorf("suite %s failed against %s: %w", suite.Name, p.Backend, result.Error)
			}
		}

		e.formatter.PassComplete(p.Backend)
	}

	return results, time.Since(startTime), nil
}
