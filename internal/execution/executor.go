package execution

import (
	"context"
	"time"

	"fto/internal/domain"
)

// Executor runs suites against the enumerated executables and returns every
// result produced before completion or the first failure
type Executor interface {
	Execute(ctx context.Context, paths []string) ([]domain.SuiteResult, time.Duration, error)
}
