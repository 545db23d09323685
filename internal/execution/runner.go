package execution

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"time"

	"fto/internal/config"
	"fto/internal/domain"
)

// Runner executes a single suite executable
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run invokes one suite executable with the configured parallelism hint and
// the caller-supplied passthrough args. env is the backend layer for the
// current pass, applied over the process environment (which already carries
// the daemon-resolved bindings). Output streams to the terminal and is
// captured for failure parsing.
func (r *Runner) Run(ctx context.Context, suite domain.Suite, executable, backend string, env map[string]string) domain.SuiteResult {
	args := []string{"--test-threads", strconv.Itoa(r.config.TestThreads)}
	args = append(args, r.config.ExtraArgs...)

	cmd := exec.CommandContext(ctx, executable, args...)
	cmd.Dir = r.config.ProjectPath

	cmd.Env = append(os.Environ(), r.config.BaseEnv()...)
	for key, value := range env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, value))
	}

	var captured bytes.Buffer
	cmd.Stdout = io.MultiWriter(os.Stdout, &captured)
	cmd.Stderr = io.MultiWriter(os.Stderr, &captured)

	startTime := time.Now()
	err := cmd.Run()

	return domain.SuiteResult{
		Suite:      suite.Name,
		Backend:    backend,
		Executable: executable,
		Success:    err == nil,
		Output:     captured.String(),
		Error:      err,
		Duration:   time.Since(startTime),
	}
}
