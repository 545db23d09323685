package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fto/internal/build"
	"fto/internal/config"
	"fto/internal/daemon"
	"fto/internal/discovery"
	"fto/internal/domain"
	"fto/internal/execution"
	"fto/internal/parser"
	"fto/internal/storage"
	"fto/internal/ui"

	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config     *config.Config
	supervisor *daemon.Supervisor
	builder    *build.Builder
	executor   execution.Executor
	parser     *parser.LibtestParser
	storage    storage.Storage
	formatter  *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	supervisor *daemon.Supervisor,
	builder *build.Builder,
	executor execution.Executor,
	libtestParser *parser.LibtestParser,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:     cfg,
		supervisor: supervisor,
		builder:    builder,
		executor:   executor,
		parser:     libtestParser,
		storage:    st,
		formatter:  formatter,
	}
}

// Execute runs the command. The phases mirror the CI pipeline: daemons up,
// readiness wait, env resolution, build, enumeration, backend passes. Any
// phase error aborts the run; the deferred Stop tears the daemons down on
// every path.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rc.config.ExtraArgs = args
	rc.formatter.Banner()

	if err := rc.supervisor.Start(ctx); err != nil {
		return err
	}
	defer rc.supervisor.Stop()

	status, err := rc.waitForDaemons(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Daemons ready: %s\n", status)

	if _, err := rc.supervisor.ResolveEnv(ctx); err != nil {
		return err
	}

	if !rc.config.Flags.SkipBuild {
		if err := rc.builder.Build(ctx); err != nil {
			return err
		}
	}

	paths, err := rc.enumerate(ctx)
	if err != nil {
		return err
	}

	results, duration, runErr := rc.executor.Execute(ctx, paths)

	var failures []domain.Failure
	for _, result := range results {
		if !result.Success {
			failures = append(failures, rc.parser.ParseFailures(result)...)
		}
	}

	// Persist whatever ran, also on failure, so the failures viewer works
	if err := rc.storage.Save(results, failures, duration, rc.config.TestThreads); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	if runErr != nil {
		return runErr
	}

	rc.formatter.Success()
	return rc.formatter.PrintMetaStats()
}

// waitForDaemons blocks on the readiness wait, showing a spinner when the
// daemon output is suppressed (otherwise the spinner would garble the
// streamed logs).
func (rc *RunCommand) waitForDaemons(ctx context.Context) (string, error) {
	var spinner *ui.WaitSpinner
	if rc.config.SuppressDaemonOutput() {
		spinner = ui.NewWaitSpinner()
	}
	status, err := rc.supervisor.WaitReady(ctx)
	if spinner != nil {
		spinner.Finish()
	}
	return status, err
}

// enumerate produces the executable path list for suite selection
func (rc *RunCommand) enumerate(ctx context.Context) ([]string, error) {
	if rc.config.Flags.LegacyEnumeration {
		return rc.builder.ExecutablePaths(ctx)
	}
	artifacts, err := rc.builder.Manifest(ctx)
	if err != nil {
		return nil, err
	}
	return discovery.Paths(artifacts), nil
}
