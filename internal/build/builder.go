package build

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"fto/internal/config"
	"fto/internal/discovery"
	"fto/internal/domain"
)

// Builder compiles the integration-test executables via the build tool.
// The build runs twice: once with streamed output so compile errors surface
// directly, once capturing the diagnostic stream for enumeration. The second
// run is a cache hit, so the duplication costs nothing.
type Builder struct {
	config *config.Config
}

// NewBuilder creates a new Builder
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{config: cfg}
}

func (b *Builder) command(ctx context.Context, extra ...string) *exec.Cmd {
	args := []string{"test", "--no-run"}
	if b.config.BuildProfile != "" {
		args = append(args, "--profile", b.config.BuildProfile)
	}
	args = append(args, extra...)

	cmd := exec.CommandContext(ctx, b.config.BuildCommand, args...)
	cmd.Dir = b.config.ProjectPath
	cmd.Env = append(os.Environ(), b.config.BaseEnv()...)
	return cmd
}

// Build compiles the test executables with output streamed to the caller's
// terminal. A compile error fails the whole run here, before any enumeration
// or filtering can hide it.
func (b *Builder) Build(ctx context.Context) error {
	cmd := b.command(ctx)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("build test executables: %w", err)
	}
	return nil
}

// Manifest re-runs the build with the JSON message format and returns the
// built test executables as typed records.
func (b *Builder) Manifest(ctx context.Context) ([]domain.Artifact, error) {
	cmd := b.command(ctx, "--message-format", "json")
	cmd.Stderr = os.Stderr

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("enumerate test executables: %w", err)
	}

	artifacts, err := discovery.ParseManifest(&out)
	if err != nil {
		return nil, err
	}
	if len(artifacts) == 0 {
		return nil, fmt.Errorf("build manifest listed no test executables")
	}
	return artifacts, nil
}

// ExecutablePaths re-runs the build capturing the human-readable diagnostic
// stream and scrapes the Executable lines. Legacy enumeration for build
// tools without a JSON message stream; the diagnostics arrive on stderr.
func (b *Builder) ExecutablePaths(ctx context.Context) ([]string, error) {
	cmd := b.command(ctx)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("enumerate test executables: %w", err)
	}

	paths, err := discovery.ParseExecutableLines(&out)
	if err != nil {
		return nil, fmt.Errorf("scrape executable lines: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("build output listed no test executables")
	}
	return paths, nil
}
