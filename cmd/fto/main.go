package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"fto/internal/cli"
	"fto/internal/cli/commands"
	"fto/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "fto",
		Short:   "Federation integration-test orchestrator",
		Long:    `Orchestrates the federation integration-test suites: stands up the external Bitcoin daemons, builds the test executables, and runs each suite against the bitcoind, electrs and esplora backends with fail-fast semantics.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode propagates a failing suite's exit code; every other error
// (daemon ERROR status included) exits 1.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
