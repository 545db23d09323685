package commands

import (
	"fto/internal/build"
	"fto/internal/cli"
	"fto/internal/config"
	"fto/internal/daemon"
	"fto/internal/discovery"
	"fto/internal/execution"
	"fto/internal/parser"
	"fto/internal/pass"
	"fto/internal/storage"
	"fto/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Daemons  *DaemonsCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	supervisor := daemon.NewSupervisor(cfg)
	builder := build.NewBuilder(cfg)
	filter := discovery.NewFilter()
	runner := execution.NewRunner(cfg)
	libtestParser := parser.NewLibtestParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, jsonStorage)
	executor := pass.NewExecutor(cfg, runner, filter, formatter)
	failureViewer := ui.NewFailureViewer(cfg, jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, supervisor, builder, executor, libtestParser, jsonStorage, formatter),
		List:     NewListCommand(cfg, builder, filter, formatter),
		Daemons:  NewDaemonsCommand(cfg, supervisor, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, failureViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	reload := func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run [-- harness args...]",
		Short: "Run the integration-test suites against all backends",
		Long: "Stand up the external daemons, build the test executables and run each " +
			"suite sequentially against the bitcoind, electrs and esplora backends, " +
			"aborting on the first failure. Arguments after -- are forwarded verbatim " +
			"to every suite invocation.",
		RunE:    c.Run.Execute,
		PreRunE: reload,
	}
	runCmd.Flags().IntVarP(&flags.TestThreads, "test-threads", "j", 0, "Parallelism hint per suite (default: twice the CPU count)")
	runCmd.Flags().StringVar(&flags.Only, "only", "", "Run a single backend pass: bitcoind, electrs or esplora")
	runCmd.Flags().BoolVar(&flags.LegacyEnumeration, "legacy-enumeration", false, "Scrape Executable lines instead of the JSON build manifest")
	runCmd.Flags().BoolVar(&flags.SkipBuild, "skip-build", false, "Skip the streamed build step (enumeration still builds)")
	runCmd.Flags().StringVar(&flags.EnvFile, "env-file", "", "Dotenv file to load before resolving configuration")
	runCmd.Flags().StringVarP(&flags.ConfigFile, "config", "c", "", "TOML config file (default: fto.toml in the project path)")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List built suite executables",
		Long:    "Build and enumerate the test executables, then print the suite to executable mapping without running anything",
		RunE:    c.List.Execute,
		PreRunE: reload,
	}
	listCmd.Flags().BoolVar(&flags.LegacyEnumeration, "legacy-enumeration", false, "Scrape Executable lines instead of the JSON build manifest")
	listCmd.Flags().StringVarP(&flags.ConfigFile, "config", "c", "", "TOML config file (default: fto.toml in the project path)")
	rootCmd.AddCommand(listCmd)

	// Daemons command
	daemonsCmd := &cobra.Command{
		Use:     "daemons",
		Short:   "Start the external daemons and keep them running",
		Long:    "Start the external daemons, wait for readiness, print the resolved environment and block until interrupted",
		RunE:    c.Daemons.Execute,
		PreRunE: reload,
	}
	daemonsCmd.Flags().StringVar(&flags.EnvFile, "env-file", "", "Dotenv file to load before resolving configuration")
	daemonsCmd.Flags().StringVarP(&flags.ConfigFile, "config", "c", "", "TOML config file (default: fto.toml in the project path)")
	rootCmd.AddCommand(daemonsCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View suite failures interactively",
		Long:    "Display test failures from the last run in an interactive viewer",
		RunE:    c.Failures.Execute,
		PreRunE: reload,
	}
	rootCmd.AddCommand(failuresCmd)
}
