package config

import (
	"path/filepath"
	"runtime"
	"strings"

	"fto/internal/domain"
)

// Config holds all configuration for the orchestrator. It replaces the
// implicit environment-variable state of a shell-driven run: every phase
// receives this struct instead of reading the process environment.
type Config struct {
	// Project settings
	ProjectPath string

	// External tools
	DaemonCommand string
	BuildCommand  string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Daemon / backend settings
	LogLevel       string // RUST_LOG; "none" suppresses daemon output
	Backtrace      string // RUST_BACKTRACE
	BuildProfile   string // CARGO_PROFILE, empty means the tool default
	TestOnly       string // FM_TEST_ONLY pass selector, empty means all passes
	RPCKind        string // FM_BITCOIN_RPC_KIND as resolved by the daemons
	RPCURL         string // FM_BITCOIN_RPC_URL as resolved by the daemons
	PortElectrs    string // FM_PORT_ELECTRS
	PortEsplora    string // FM_PORT_ESPLORA
	UseRealDaemons bool   // FM_TEST_USE_REAL_DAEMONS

	// Execution settings
	TestThreads int      // Parallelism hint passed to each suite binary
	ExtraArgs   []string // Passthrough args forwarded to every suite invocation

	// Suites to run; wallet suites are re-run on the electrs/esplora passes
	Suites []domain.Suite

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	TestThreads       int
	Only              string
	LegacyEnumeration bool
	SkipBuild         bool
	EnvFile           string
	ConfigFile        string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		DaemonCommand:  DefaultDaemonCommand,
		BuildCommand:   DefaultBuildCommand,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		LogLevel:       DefaultLogLevel,
		TestThreads:    DefaultTestThreads(),
	}
	cfg.Suites = make([]domain.Suite, len(DefaultSuites))
	copy(cfg.Suites, DefaultSuites)
	return cfg
}

// DefaultTestThreads is twice the detected CPU count, the parallelism hint
// handed to the suite harnesses.
func DefaultTestThreads() int {
	return 2 * runtime.NumCPU()
}

// ApplyFlags merges parsed command flags into the config
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.TestThreads > 0 {
		c.TestThreads = flags.TestThreads
	}
	if flags.Only != "" {
		c.TestOnly = flags.Only
	}
}

// SuppressDaemonOutput reports whether daemon-setup output must be discarded.
// Only the literal log level "none" (case-insensitive) suppresses it.
func (c *Config) SuppressDaemonOutput() bool {
	return strings.EqualFold(c.LogLevel, "none")
}

// WalletSuites returns the subset of suites re-run on the indexer passes
func (c *Config) WalletSuites() []domain.Suite {
	var suites []domain.Suite
	for _, s := range c.Suites {
		if s.Wallet {
			suites = append(suites, s)
		}
	}
	return suites
}

// GetOutputPath returns the full path to the output JSON file (under the
// project so run and failures use the same file). Resolves to an absolute
// path so both always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// BaseEnv returns the environment layer shared by the daemons, the build and
// every suite invocation, as KEY=VALUE pairs.
func (c *Config) BaseEnv() []string {
	env := []string{
		EnvLogLevel + "=" + c.LogLevel,
	}
	if c.Backtrace != "" {
		env = append(env, EnvBacktrace+"="+c.Backtrace)
	}
	if c.UseRealDaemons {
		env = append(env, EnvUseRealDaemons+"=1")
	}
	return env
}
