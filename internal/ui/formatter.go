package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"fto/internal/config"
	"fto/internal/domain"
	"fto/internal/storage"
)

// Formatter formats and displays orchestrator output
type Formatter struct {
	config  *config.Config
	storage storage.Storage
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, st storage.Storage) *Formatter {
	return &Formatter{
		config:  cfg,
		storage: st,
	}
}

// Banner prints the run header
func (f *Formatter) Banner() {
	color.Cyan("╔════════════════════════════════════════════════════════════╗")
	color.Cyan("║              Federation Integration Test Run               ║")
	color.Cyan("╚════════════════════════════════════════════════════════════╝")
	fmt.Println()
}

// PassStart announces a backend pass
func (f *Formatter) PassStart(backend string, suiteCount int) {
	fmt.Println()
	color.Cyan("Testing against %s (%d suites)", backend, suiteCount)
	fmt.Println(strings.Repeat("-", 60))
}

// PassComplete emits the pass completion marker. The marker text is part of
// the CLI contract; CI greps for it.
func (f *Formatter) PassComplete(backend string) {
	color.Green("Testing against %s - complete", backend)
}

// SuiteStart announces a suite invocation
func (f *Formatter) SuiteStart(suite, backend string) {
	color.White("→ %s [%s]", suite, backend)
}

// SuiteFailed reports a failed suite invocation
func (f *Formatter) SuiteFailed(result domain.SuiteResult) {
	fmt.Println()
	color.Red("✗ %s failed against %s after %.2fs", result.Suite, result.Backend, result.Duration.Seconds())
}

// Success emits the final success marker, also grepped by CI
func (f *Formatter) Success() {
	fmt.Println()
	color.Green("fm success: rust-tests")
}

// PrintEnv prints resolved daemon environment bindings, sorted by key
func (f *Formatter) PrintEnv(env map[string]string) {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s=%s\n", k, env[k])
	}
}

// PrintMetaStats reads and displays meta statistics from the results file
func (f *Formatter) PrintMetaStats() error {
	output, err := f.storage.Load()
	if err != nil {
		return fmt.Errorf("load run results: %w", err)
	}
	meta := output.Meta

	fmt.Println()
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                      Run Statistics                           ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝")
	fmt.Println()

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Backends")
	color.White("%-27s │\n", strings.Join(meta.Backends, ", "))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Suite Runs")
	color.White("%-27d │\n", meta.TotalSuites)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Suite Runs")
	color.Green("%-27d │\n", meta.PassedSuites)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Suite Runs")
	color.Red("%-27d │\n", meta.FailedSuites)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Test Cases")
	color.Red("%-27d │\n", meta.FailedTestCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Test Threads")
	color.White("%-27d │\n", meta.TestThreads)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedSuites == 0 {
		color.Green("✓ All suites passed!")
	} else {
		color.Red("✗ %d suite run(s) failed with %d test case failure(s)", meta.FailedSuites, meta.FailedTestCases)
		fmt.Println()
		f.printFailureTree(output.Details)
	}
	return nil
}

// printFailureTree groups failures as backend → suite → test case
func (f *Formatter) printFailureTree(failures []domain.Failure) {
	byBackend := make(map[string]map[string][]domain.Failure)
	for _, failure := range failures {
		if byBackend[failure.Backend] == nil {
			byBackend[failure.Backend] = make(map[string][]domain.Failure)
		}
		byBackend[failure.Backend][failure.Suite] = append(byBackend[failure.Backend][failure.Suite], failure)
	}

	backends := make([]string, 0, len(byBackend))
	for b := range byBackend {
		backends = append(backends, b)
	}
	sort.Strings(backends)

	for _, backend := range backends {
		color.Cyan("%s", backend)
		suites := make([]string, 0, len(byBackend[backend]))
		for s := range byBackend[backend] {
			suites = append(suites, s)
		}
		sort.Strings(suites)

		for _, suite := range suites {
			color.Yellow("  |_%s", suite)
			for _, failure := range byBackend[backend][suite] {
				color.Red("     |_%s", failure.TestName)
			}
		}
	}
}

// PrintArtifacts prints the suite → executable mapping discovered by a build
func (f *Formatter) PrintArtifacts(suites []domain.Suite, pairs map[string]string) {
	fmt.Println()
	color.Cyan("Discovered test executables:")
	for _, s := range suites {
		path, ok := pairs[s.Name]
		if !ok {
			color.Red("  %-20s (no match)", s.Name)
			continue
		}
		wallet := ""
		if s.Wallet {
			wallet = " [wallet]"
		}
		color.White("  %-20s %s%s", s.Name, path, wallet)
	}
}
