package parser

import (
	"regexp"
	"strconv"
	"strings"

	"fto/internal/domain"
)

// LibtestParser scrapes the Rust test harness output of a suite invocation
type LibtestParser struct{}

// NewLibtestParser creates a new LibtestParser
func NewLibtestParser() *LibtestParser {
	return &LibtestParser{}
}

// A suite binary may contain several harness runs (unit + integration), so
// every summary line is summed.
var summaryPattern = regexp.MustCompile(`test result: (?:ok|FAILED)\. (\d+) passed; (\d+) failed`)

// failuresHeader opens the indented list of failed test names the harness
// prints after the per-test lines.
const failuresHeader = "failures:"

// ParseTestCounts extracts passed and failed test case counts from harness
// output. If no summary is present, falls back to one pass or fail for the
// whole suite invocation.
func (p *LibtestParser) ParseTestCounts(result domain.SuiteResult) (passed, failed int) {
	for _, match := range summaryPattern.FindAllStringSubmatch(result.Output, -1) {
		pc, _ := strconv.Atoi(match[1])
		fc, _ := strconv.Atoi(match[2])
		passed += pc
		failed += fc
	}
	if passed > 0 || failed > 0 {
		return passed, failed
	}

	if result.Success {
		return 1, 0
	}
	return 0, 1
}

// ParseFailures extracts the failed test cases of a suite invocation. Test
// names come from the indented list under the "failures:" header; the
// per-test output block (`---- <name> stdout ----`) supplies the message
// when present.
func (p *LibtestParser) ParseFailures(result domain.SuiteResult) []domain.Failure {
	if result.Success {
		return nil
	}

	names := p.failedTestNames(result.Output)
	if len(names) == 0 {
		// The harness died before printing a summary (panic, abort); keep a
		// single suite-level record so the failure is not lost.
		return []domain.Failure{{
			TestName:   result.Suite,
			Suite:      result.Suite,
			Backend:    result.Backend,
			Executable: result.Executable,
			Message:    tail(result.Output, 40),
		}}
	}

	failures := make([]domain.Failure, 0, len(names))
	for _, name := range names {
		failures = append(failures, domain.Failure{
			TestName:   name,
			Suite:      result.Suite,
			Backend:    result.Backend,
			Executable: result.Executable,
			Message:    p.failureOutput(result.Output, name),
		})
	}
	return failures
}

// failedTestNames collects the indented entries of the final "failures:"
// block. The harness prints the header twice (once before the per-test
// output blocks, once before the name list); only indented plain lines
// following a header are names, so the block-form header is skipped
// naturally.
func (p *LibtestParser) failedTestNames(output string) []string {
	var names []string
	inBlock := false
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == failuresHeader {
			inBlock = true
			names = names[:0]
			continue
		}
		if !inBlock {
			continue
		}
		if trimmed == "" || strings.HasPrefix(trimmed, "----") {
			continue
		}
		if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			inBlock = false
			continue
		}
		names = append(names, trimmed)
	}
	return names
}

// failureOutput returns the `---- <name> stdout ----` block for one test
func (p *LibtestParser) failureOutput(output, name string) string {
	marker := "---- " + name + " stdout ----"
	start := strings.Index(output, marker)
	if start < 0 {
		return ""
	}
	block := output[start+len(marker):]
	if end := strings.Index(block, "\n----"); end >= 0 {
		block = block[:end]
	}
	if end := strings.Index(block, "\nfailures:"); end >= 0 {
		block = block[:end]
	}
	return strings.TrimSpace(block)
}

// tail returns the last n lines of s
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
