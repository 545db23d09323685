package domain

import "time"

// SuiteResult represents the outcome of one suite invocation against one backend
type SuiteResult struct {
	Suite      string        // Logical suite name
	Backend    string        // Backend the suite ran against
	Executable string        // Path of the executable that was run
	Success    bool          // Whether the suite passed
	Output     string        // Combined harness output
	Error      error         // Error if the invocation itself failed
	Duration   time.Duration // Time taken by the invocation
}

// RunMeta contains metadata about a full orchestrator run
type RunMeta struct {
	Backends        []string `json:"backends"`
	TotalSuites     int      `json:"total_suites"`
	PassedSuites    int      `json:"passed_suites"`
	FailedSuites    int      `json:"failed_suites"`
	FailedTestCases int      `json:"failed_test_cases"`
	Duration        string   `json:"duration"`
	DurationSeconds float64  `json:"duration_seconds"`
	TestThreads     int      `json:"test_threads"`
	Timestamp       string   `json:"timestamp"`
}

// RunOutput is the complete output structure persisted after a run
type RunOutput struct {
	Meta    RunMeta   `json:"meta"`
	Details []Failure `json:"details"`
}
