package domain

// Failure represents a failed test case within a suite invocation
type Failure struct {
	TestName   string `json:"test_name"`
	Suite      string `json:"suite"`
	Backend    string `json:"backend"`
	Executable string `json:"executable"`
	Message    string `json:"message"`
	Resolved   bool   `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}
