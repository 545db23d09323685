package domain

// Suite is a logical integration-test suite built as a standalone executable
type Suite struct {
	Name    string // Human-readable suite name
	Pattern string // Substring matched against built executable paths
	Wallet  bool   // Whether the suite exercises the Bitcoin wallet backend
}

// Artifact is one built test executable reported by the build manifest
type Artifact struct {
	Name       string // Target name reported by the build tool
	Executable string // Absolute path to the built executable
}
