package discovery

import (
	"bufio"
	"io"
	"strings"
)

// executableMarker tags the diagnostic lines that name a built test binary,
// e.g. `  Executable unittests src/lib.rs (target/debug/deps/foo-1a2b3c)`.
const executableMarker = "Executable"

// ParseExecutableLines scrapes the build tool's human-readable diagnostic
// stream for built executable paths: the parenthesized segment of every line
// containing the Executable marker, in stream order. This is the legacy
// enumeration path for build tools without a JSON message stream; lines
// without a parenthesized segment are ignored.
func ParseExecutableLines(r io.Reader) ([]string, error) {
	var paths []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, executableMarker) {
			continue
		}

		start := strings.LastIndex(line, "(")
		end := strings.LastIndex(line, ")")
		if start < 0 || end <= start+1 {
			continue
		}
		paths = append(paths, line[start+1:end])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return paths, nil
}
