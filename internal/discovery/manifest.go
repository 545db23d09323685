package discovery

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fto/internal/domain"
)

// manifestMessage is one line of the build tool's JSON diagnostic stream.
// Only the fields needed to discover test executables are decoded.
type manifestMessage struct {
	Reason string `json:"reason"`
	Target struct {
		Name string `json:"name"`
	} `json:"target"`
	Executable string `json:"executable"`
}

// ParseManifest reads the build tool's JSON message stream and returns the
// built test executables as typed records, in stream order. Lines that are
// not JSON objects are skipped (the stream interleaves plain diagnostics),
// but a line that starts like a message and fails to decode is an error.
func ParseManifest(r io.Reader) ([]domain.Artifact, error) {
	var artifacts []domain.Artifact

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "{") {
			continue
		}

		var msg manifestMessage
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			return nil, fmt.Errorf("decode build message: %w", err)
		}
		if msg.Executable == "" {
			continue
		}
		artifacts = append(artifacts, domain.Artifact{
			Name:       msg.Target.Name,
			Executable: msg.Executable,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read build messages: %w", err)
	}
	return artifacts, nil
}

// Paths projects the executable paths out of a manifest, preserving order
func Paths(artifacts []domain.Artifact) []string {
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		paths = append(paths, a.Executable)
	}
	return paths
}
