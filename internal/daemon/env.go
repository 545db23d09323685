package daemon

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"fto/internal/config"
)

// ResolveEnv asks the daemon-management tool for the environment bindings of
// the running daemons (ports, endpoints, data dirs) and merges them into the
// current process environment. The typed map is returned so phases can read
// individual bindings without touching the environment again.
func (s *Supervisor) ResolveEnv(ctx context.Context) (map[string]string, error) {
	cmd := exec.CommandContext(ctx, s.config.DaemonCommand, "env")
	cmd.Dir = s.config.ProjectPath
	cmd.Env = append(os.Environ(), s.config.BaseEnv()...)
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("resolve daemon env: %w", err)
	}

	env, err := ParseEnvOutput(strings.NewReader(string(out)))
	if err != nil {
		return nil, err
	}

	for key, value := range env {
		if err := os.Setenv(key, value); err != nil {
			return nil, fmt.Errorf("set %s: %w", key, err)
		}
	}

	// Keep the config's backend view in sync with what the daemons resolved
	if v, ok := env[config.EnvRPCKind]; ok {
		s.config.RPCKind = v
	}
	if v, ok := env[config.EnvRPCURL]; ok {
		s.config.RPCURL = v
	}
	if v, ok := env[config.EnvPortElectrs]; ok {
		s.config.PortElectrs = v
	}
	if v, ok := env[config.EnvPortEsplora]; ok {
		s.config.PortEsplora = v
	}

	return env, nil
}

// ParseEnvOutput parses KEY=VALUE lines as emitted by the daemon tool's env
// subcommand. "export " prefixes and single/double quoting are tolerated;
// blank lines and comments are skipped.
func ParseEnvOutput(r io.Reader) (map[string]string, error) {
	env := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, found := strings.Cut(line, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("malformed env line: %q", line)
		}
		env[strings.TrimSpace(key)] = unquote(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read env output: %w", err)
	}
	return env, nil
}

func unquote(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
