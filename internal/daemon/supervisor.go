package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"

	"fto/internal/config"
)

// ErrDaemonFailed is returned when the daemon supervisor reports the ERROR
// readiness status. There is no retry: the run must terminate immediately.
var ErrDaemonFailed = errors.New("external daemons reported ERROR status")

// statusError is the literal readiness status signalling startup failure
const statusError = "ERROR"

// Supervisor manages the external daemon processes (bitcoind, electrs,
// esplora and the federation daemons) through the daemon-management tool.
// One long-lived background process is started; Stop is safe to call on
// every exit path and kills the whole process group.
type Supervisor struct {
	config *config.Config

	mu      sync.Mutex
	cmd     *exec.Cmd
	stopped bool
}

// NewSupervisor creates a new Supervisor
func NewSupervisor(cfg *config.Config) *Supervisor {
	return &Supervisor{config: cfg}
}

// Start launches the external daemons in the background. Output is discarded
// when the configured log level is "none" (case-insensitive), otherwise it
// streams to the orchestrator's stdout/stderr. The process runs in its own
// process group so Stop can take down any children the tool spawned.
func (s *Supervisor) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd != nil {
		return fmt.Errorf("daemons already started")
	}

	cmd := exec.CommandContext(ctx, s.config.DaemonCommand, "external-daemons")
	cmd.Dir = s.config.ProjectPath
	cmd.Env = append(os.Environ(), s.config.BaseEnv()...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if !s.config.SuppressDaemonOutput() {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start external daemons: %w", err)
	}
	s.cmd = cmd

	// Reap the process in the background so a crashed supervisor does not
	// leave a zombie while the orchestrator blocks elsewhere.
	go cmd.Wait()

	return nil
}

// WaitReady blocks until the daemons report a terminal readiness status and
// returns it. The literal status ERROR maps to ErrDaemonFailed; callers must
// abort before any build step runs.
func (s *Supervisor) WaitReady(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, s.config.DaemonCommand, "wait")
	cmd.Dir = s.config.ProjectPath
	cmd.Env = append(os.Environ(), s.config.BaseEnv()...)
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("daemon readiness wait: %w", err)
	}

	status := strings.TrimSpace(string(out))
	if status == statusError {
		return status, ErrDaemonFailed
	}
	return status, nil
}

// Stop kills the supervisor's process group. It is idempotent and never
// returns an error: teardown on a failure path must not mask the original
// failure.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd == nil || s.cmd.Process == nil || s.stopped {
		return
	}
	s.stopped = true

	pid := s.cmd.Process.Pid
	if err := syscall.Kill(-pid, syscall.SIGTERM); err != nil {
		s.cmd.Process.Kill()
	}
}
