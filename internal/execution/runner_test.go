package execution

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"fto/internal/config"
	"fto/internal/domain"
)

func writeFakeSuite(t *testing.T, script string) (string, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fedimint_tests-9f3c21ab")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	cfg := config.New()
	cfg.ProjectPath = dir
	cfg.TestThreads = 8
	return path, cfg
}

func TestRunner_Run(t *testing.T) {
	suite := domain.Suite{Name: "fedimint-tests", Pattern: "/fedimint_tests-"}

	t.Run("parallelism and passthrough args forwarded", func(t *testing.T) {
		path, cfg := writeFakeSuite(t, `echo "$@"`)
		cfg.ExtraArgs = []string{"--nocapture", "wallet"}

		result := NewRunner(cfg).Run(context.Background(), suite, path, "bitcoind", nil)
		if !result.Success {
			t.Fatalf("expected success, got %v", result.Error)
		}
		want := "--test-threads " + strconv.Itoa(cfg.TestThreads) + " --nocapture wallet"
		if !strings.Contains(result.Output, want) {
			t.Errorf("args not forwarded, output: %q", result.Output)
		}
	})

	t.Run("backend env layered onto invocation", func(t *testing.T) {
		path, cfg := writeFakeSuite(t, `echo "kind=$FM_BITCOIN_RPC_KIND url=$FM_BITCOIN_RPC_URL"`)
		env := map[string]string{
			"FM_BITCOIN_RPC_KIND": "electrs",
			"FM_BITCOIN_RPC_URL":  "tcp://127.0.0.1:50001",
		}

		result := NewRunner(cfg).Run(context.Background(), suite, path, "electrs", env)
		if !strings.Contains(result.Output, "kind=electrs url=tcp://127.0.0.1:50001") {
			t.Errorf("backend env not applied, output: %q", result.Output)
		}
		if result.Backend != "electrs" {
			t.Errorf("expected backend electrs, got %s", result.Backend)
		}
	})

	t.Run("failure captured", func(t *testing.T) {
		path, cfg := writeFakeSuite(t, `echo "test result: FAILED. 3 passed; 1 failed"; exit 101`)

		result := NewRunner(cfg).Run(context.Background(), suite, path, "bitcoind", nil)
		if result.Success {
			t.Fatal("expected failure")
		}
		if result.Error == nil {
			t.Error("expected error on non-zero exit")
		}
		if !strings.Contains(result.Output, "1 failed") {
			t.Errorf("output not captured: %q", result.Output)
		}
	})
}
