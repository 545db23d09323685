package pass

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fto/internal/config"
	"fto/internal/discovery"
	"fto/internal/execution"
	"fto/internal/storage"
	"fto/internal/ui"
)

// fakeSuites writes one stub executable per default suite and returns the
// enumerated path list plus a config pointing at them.
func fakeSuites(t *testing.T, script string) (*config.Config, []string) {
	t.Helper()
	dir := t.TempDir()

	names := []string{
		"fedimint_tests-9f3c21ab",
		"fedimint_wallet_tests-0a1b2c3d",
		"fedimint_mint_tests-44ddee00",
		"fedimint_ln_tests-77aa88bb",
		"ln_gateway-5e6f7a8b",
	}
	var paths []string
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}

	cfg := config.New()
	cfg.ProjectPath = dir
	cfg.PortElectrs = "50001"
	cfg.PortEsplora = "50002"
	return cfg, paths
}

func newExecutor(cfg *config.Config) *Executor {
	formatter := ui.NewFormatter(cfg, storage.NewJSONStorage(cfg))
	return NewExecutor(cfg, execution.NewRunner(cfg), discovery.NewFilter(), formatter)
}

func TestExecutor_Execute(t *testing.T) {
	t.Run("all passes run the right suites", func(t *testing.T) {
		cfg, paths := fakeSuites(t, "exit 0")
		results, _, err := newExecutor(cfg).Execute(context.Background(), paths)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// bitcoind runs all suites, the two indexer passes only wallet suites
		wallet := len(cfg.WalletSuites())
		want := len(cfg.Suites) + 2*wallet
		if len(results) != want {
			t.Fatalf("expected %d suite runs, got %d", want, len(results))
		}

		perBackend := make(map[string]int)
		for _, r := range results {
			perBackend[r.Backend]++
			if !r.Success {
				t.Errorf("suite %s failed against %s: %v", r.Suite, r.Backend, r.Error)
			}
		}
		if perBackend["bitcoind"] != len(cfg.Suites) {
			t.Errorf("bitcoind ran %d suites, want %d", perBackend["bitcoind"], len(cfg.Suites))
		}
		if perBackend["electrs"] != wallet || perBackend["esplora"] != wallet {
			t.Errorf("indexer passes ran %d/%d suites, want %d each", perBackend["electrs"], perBackend["esplora"], wallet)
		}

		// Backend order: all bitcoind results precede electrs, which precede esplora
		order := map[string]int{"bitcoind": 0, "electrs": 1, "esplora": 2}
		for i := 1; i < len(results); i++ {
			if order[results[i-1].Backend] > order[results[i].Backend] {
				t.Fatalf("backend order violated at result %d: %s after %s", i, results[i].Backend, results[i-1].Backend)
			}
		}
	})

	t.Run("selector gates passes", func(t *testing.T) {
		cfg, paths := fakeSuites(t, "exit 0")
		cfg.TestOnly = "electrs"

		results, _, err := newExecutor(cfg).Execute(context.Background(), paths)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != len(cfg.WalletSuites()) {
			t.Fatalf("expected only the electrs wallet suites, got %d results", len(results))
		}
		for _, r := range results {
			if r.Backend != "electrs" {
				t.Errorf("gated run touched backend %s", r.Backend)
			}
		}
	})

	t.Run("first failure aborts the run", func(t *testing.T) {
		cfg, paths := fakeSuites(t, "exit 1")

		results, _, err := newExecutor(cfg).Execute(context.Background(), paths)
		if err == nil {
			t.Fatal("expected error from failing suite")
		}
		if len(results) != 1 {
			t.Errorf("fail-fast should stop after the first suite, got %d results", len(results))
		}
	})

	t.Run("ambiguous selection aborts before running", func(t *testing.T) {
		cfg, paths := fakeSuites(t, "exit 0")
		// Duplicate executable for the first suite
		paths = append(paths, paths[0]+"-copy")

		_, _, err := newExecutor(cfg).Execute(context.Background(), paths)
		if !errors.Is(err, discovery.ErrAmbiguous) {
			t.Errorf("expected ErrAmbiguous, got %v", err)
		}
	})

	t.Run("missing executable aborts before running", func(t *testing.T) {
		cfg, paths := fakeSuites(t, "exit 0")

		_, _, err := newExecutor(cfg).Execute(context.Background(), paths[1:])
		if !errors.Is(err, discovery.ErrNoMatch) {
			t.Errorf("expected ErrNoMatch, got %v", err)
		}
	})
}
