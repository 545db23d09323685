package pass

import (
	"testing"

	"fto/internal/config"
)

func TestPass_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		expected map[string]bool
	}{
		{
			name:     "unset selector enables all passes",
			selector: "",
			expected: map[string]bool{"bitcoind": true, "electrs": true, "esplora": true},
		},
		{
			name:     "electrs selector gates the others",
			selector: "electrs",
			expected: map[string]bool{"bitcoind": false, "electrs": true, "esplora": false},
		},
		{
			name:     "bitcoind selector",
			selector: "bitcoind",
			expected: map[string]bool{"bitcoind": true, "electrs": false, "esplora": false},
		},
		{
			name:     "unknown selector disables everything",
			selector: "signet",
			expected: map[string]bool{"bitcoind": false, "electrs": false, "esplora": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range Passes() {
				if got := p.Enabled(tt.selector); got != tt.expected[p.Backend] {
					t.Errorf("pass %s with selector %q: enabled = %v, want %v", p.Backend, tt.selector, got, tt.expected[p.Backend])
				}
			}
		})
	}
}

func TestPass_Order(t *testing.T) {
	passes := Passes()
	want := []string{"bitcoind", "electrs", "esplora"}
	if len(passes) != len(want) {
		t.Fatalf("expected %d passes, got %d", len(want), len(passes))
	}
	for i, backend := range want {
		if passes[i].Backend != backend {
			t.Errorf("pass %d = %s, want %s", i, passes[i].Backend, backend)
		}
	}
	if passes[0].WalletOnly {
		t.Error("bitcoind pass must run the full suite set")
	}
	if !passes[1].WalletOnly || !passes[2].WalletOnly {
		t.Error("indexer passes must run wallet suites only")
	}
}

func TestPass_Env(t *testing.T) {
	cfg := config.New()
	cfg.PortElectrs = "50001"
	cfg.PortEsplora = "50002"

	t.Run("bitcoind leaves backend untouched", func(t *testing.T) {
		env, err := Passes()[0].Env(cfg)
		if err != nil {
			t.Fatal(err)
		}
		if len(env) != 0 {
			t.Errorf("bitcoind pass must not override the backend: %v", env)
		}
	})

	t.Run("electrs overrides kind and URL", func(t *testing.T) {
		env, err := Passes()[1].Env(cfg)
		if err != nil {
			t.Fatal(err)
		}
		if env[config.EnvRPCKind] != "electrs" {
			t.Errorf("kind = %q", env[config.EnvRPCKind])
		}
		if env[config.EnvRPCURL] != "tcp://127.0.0.1:50001" {
			t.Errorf("url = %q", env[config.EnvRPCURL])
		}
	})

	t.Run("esplora overrides kind and URL", func(t *testing.T) {
		env, err := Passes()[2].Env(cfg)
		if err != nil {
			t.Fatal(err)
		}
		if env[config.EnvRPCKind] != "esplora" {
			t.Errorf("kind = %q", env[config.EnvRPCKind])
		}
		if env[config.EnvRPCURL] != "http://127.0.0.1:50002" {
			t.Errorf("url = %q", env[config.EnvRPCURL])
		}
	})

	t.Run("layers never leak across passes", func(t *testing.T) {
		// Each pass computes its layer from the base config, so the electrs
		// override must not appear in a later esplora layer and vice versa.
		electrs, _ := Passes()[1].Env(cfg)
		esplora, _ := Passes()[2].Env(cfg)
		if esplora[config.EnvRPCURL] == electrs[config.EnvRPCURL] {
			t.Error("indexer passes share a backend URL")
		}
		bitcoind, _ := Passes()[0].Env(cfg)
		if len(bitcoind) != 0 {
			t.Error("bitcoind layer polluted by indexer overrides")
		}
	})

	t.Run("missing port is an error", func(t *testing.T) {
		bare := config.New()
		if _, err := Passes()[1].Env(bare); err == nil {
			t.Error("electrs pass without a resolved port should error")
		}
		if _, err := Passes()[2].Env(bare); err == nil {
			t.Error("esplora pass without a resolved port should error")
		}
	})
}

func TestPass_Suites(t *testing.T) {
	cfg := config.New()

	full := Passes()[0].Suites(cfg)
	if len(full) != len(cfg.Suites) {
		t.Errorf("bitcoind pass should run all %d suites, got %d", len(cfg.Suites), len(full))
	}

	wallet := Passes()[1].Suites(cfg)
	for _, s := range wallet {
		if !s.Wallet {
			t.Errorf("indexer pass includes non-wallet suite %s", s.Name)
		}
	}
	if len(wallet) == 0 || len(wallet) >= len(full) {
		t.Errorf("wallet subset size %d not a strict non-empty subset of %d", len(wallet), len(full))
	}
}
