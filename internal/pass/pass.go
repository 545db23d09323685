package pass

import (
	"fmt"

	"fto/internal/config"
	"fto/internal/domain"
)

// Pass is one backend personality the suites run against
type Pass struct {
	Backend    string
	WalletOnly bool // Restrict the pass to wallet-related suites
}

// Passes returns the backend passes in their fixed execution order:
// bitcoind first with the daemon-resolved backend untouched, then the two
// indexer variants against wallet suites only.
func Passes() []Pass {
	return []Pass{
		{Backend: config.BackendBitcoind},
		{Backend: config.BackendElectrs, WalletOnly: true},
		{Backend: config.BackendEsplora, WalletOnly: true},
	}
}

// Enabled reports whether this pass runs under the given selector. An empty
// selector enables every pass.
func (p Pass) Enabled(selector string) bool {
	return selector == "" || selector == p.Backend
}

// Suites returns the suites this pass runs
func (p Pass) Suites(cfg *config.Config) []domain.Suite {
	if p.WalletOnly {
		return cfg.WalletSuites()
	}
	return cfg.Suites
}

// Env returns the backend environment layer for this pass, computed from the
// base config rather than the previous pass so overrides never leak across
// passes. The bitcoind pass uses the daemon-resolved backend as-is.
func (p Pass) Env(cfg *config.Config) (map[string]string, error) {
	switch p.Backend {
	case config.BackendBitcoind:
		return nil, nil
	case config.BackendElectrs:
		if cfg.PortElectrs == "" {
			return nil, fmt.Errorf("electrs pass: %s not resolved", config.EnvPortElectrs)
		}
		return map[string]string{
			config.EnvRPCKind: config.BackendElectrs,
			config.EnvRPCURL:  "tcp://127.0.0.1:" + cfg.PortElectrs,
		}, nil
	case config.BackendEsplora:
		if cfg.PortEsplora == "" {
			return nil, fmt.Errorf("esplora pass: %s not resolved", config.EnvPortEsplora)
		}
		return map[string]string{
			config.EnvRPCKind: config.BackendEsplora,
			config.EnvRPCURL:  "http://127.0.0.1:" + cfg.PortEsplora,
		}, nil
	default:
		return nil, fmt.Errorf("unknown backend pass: %s", p.Backend)
	}
}
