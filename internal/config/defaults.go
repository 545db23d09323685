package config

import "fto/internal/domain"

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultDaemonCommand is the daemon-management tool
	DefaultDaemonCommand = "devimint"
	// DefaultBuildCommand is the build tool
	DefaultBuildCommand = "cargo"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "fto-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultLogLevel matches the daemons' default verbosity
	DefaultLogLevel = "info"
	// DefaultConfigFile is looked up in the project path when --config is not given
	DefaultConfigFile = "fto.toml"

	// BackendBitcoind is the full-node backend pass
	BackendBitcoind = "bitcoind"
	// BackendElectrs is the TCP block-explorer indexer pass
	BackendElectrs = "electrs"
	// BackendEsplora is the HTTP block-explorer indexer pass
	BackendEsplora = "esplora"
)

// Environment variable names consumed by the orchestrator
const (
	EnvLogLevel       = "RUST_LOG"
	EnvBacktrace      = "RUST_BACKTRACE"
	EnvBuildProfile   = "CARGO_PROFILE"
	EnvTestOnly       = "FM_TEST_ONLY"
	EnvRPCKind        = "FM_BITCOIN_RPC_KIND"
	EnvRPCURL         = "FM_BITCOIN_RPC_URL"
	EnvPortElectrs    = "FM_PORT_ELECTRS"
	EnvPortEsplora    = "FM_PORT_ESPLORA"
	EnvUseRealDaemons = "FM_TEST_USE_REAL_DAEMONS"
)

// DefaultSuites are the logical suites run against the bitcoind backend.
// Patterns follow the build tool's executable naming for test targets.
var DefaultSuites = []domain.Suite{
	{Name: "fedimint-tests", Pattern: "/fedimint_tests-", Wallet: true},
	{Name: "wallet-tests", Pattern: "/fedimint_wallet_tests-", Wallet: true},
	{Name: "mint-tests", Pattern: "/fedimint_mint_tests-"},
	{Name: "ln-tests", Pattern: "/fedimint_ln_tests-"},
	{Name: "ln-gateway-tests", Pattern: "/ln_gateway-"},
}
