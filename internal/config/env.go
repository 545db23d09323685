package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads a dotenv file into the process environment. A missing
// file is only an error when the path was given explicitly.
func LoadEnvFile(path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return fmt.Errorf("env file not found: %s", path)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// FromEnv fills config fields from the process environment. Flags applied
// later take precedence over what is read here.
func (c *Config) FromEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvBacktrace); v != "" {
		c.Backtrace = v
	}
	if v := os.Getenv(EnvBuildProfile); v != "" {
		c.BuildProfile = v
	}
	if v := os.Getenv(EnvTestOnly); v != "" {
		c.TestOnly = v
	}
	if v := os.Getenv(EnvRPCKind); v != "" {
		c.RPCKind = v
	}
	if v := os.Getenv(EnvRPCURL); v != "" {
		c.RPCURL = v
	}
	if v := os.Getenv(EnvPortElectrs); v != "" {
		c.PortElectrs = v
	}
	if v := os.Getenv(EnvPortEsplora); v != "" {
		c.PortEsplora = v
	}
	if v := os.Getenv(EnvUseRealDaemons); v != "" {
		c.UseRealDaemons = true
	}
}

// Load builds the effective config: defaults, then the optional TOML file,
// then the optional dotenv file plus process env, then flag overrides.
func Load(flags Flags) (*Config, error) {
	cfg := New()

	configPath := flags.ConfigFile
	explicitConfig := configPath != ""
	if configPath == "" {
		configPath = filepath.Join(cfg.ProjectPath, DefaultConfigFile)
	}
	if err := cfg.FromFile(configPath, explicitConfig); err != nil {
		return nil, err
	}

	envPath := flags.EnvFile
	explicitEnv := envPath != ""
	if envPath == "" {
		envPath = filepath.Join(cfg.ProjectPath, ".env")
	}
	if err := LoadEnvFile(envPath, explicitEnv); err != nil {
		return nil, err
	}
	cfg.FromEnv()

	cfg.ApplyFlags(flags)
	return cfg, nil
}
