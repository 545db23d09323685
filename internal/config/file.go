package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"fto/internal/domain"
)

// fileConfig is the on-disk TOML shape. All sections are optional; anything
// unset keeps its default.
type fileConfig struct {
	Orchestrator struct {
		ProjectPath   string `toml:"project_path"`
		DaemonCommand string `toml:"daemon_command"`
		BuildCommand  string `toml:"build_command"`
		TestThreads   int    `toml:"test_threads"`
	} `toml:"orchestrator"`
	Output struct {
		Dir  string `toml:"dir"`
		File string `toml:"file"`
	} `toml:"output"`
	Suites []struct {
		Name    string `toml:"name"`
		Pattern string `toml:"pattern"`
		Wallet  bool   `toml:"wallet"`
	} `toml:"suites"`
}

// FromFile merges an optional TOML config file into the config. A missing
// file is only an error when the path was given explicitly.
func (c *Config) FromFile(path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return fmt.Errorf("read config file: %w", err)
		}
		return nil
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Orchestrator.ProjectPath != "" {
		c.ProjectPath = fc.Orchestrator.ProjectPath
	}
	if fc.Orchestrator.DaemonCommand != "" {
		c.DaemonCommand = fc.Orchestrator.DaemonCommand
	}
	if fc.Orchestrator.BuildCommand != "" {
		c.BuildCommand = fc.Orchestrator.BuildCommand
	}
	if fc.Orchestrator.TestThreads > 0 {
		c.TestThreads = fc.Orchestrator.TestThreads
	}
	if fc.Output.Dir != "" {
		c.OutputJSONDir = fc.Output.Dir
	}
	if fc.Output.File != "" {
		c.OutputJSONFile = fc.Output.File
	}
	if len(fc.Suites) > 0 {
		suites := make([]domain.Suite, 0, len(fc.Suites))
		for _, s := range fc.Suites {
			if s.Name == "" || s.Pattern == "" {
				return fmt.Errorf("config file %s: suite entries need both name and pattern", path)
			}
			suites = append(suites, domain.Suite{Name: s.Name, Pattern: s.Pattern, Wallet: s.Wallet})
		}
		c.Suites = suites
	}
	return nil
}
