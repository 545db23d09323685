package cli

import "fto/internal/config"

// Flags holds command-line flags
type Flags struct {
	TestThreads       int
	Only              string
	LegacyEnumeration bool
	SkipBuild         bool
	EnvFile           string
	ConfigFile        string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		TestThreads:       f.TestThreads,
		Only:              f.Only,
		LegacyEnumeration: f.LegacyEnumeration,
		SkipBuild:         f.SkipBuild,
		EnvFile:           f.EnvFile,
		ConfigFile:        f.ConfigFile,
	}
}
