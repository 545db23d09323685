package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fto/internal/build"
	"fto/internal/config"
	"fto/internal/discovery"
	"fto/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	builder   *build.Builder
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	builder *build.Builder,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		builder:   builder,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var paths []string
	if lc.config.Flags.LegacyEnumeration {
		scraped, err := lc.builder.ExecutablePaths(ctx)
		if err != nil {
			return err
		}
		paths = scraped
	} else {
		manifest, err := lc.builder.Manifest(ctx)
		if err != nil {
			return err
		}
		paths = discovery.Paths(manifest)
	}

	if len(paths) == 0 {
		color.Yellow("No test executables found")
		return nil
	}

	// Map each configured suite to its executable; selection problems show
	// up per suite rather than failing the listing.
	pairs := make(map[string]string)
	for _, suite := range lc.config.Suites {
		path, err := lc.filter.SelectOne(paths, suite.Pattern)
		if err != nil {
			continue
		}
		pairs[suite.Name] = path
	}

	lc.formatter.PrintArtifacts(lc.config.Suites, pairs)
	return nil
}
