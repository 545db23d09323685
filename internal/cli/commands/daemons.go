package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fto/internal/config"
	"fto/internal/daemon"
	"fto/internal/ui"
)

// DaemonsCommand handles the daemons command
type DaemonsCommand struct {
	config     *config.Config
	supervisor *daemon.Supervisor
	formatter  *ui.Formatter
}

// NewDaemonsCommand creates a new DaemonsCommand
func NewDaemonsCommand(cfg *config.Config, supervisor *daemon.Supervisor, formatter *ui.Formatter) *DaemonsCommand {
	return &DaemonsCommand{
		config:     cfg,
		supervisor: supervisor,
		formatter:  formatter,
	}
}

// Execute starts the daemons and blocks until interrupted, for local
// debugging against a live backend set.
func (dc *DaemonsCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dc.supervisor.Start(ctx); err != nil {
		return err
	}
	defer dc.supervisor.Stop()

	status, err := dc.supervisor.WaitReady(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Daemons ready: %s\n", status)

	env, err := dc.supervisor.ResolveEnv(ctx)
	if err != nil {
		return err
	}
	dc.formatter.PrintEnv(env)

	color.Green("External daemons running, Ctrl+C to stop")
	<-ctx.Done()
	return nil
}
