// Package greet provides the greet command, which prints the welcome banner.
// It is also the action of the root command.
package greet

import (
	"context"
	"fmt"

	"marketedgeglobal/marketedge/cmd/shared"
	"marketedgeglobal/marketedge/pkg/config"
	"marketedgeglobal/marketedge/pkg/greeting"
	"marketedgeglobal/marketedge/pkg/log"

	"github.com/urfave/cli/v3"
)

// GetCommand returns the CLI command that prints the banner.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:   "greet",
		Usage:  "Print the welcome banner (default)",
		Action: Action,
	}
}

// Action prints the banner to stdout. Positional arguments are ignored.
func Action(ctx context.Context, cmd *cli.Command) error {
	cfg := shared.GetSharedConfig(cmd)
	log.SetNoColor(cfg.NoColor)

	return run(cfg, nil)
}

func run(cfg *config.Shared, deps *config.Dependencies) error {
	if cfg.Verbose {
		log.InfoMsg("Printing %d banner lines\n", len(greeting.Lines()))
	}

	if err := greeting.Print(deps); err != nil {
		return fmt.Errorf("greeting.Print(): %w", err)
	}

	return nil
}
