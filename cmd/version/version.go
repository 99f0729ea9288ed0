// Package version provides the version command.
package version

import (
	"context"
	"fmt"

	"marketedgeglobal/marketedge/pkg/config"

	"github.com/urfave/cli/v3"
)

// Version is set at build time with -ldflags "-X marketedgeglobal/marketedge/cmd/version.Version=...".
var Version = "unknown"

// GetCommand returns the CLI command that prints the program version.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Program version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(nil)
		},
	}
}

func run(deps *config.Dependencies) error {
	if _, err := fmt.Fprintln(config.GetStdoutFunc(deps)(), Version); err != nil {
		return fmt.Errorf("writing version: %w", err)
	}

	return nil
}
