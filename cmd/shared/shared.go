// Package shared provides common CLI flag definitions and helpers used
// across the marketedge command-line interface.
package shared

import (
	"marketedgeglobal/marketedge/pkg/config"

	"github.com/urfave/cli/v3"
)

const categoryCommon = "common"

// VerboseFlag is the name of the flag to enable diagnostic logging on stderr.
const VerboseFlag = "verbose"

// NoColorFlag is the name of the flag to disable colored log output.
const NoColorFlag = "no-color"

// GetCommonFlags returns the CLI flags available to every command.
func GetCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Log what the program is doing to stderr",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     NoColorFlag,
			Usage:    "Disable colored log output",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
	}
}

// GetSharedConfig reads the common flags into a config.Shared.
func GetSharedConfig(cmd *cli.Command) *config.Shared {
	return &config.Shared{
		Verbose: cmd.Bool(VerboseFlag),
		NoColor: cmd.Bool(NoColorFlag),
	}
}
