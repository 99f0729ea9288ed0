package main

import (
	"context"
	"os"

	"marketedgeglobal/marketedge/cmd/greet"
	"marketedgeglobal/marketedge/cmd/shared"
	"marketedgeglobal/marketedge/cmd/version"
	"marketedgeglobal/marketedge/pkg/log"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.ErrorMsg("%s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:   "marketedge",
		Usage:  "MarketEdge Global",
		Flags:  shared.GetCommonFlags(),
		Action: greet.Action,
		Commands: []*cli.Command{
			greet.GetCommand(),
			version.GetCommand(),
		},
	}
}
