package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/layers <command> <flags>

var (
	layersFlag = cli.StringFlag{
		Name:     "layers",
		Usage:    "comma-separated ordered layer names giving the mask its meaning",
		Required: true,
	}
	maskFlag = cli.Uint64Flag{
		Name:  "mask",
		Usage: "current mask value (decimal)",
		Value: 0,
	}
)

func main() {
	app := &cli.App{
		Name:  "layers",
		Usage: "named-layer bitmask toolbox",
		Commands: []*cli.Command{
			&showCmd,
			&enableCmd,
			&disableCmd,
			&toggleCmd,
			&benchCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
