package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/nanaki04/layers"
)

var showCmd = cli.Command{
	Name:      "show",
	Usage:     "print a mask's enabled and disabled layers",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&layersFlag,
		&maskFlag,
	},
	Action: show,
}

func show(ctx *cli.Context) error {
	names := splitNames(ctx.String(layersFlag.Name))
	m := layers.Mask(ctx.Uint64(maskFlag.Name))

	fmt.Printf("mask:     %d (0b%s)\n", uint64(m), m.Format())
	fmt.Printf("layers:   %s\n", strings.Join(names, ", "))
	fmt.Printf("enabled:  %s\n", strings.Join(layers.EnabledLayers(names, m), ", "))
	fmt.Printf("disabled: %s\n", strings.Join(layers.DisabledLayers(names, m), ", "))
	return nil
}

// splitNames parses the --layers flag. Empty elements are dropped so a
// trailing comma is harmless.
func splitNames(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}
