package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/nanaki04/layers"
)

var (
	enableCmd = cli.Command{
		Name:      "enable",
		Usage:     "set the bits of the named layers and print the new mask",
		ArgsUsage: "<name|index>...",
		Flags:     []cli.Flag{&layersFlag, &maskFlag},
		Action:    applyAction((layers.Mask).Enable),
	}
	disableCmd = cli.Command{
		Name:      "disable",
		Usage:     "clear the bits of the named layers and print the new mask",
		ArgsUsage: "<name|index>...",
		Flags:     []cli.Flag{&layersFlag, &maskFlag},
		Action:    applyAction((layers.Mask).Disable),
	}
	toggleCmd = cli.Command{
		Name:      "toggle",
		Usage:     "flip the bits of the named layers and print the new mask",
		ArgsUsage: "<name|index>...",
		Flags:     []cli.Flag{&layersFlag, &maskFlag},
		Action:    applyAction((layers.Mask).Toggle),
	}
)

// applyAction builds a command action around one of the Mask bit operations.
// Arguments are raw indices when they parse as integers, layer names
// otherwise, matching the library's passthrough rule.
func applyAction(op func(layers.Mask, ...int) layers.Mask) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		if ctx.Args().Len() == 0 {
			return fmt.Errorf("at least one layer name or index is required")
		}

		names := splitNames(ctx.String(layersFlag.Name))
		m := layers.Mask(ctx.Uint64(maskFlag.Name))

		for _, arg := range ctx.Args().Slice() {
			var ref any = arg
			if n, err := strconv.Atoi(arg); err == nil {
				ref = n
			}
			i, err := layers.ResolveIndex(names, ref)
			if err != nil {
				return err
			}
			m = op(m, i)
		}

		fmt.Printf("mask: %d (0b%s)\n", uint64(m), m.Format())
		return nil
	}
}
