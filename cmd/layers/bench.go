package main

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/nanaki04/layers"
)

var benchCmd = cli.Command{
	Name:  "bench",
	Usage: "hammer the resolve/enable/filter path from concurrent workers",
	Flags: []cli.Flag{
		&layersFlag,
		&cli.IntFlag{
			Name:  "workers",
			Usage: "number of concurrent workers",
			Value: 8,
		},
		&cli.IntFlag{
			Name:  "ops",
			Usage: "operations per worker",
			Value: 1_000_000,
		},
	},
	Action: bench,
}

// bench drives independent workers over a shared sequence. Sharing is safe
// without coordination: the sequence is immutable input and every worker
// derives its own mask values.
func bench(ctx *cli.Context) error {
	names := splitNames(ctx.String(layersFlag.Name))
	workers := ctx.Int("workers")
	ops := ctx.Int("ops")

	if len(names) == 0 || workers <= 0 || ops <= 0 {
		return fmt.Errorf("layers, workers, and ops must all be non-empty")
	}

	var (
		total   atomic.Uint64
		enabled atomic.Uint64
		wg      sync.WaitGroup
	)

	start := time.Now()
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			m := layers.NewMask()
			for i := 0; i < ops; i++ {
				name := names[rng.Intn(len(names))]
				switch i % 3 {
				case 0:
					m = layers.MustEnable(names, m, name)
				case 1:
					m, _ = layers.Disable(names, m, name)
				default:
					if layers.Enabled(names, m, name) {
						enabled.Add(1)
					}
				}
				total.Add(1)
			}
			if on := layers.EnabledLayers(names, m); len(on) > len(names) {
				panic("filter returned more names than the sequence holds")
			}
		}(int64(w) + 1)
	}
	wg.Wait()
	elapsed := time.Since(start)

	done := total.Load()
	fmt.Printf("workers:     %d\n", workers)
	fmt.Printf("operations:  %d\n", done)
	fmt.Printf("enabled hits: %d\n", enabled.Load())
	fmt.Printf("elapsed:     %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("throughput:  %.0f ops/sec\n", float64(done)/elapsed.Seconds())
	return nil
}
