package commands

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/krishvs/semsync/boundedbuffer"
)

// Tuple is the payload the classic lab pushes through the buffer: the
// producer's ID paired with a sequence number.
type Tuple struct {
	A, B int
}

func newBufferCmd() *cobra.Command {
	var (
		producers int
		consumers int
		items     int
		capacity  int
		maxSleep  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "buffer",
		Short: "Run producers and consumers against one bounded buffer",
		Long: `Spawns N producers each putting a number of (producer, sequence) tuples
into a shared bounded buffer and M consumers draining it. Random sleeps
exaggerate the interleaving so full-buffer and empty-buffer blocking both
occur. The item counts are fixed up front, so all goroutines join and the
buffer is destroyed empty.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if producers <= 0 || consumers <= 0 || items <= 0 || capacity <= 0 {
				return fmt.Errorf("producers, consumers, items and capacity must be positive")
			}
			log := newLogger()

			total := producers * items
			buf := boundedbuffer.New[Tuple](capacity)
			log.Info("starting run",
				"producers", producers,
				"consumers", consumers,
				"items_per_producer", items,
				"capacity", capacity)

			start := time.Now()

			var pg sync.WaitGroup
			for p := 0; p < producers; p++ {
				pg.Add(1)
				go func(id int) {
					defer pg.Done()
					for i := 0; i < items; i++ {
						napUpTo(maxSleep)
						buf.Put(Tuple{A: id, B: i})
						log.Debug("put", "producer", id, "seq", i)
					}
				}(p)
			}

			// Divide the fixed total across consumers; the first few pick
			// up the remainder.
			var cg sync.WaitGroup
			for c := 0; c < consumers; c++ {
				share := total / consumers
				if c < total%consumers {
					share++
				}
				cg.Add(1)
				go func(id, share int) {
					defer cg.Done()
					for i := 0; i < share; i++ {
						t := buf.Get()
						log.Debug("get", "consumer", id, "producer", t.A, "seq", t.B)
						napUpTo(maxSleep)
					}
				}(c, share)
			}

			pg.Wait()
			cg.Wait()

			leftover := buf.Len()
			buf.Destroy()

			log.Info("run complete",
				"items", total,
				"leftover", leftover,
				"elapsed", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().IntVar(&producers, "producers", 5, "number of producer goroutines")
	cmd.Flags().IntVar(&consumers, "consumers", 4, "number of consumer goroutines")
	cmd.Flags().IntVar(&items, "items", 20, "items each producer puts")
	cmd.Flags().IntVar(&capacity, "capacity", 10, "buffer capacity")
	cmd.Flags().DurationVar(&maxSleep, "max-sleep", 50*time.Millisecond, "upper bound for random sleeps (0 disables)")

	return cmd
}

// napUpTo sleeps a random duration in [0, max).
func napUpTo(max time.Duration) {
	if max <= 0 {
		return
	}
	time.Sleep(time.Duration(rand.Int63n(int64(max))))
}
