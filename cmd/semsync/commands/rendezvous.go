package commands

import (
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/krishvs/semsync/rendezvous"
)

func newRendezvousCmd() *cobra.Command {
	var (
		rounds   int
		maxSleep time.Duration
	)

	cmd := &cobra.Command{
		Use:   "rendezvous",
		Short: "Run two goroutines in lockstep through a rendezvous",
		Long: `Two goroutines, A and B, each perform a number of work rounds. After
every round they meet at a rendezvous: neither starts round i+1 before the
other has finished round i, no matter how their random sleeps skew them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			r := rendezvous.New()

			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				for i := 0; i < rounds; i++ {
					napUpTo(maxSleep)
					log.Info("step", "side", "A", "round", i)
					r.AwaitA()
				}
			}()
			go func() {
				defer wg.Done()
				for i := 0; i < rounds; i++ {
					napUpTo(maxSleep)
					log.Info("step", "side", "B", "round", i)
					r.AwaitB()
				}
			}()
			wg.Wait()
			r.Destroy()

			log.Info("rendezvous complete", "rounds", rounds)
			return nil
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", 10, "work rounds per side")
	cmd.Flags().DurationVar(&maxSleep, "max-sleep", 300*time.Millisecond, "upper bound for random sleeps (0 disables)")

	return cmd
}
