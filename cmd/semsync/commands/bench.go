package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/krishvs/semsync/counterbench"
)

var (
	benchHeaderStyle = lipgloss.NewStyle().Bold(true)
	benchOKStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	benchFailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func newBenchCmd() *cobra.Command {
	var (
		incWorkers    int
		decWorkers    int
		incIterations int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark a shared counter across locking strategies",
		Long: `Runs balanced increment/decrement workers against one shared counter,
once per synchronization strategy (none, mutex, spinlock, atomic). A
correct strategy finishes with the counter at zero; the unsynchronized
run usually does not, which is the point.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if incWorkers <= 0 || decWorkers <= 0 || incIterations <= 0 {
				return fmt.Errorf("worker and iteration counts must be positive")
			}
			cfg := counterbench.DefaultConfig()
			cfg.IncWorkers = incWorkers
			cfg.DecWorkers = decWorkers
			cfg.IncIterations = incIterations
			if !cfg.Balanced() {
				return fmt.Errorf("worker counts do not balance: %d*%d*%d increments vs %d*%d*%d decrements",
					cfg.IncWorkers, cfg.IncIterations, cfg.Increment,
					cfg.DecWorkers, cfg.DecIterations(), cfg.Decrement)
			}

			results := counterbench.RunAll(cfg)
			fmt.Fprintln(cmd.OutOrStdout(), renderSummary(results))
			return nil
		},
	}

	cmd.Flags().IntVar(&incWorkers, "inc-workers", 5, "incrementing goroutines")
	cmd.Flags().IntVar(&decWorkers, "dec-workers", 4, "decrementing goroutines")
	cmd.Flags().IntVar(&incIterations, "iterations", 20000, "iterations per incrementing goroutine")

	return cmd
}

func renderSummary(results []counterbench.Result) string {
	var b strings.Builder

	b.WriteString(benchHeaderStyle.Render("SUMMARY"))
	b.WriteString("\n\n")
	b.WriteString(benchHeaderStyle.Render(fmt.Sprintf("%-22s %10s  %-8s %12s %12s",
		"Strategy", "Counter", "Result", "Total", "Avg/worker")))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 70))
	b.WriteString("\n")

	for _, r := range results {
		verdict := benchOKStyle.Render("success")
		if !r.OK {
			verdict = benchFailStyle.Render("failure")
		}
		fmt.Fprintf(&b, "%-22s %10d  %-8s %12s %12s\n",
			r.Strategy, r.Counter, verdict,
			r.Total.Round(time.Microsecond), r.Average.Round(time.Microsecond))
	}

	return b.String()
}
