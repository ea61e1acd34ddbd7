package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keyfall/internal/games/keyfall"
	"github.com/vovakirdan/keyfall/internal/games/keyfall/core"
)

var (
	flagInputs []string
	flagTicks  int
	flagBatch  bool
	flagTrace  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the demo level headless and print the grid",
	Long: `Runs the demo level without a terminal UI.

By default one input is applied per tick. With --batch every input is
queued before the first tick, so they resolve most recent first.

Directions: left, right, up, down (or l, r, u, d).

Examples:
  keyfall sim --inputs right,right,down
  keyfall sim --inputs left,right --batch
  keyfall sim --inputs right --ticks 5 --trace`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSimulation(cmd.OutOrStdout(), simOptions{
			Inputs: flagInputs,
			Ticks:  flagTicks,
			Batch:  flagBatch,
			Trace:  flagTrace,
		})
	},
}

func init() {
	simCmd.Flags().StringSliceVar(&flagInputs, "inputs", nil, "Comma-separated directions")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Total ticks to run (0 = one per input, at least one)")
	simCmd.Flags().BoolVar(&flagBatch, "batch", false, "Queue every input before the first tick")
	simCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print the grid after every tick")
}

type simOptions struct {
	Inputs []string
	Ticks  int
	Batch  bool
	Trace  bool
}

var errTooFewTicks = errors.New("sim: --ticks is smaller than the number of inputs")

// runSimulation plays inputs against the demo level and writes the final
// grid. An invariant violation stops the run with an error.
func runSimulation(out io.Writer, opts simOptions) error {
	dirs := make([]core.Direction, 0, len(opts.Inputs))
	for _, s := range opts.Inputs {
		d, err := core.ParseDirection(s)
		if err != nil {
			return fmt.Errorf("sim: %w", err)
		}
		dirs = append(dirs, d)
	}

	ticks := opts.Ticks
	if ticks == 0 {
		ticks = max(len(dirs), 1)
		if opts.Batch {
			ticks = 1
		}
	}
	if ticks < 0 || (!opts.Batch && ticks < len(dirs)) {
		return errTooFewTicks
	}

	sim, err := core.NewSimulation(keyfall.DemoLayout())
	if err != nil {
		return err
	}

	if opts.Batch {
		for _, d := range dirs {
			sim.Enqueue(d)
		}
	}

	for i := range ticks {
		if !opts.Batch && i < len(dirs) {
			sim.Enqueue(dirs[i])
		}
		sim.Tick()

		if err := sim.Grid().CheckInvariants(); err != nil {
			return fmt.Errorf("sim: tick %d: %w", sim.Ticks(), err)
		}
		if opts.Trace {
			fmt.Fprintf(out, "tick %d\n%s\n\n", sim.Ticks(), sim.Grid())
		}
		logger.Debug("tick", "n", sim.Ticks(), "pending", sim.Pending())
	}

	px, py := sim.PlayerPosition()
	fmt.Fprintln(out, sim.Grid().String())
	fmt.Fprintf(out, "tick %d player %d,%d\n", sim.Ticks(), px, py)
	return nil
}
