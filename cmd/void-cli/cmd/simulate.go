package cmd

import (
	"fmt"

	"github.com/nfrund/voidinbox/internal/config"
	"github.com/nfrund/voidinbox/internal/replies"
	"github.com/nfrund/voidinbox/internal/responder"
	"github.com/spf13/cobra"
)

const defaultTrials = 100_000

type simulateOptions struct {
	trials      int
	seed        uint64
	probability float64
}

// simulation is the outcome of a run of draws.
type simulation struct {
	Trials  int
	Replies int
}

func (s simulation) Rate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Replies) / float64(s.Trials)
}

func simulate(r *responder.Responder, trials int) simulation {
	sim := simulation{Trials: trials}
	for range trials {
		if _, ok := r.Respond("?"); ok {
			sim.Replies++
		}
	}
	return sim
}

func newSimulateCmd() *cobra.Command {
	opts := simulateOptions{}
	c := &cobra.Command{
		Use:   "simulate",
		Short: "Measure how often the Void replies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.trials <= 0 {
				return fmt.Errorf("--trials must be positive, got %d", opts.trials)
			}
			if err := checkProbability(opts.probability); err != nil {
				return err
			}

			var ropts []responder.Option
			if cmd.Flags().Changed("seed") {
				ropts = append(ropts, responder.WithSeed(opts.seed))
			}
			r := responder.New(replies.Default(), opts.probability, ropts...)

			sim := simulate(r, opts.trials)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "replied %d of %d (rate %.4f, expected %.4f)\n",
				sim.Replies, sim.Trials, sim.Rate(), opts.probability)
			return err
		},
	}

	f := c.Flags()
	f.IntVar(&opts.trials, "trials", defaultTrials, "number of messages to send")
	f.Uint64Var(&opts.seed, "seed", 0, "seed the random source for a repeatable run")
	f.Float64Var(&opts.probability, "probability", config.DefaultReplyProbability, "chance that the Void replies, 0 to 1")
	return c
}

func checkProbability(p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("--probability must be between 0 and 1, got %v", p)
	}
	return nil
}
