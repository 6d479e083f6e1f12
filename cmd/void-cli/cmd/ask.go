package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nfrund/voidinbox/internal/config"
	"github.com/nfrund/voidinbox/internal/replies"
	"github.com/nfrund/voidinbox/internal/responder"
	"github.com/nfrund/voidinbox/internal/reveal"
	"github.com/nfrund/voidinbox/internal/surface"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type askOptions struct {
	seed        uint64
	probability float64
	poolFile    string
	animate     bool
	interval    time.Duration
}

func newAskCmd(fs afero.Fs) *cobra.Command {
	opts := askOptions{}
	c := &cobra.Command{
		Use:   "ask <message>",
		Short: "Send one message into the Void",
		Long: `Send one message into the Void. Usually nothing comes back.

Examples:
  void-cli ask "is anyone there?"
  void-cli ask --probability 1 --animate "hello"
  void-cli ask --seed 7 "same answer every time"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")
			if surface.IsBlank(message) {
				return nil
			}

			if err := checkProbability(opts.probability); err != nil {
				return err
			}
			pool, err := replies.Resolve(fs, opts.poolFile)
			if err != nil {
				return err
			}

			var ropts []responder.Option
			if cmd.Flags().Changed("seed") {
				ropts = append(ropts, responder.WithSeed(opts.seed))
			}
			r := responder.New(pool, opts.probability, ropts...)

			reply, ok := r.Respond(message)
			if !ok {
				return nil
			}
			if opts.animate {
				return typeOut(cmd.Context(), cmd.OutOrStdout(), reply, opts.interval)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), reply)
			return err
		},
	}

	f := c.Flags()
	f.Uint64Var(&opts.seed, "seed", 0, "seed the random source for a repeatable answer")
	f.Float64Var(&opts.probability, "probability", config.DefaultReplyProbability, "chance that the Void replies, 0 to 1")
	f.StringVar(&opts.poolFile, "pool", "", "file of replies, one per line")
	f.BoolVar(&opts.animate, "animate", false, "reveal the reply one character at a time")
	f.DurationVar(&opts.interval, "interval", config.DefaultRevealInterval, "delay between revealed characters")
	return c
}

// typeOut redraws the current line with each reveal frame.
func typeOut(ctx context.Context, w io.Writer, reply string, interval time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	for frame := range reveal.Schedule(ctx, reply, interval) {
		if _, err := fmt.Fprintf(w, "\r%s", frame); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
