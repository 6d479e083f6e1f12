package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/voidinbox/internal/replies"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type poolOptions struct {
	poolFile string
	format   string
}

func newPoolCmd(fs afero.Fs) *cobra.Command {
	opts := poolOptions{}
	c := &cobra.Command{
		Use:   "pool",
		Short: "List the replies the Void can give",
		Long: `List the replies the Void can give.

Output formats:
  table - numbered, human-readable (default)
  json  - a JSON array of strings`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := replies.Resolve(fs, opts.poolFile)
			if err != nil {
				return err
			}

			switch opts.format {
			case "table":
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "#\tREPLY")
				for i, reply := range pool.All() {
					fmt.Fprintf(w, "%d\t%s\n", i, reply)
				}
				return w.Flush()
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(pool.All())
			default:
				return fmt.Errorf("invalid format %q, valid formats: table, json", opts.format)
			}
		},
	}

	c.Flags().StringVar(&opts.poolFile, "pool", "", "file of replies, one per line")
	c.Flags().StringVar(&opts.format, "format", "table", "output format (table, json)")
	return c
}
