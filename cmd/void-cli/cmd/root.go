package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the void-cli command tree. Reply pool files are read
// from fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	root := &cobra.Command{
		Use:   "void-cli",
		Short: "Talk to the Void from a terminal",
		Long: `void-cli sends messages into the Void and inspects how it answers.

Available commands:
  ask        Send one message and print the reply, if any
  simulate   Measure the reply rate over many draws
  pool       List the replies the Void can give
  version    Print the version

Use "void-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newAskCmd(fs),
		newSimulateCmd(),
		newPoolCmd(fs),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command against the OS filesystem.
func Execute() {
	if err := NewRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
