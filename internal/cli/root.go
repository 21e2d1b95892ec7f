package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "dayglow" command.
func NewRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "dayglow",
		Short:         "Health journal insights service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.AddCommand(
		newServeCmd(),
		newTokenCmd(),
	)
	return root
}
