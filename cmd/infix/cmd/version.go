package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version of the infix command
var Version = "v0.1.0"

func getVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "infix %s\n", Version)
		},
	}
}
