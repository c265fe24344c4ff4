package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "bida",
		Short:              "Billiard Club Management System",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printBanner(cmd.OutOrStdout())
		},
	}
}

// Execute runs the root command. Arguments are accepted and discarded so that
// cobra's hidden completion commands never replace the banner.
func Execute(args []string) error {
	root := NewRootCommand()
	root.SetArgs([]string{})
	return root.Execute()
}
