package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the qrt_inspect command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qrt_inspect",
		Short: "Inspect sales register workbooks and mint development tokens",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRegisterCommand())
	rootCmd.AddCommand(newTokenCommand())

	return rootCmd
}
