// Package cli wires the bookshop commands: serving the HTTP API, applying
// schema migrations, and printing version information.
package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bookshop",
		Short:         "Order-management backend for the bookshop",
		Long:          "bookshop runs the order-management backend: member registration, the book catalog, and the order lifecycle over a SQLite database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

func Execute() error {
	return newRootCmd().Execute()
}
