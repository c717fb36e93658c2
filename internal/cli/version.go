package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khoward/bookshop/internal/storage"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show bookshop version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "bookshop %s (%s)\n", version, commit)
			fmt.Fprintf(cmd.OutOrStdout(), "build mode: %s, sqlite driver: %s, schema: %s\n",
				storage.BuildMode, storage.DriverName, storage.CurrentSchemaVersion)
			return nil
		},
	}
}
