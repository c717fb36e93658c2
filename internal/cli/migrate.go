package cli

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khoward/bookshop/internal/storage"
)

func newMigrateCmd() *cobra.Command {
	var (
		dbPath string
		down   bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = getenv("BOOKSHOP_DB_PATH", "bookshop.db")
			}

			db, err := sql.Open(storage.DriverName, dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if down {
				if err := storage.RollbackMigration(cmd.Context(), db); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back most recent migration on %s\n", dbPath)
				return nil
			}

			if err := storage.ApplyMigrations(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema at %s on %s\n", storage.CurrentSchemaVersion, dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (defaults to BOOKSHOP_DB_PATH or bookshop.db)")
	cmd.Flags().BoolVar(&down, "down", false, "Roll back the most recent migration instead of applying")

	return cmd
}
