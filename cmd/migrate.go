package cmd

import (
	"context"
	"dressify/condb"
	"dressify/config"
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the PostgreSQL schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.StoreDriver != config.StorePostgres {
			return fmt.Errorf("migrate needs the %s store", config.StorePostgres)
		}
		if err := migrateDatabase(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func migrateDatabase(ctx context.Context) error {
	pool, err := condb.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()
	return condb.Migrate(ctx, pool)
}
