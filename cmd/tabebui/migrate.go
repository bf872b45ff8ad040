package main

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/limbo/tabebui/migrations"
	"github.com/limbo/tabebui/pkg/config"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for postgres storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := opts.resolve()
			if err != nil {
				return err
			}
			if a.cfg.Storage.Driver != config.StoragePostgres {
				return fmt.Errorf("migrate needs STORAGE_DRIVER=%s, got %q", config.StoragePostgres, a.cfg.Storage.Driver)
			}
			db, err := sql.Open("pgx", pgConfig(a.cfg).ConnString())
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()
			results, err := migrations.Up(cmd.Context(), db)
			if err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date.")
				return nil
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s in %s\n", r.Source.Path, r.Duration)
			}
			return nil
		},
	}
}
