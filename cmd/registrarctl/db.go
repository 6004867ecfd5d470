package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/registrar/internal/app/migrations"
	"github.com/yigit/registrar/internal/db"
)

func newDBCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Provision the PostgreSQL catalog schema",
	}

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded catalog schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.NewPostgresDB(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			applied, err := migrations.NewMigrator(database, c.logger).Migrate(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", applied)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "migrations",
		Short: "List the embedded migrations in apply order",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := migrations.NewMigrator(nil, c.logger).Pending()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.AddCommand(migrate, list)
	return cmd
}
