package main

import (
	"github.com/spf13/cobra"

	"github.com/banshee-data/strategy.canvas/internal/db"
)

func (a *app) migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the preferences database schema.",
	}

	withDB := func(run func(cmd *cobra.Command, database *db.DB) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			database, err := db.OpenDB(a.cfg.DBPath)
			if err != nil {
				return err
			}
			defer database.Close()
			return run(cmd, database)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations.",
			Args:  cobra.NoArgs,
			RunE: withDB(func(cmd *cobra.Command, database *db.DB) error {
				if err := database.MigrateUp(); err != nil {
					return err
				}
				cmd.Println("migrations applied")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration.",
			Args:  cobra.NoArgs,
			RunE: withDB(func(cmd *cobra.Command, database *db.DB) error {
				if err := database.MigrateDown(); err != nil {
					return err
				}
				cmd.Println("rolled back one migration")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version.",
			Args:  cobra.NoArgs,
			RunE: withDB(func(cmd *cobra.Command, database *db.DB) error {
				v, dirty, err := database.MigrateVersion()
				if err != nil {
					return err
				}
				cmd.Printf("schema version %d (dirty: %t)\n", v, dirty)
				return nil
			}),
		},
	)
	return cmd
}
