package main

import (
	"github.com/Vaishali054/talawa-api/config"
	"github.com/spf13/cobra"
)

// newCmdMigrate returns a command that migrates the database, seeding it when SEED_DEMO_DATA is set.
func newCmdMigrate() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Loading the configuration runs the migrations.
			configuration, err := config.New()
			if err != nil {
				return err
			}

			configuration.Logger.Info().Bool("seedDemoData", configuration.SeedDemoData).Msg("migration done")

			return nil
		},
	}
}
