package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fundctl",
		Short: "Talawa funds admin CLI",
		Long:  "Talawa funds admin CLI. Reads the same environment and config file as the API server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newCmdMigrate())
	cmd.AddCommand(newCmdToken())
	cmd.AddCommand(newCmdRemoveFund())

	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())

	if err := root.Execute(); err != nil {
		l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		l.Error().Err(err).Msg("Failed")
		os.Exit(1)
	}
}
