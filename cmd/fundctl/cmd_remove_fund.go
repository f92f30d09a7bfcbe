package main

import (
	"fmt"

	"github.com/Vaishali054/talawa-api/config"
	"github.com/Vaishali054/talawa-api/internal/fund"
	"github.com/spf13/cobra"
)

// newCmdRemoveFund returns a command removing a fund on behalf of a user.
// The usual authorization rules apply, so --user must be an organization admin or a super admin.
func newCmdRemoveFund() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-fund <fund-id>",
		Short: "Remove a fund with its campaigns and pledges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fundID, err := parseID(args[0])
			if err != nil {
				return err
			}

			userFlag, _ := cmd.Flags().GetString("user")
			userID, err := parseID(userFlag)
			if err != nil {
				return fmt.Errorf("--user: %w", err)
			}

			configuration, err := config.New()
			if err != nil {
				return err
			}

			if err := fund.New(configuration).Remove(cmd.Context(), userID, fundID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "fund %d removed\n", fundID)

			return nil
		},
	}

	cmd.Flags().String("user", "", "ID of the user performing the removal")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
