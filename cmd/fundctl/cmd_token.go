package main

import (
	"fmt"
	"strconv"

	"github.com/Vaishali054/talawa-api/config"
	"github.com/Vaishali054/talawa-api/internal/authentication"
	"github.com/spf13/cobra"
)

// newCmdToken returns a command printing an access token for an existing user.
func newCmdToken() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Issue an access token for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}

			configuration, err := config.New()
			if err != nil {
				return err
			}

			dbUser, err := configuration.UserRepository.FindByID(cmd.Context(), userID)
			if err != nil {
				return err
			}

			if dbUser == nil {
				return fmt.Errorf("user %d not found", userID)
			}

			ttl, _ := cmd.Flags().GetDuration("ttl")
			if ttl == 0 {
				ttl = configuration.JWT.AccessTokenTTL
			}

			token, _, err := authentication.GenerateToken(configuration.JWT.Secret, dbUser.ID, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().Duration("ttl", 0, "Token lifetime (defaults to JWT_ACCESS_TOKEN_TTL)")

	return cmd
}

func parseID(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", value)
	}

	return uint(id), nil
}
