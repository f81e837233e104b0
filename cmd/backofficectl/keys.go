package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/property_backoffice/internal/platform/config"
	"github.com/SscSPs/property_backoffice/internal/utils"
)

// HashKeyCmd prints a bcrypt hash for BANK_IMPORT_API_KEY_HASH, generating the key when none is given.
func HashKeyCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "hash-key",
		Short: "Hash an API key for the bank-import webhook",
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				generated, err := utils.GenerateSecureRandomString(32)
				if err != nil {
					return err
				}
				key = generated
				fmt.Fprintf(cmd.OutOrStdout(), "key:  %s\n", key)
			}
			hash, err := utils.HashSecret(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "hash: %s\n", hash)
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "key to hash")
	return cmd
}

// TokenCmd issues a JWT signed with the configured secret.
func TokenCmd() *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			token, err := utils.GenerateJWT(userID, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id placed in the token subject")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
