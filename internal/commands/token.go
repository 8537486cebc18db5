package commands

import (
	"fmt"
	"time"

	"github.com/qrtclosure/qrt_closure_app/internal/platform/config"
	"github.com/qrtclosure/qrt_closure_app/internal/utils"
	"github.com/spf13/cobra"
)

func newTokenCommand() *cobra.Command {
	var userID string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token signed with the configured JWT secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cfg.IsProduction {
				return fmt.Errorf("refusing to mint tokens with IS_PRODUCTION set")
			}
			if ttl <= 0 {
				ttl = cfg.JWTExpiryDuration
			}

			token, err := utils.GenerateJWT(userID, cfg.JWTSecret, ttl, cfg.JWTIssuer)
			if err != nil {
				return fmt.Errorf("generating token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID placed in the token subject (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default: JWT_EXPIRY_DURATION)")

	return cmd
}
