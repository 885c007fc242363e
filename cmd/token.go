package main

import (
	"context"
	"fmt"
	"govconnect/internal/api/handler/v1handler"
	"govconnect/internal/config"
	"govconnect/internal/directory"
	"govconnect/pkg/logger"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand prints an HS256 bearer token for the account owning --email,
// signed with the configured session secret. The API only accepts it while
// that account is the active session.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generates a bearer token for the given account",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			email, _ := cmd.Flags().GetString("email")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			opts := v1handler.NewSecHandlerOptions(cfg)
			opts.TTL = ttl
			sec, err := v1handler.NewSecHandler(opts)
			if err != nil {
				logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			account, err := strg.AccountByEmail(ctx, directory.NormalizeEmail(email))
			if err != nil {
				logger.Fatal(ctx, "could not look up account", zap.Error(err))
			}
			if account == nil {
				logger.Fatal(ctx, "no account is registered with this email", zap.String("email", email))
			}

			signed, err := sec.Issue(account.ID)
			if err != nil {
				logger.Fatal(ctx, "could not sign token", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("email", "", "Login email of the account")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
