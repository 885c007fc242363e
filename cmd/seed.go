package main

import (
	"context"
	"errors"
	"govconnect/internal/config"
	"govconnect/internal/directory"
	"govconnect/internal/matcher"
	"govconnect/pkg/domain"
	"govconnect/pkg/logger"
	"govconnect/pkg/serrors"
	"govconnect/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedProfile is the onboarding result stored for the demo account.
func seedProfile(userID domain.UserID) domain.BusinessProfile {
	return domain.BusinessProfile{
		UserID:        userID,
		Description:   "Custom software development and IT consulting for public sector clients",
		IndustryCodes: []string{"541511", "541512"},
		ValueRange:    domain.DefaultValueRange,
		Region:        "Ontario",
	}
}

// seedCommand creates the demo account with a completed profile and queues
// its first tender match. Running it twice keeps the existing account.
func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Creates the demo account with a completed business profile",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			user, err := directory.New(strg, 0).Register(ctx, name, email, password)
			if errors.Is(err, serrors.ErrEmailAlreadyRegistered) {
				account, lookupErr := strg.AccountByEmail(ctx, directory.NormalizeEmail(email))
				if lookupErr != nil || account == nil {
					logger.Fatal(ctx, "could not look up existing demo account", zap.Error(lookupErr))
				}
				user = account.Sanitize()
				err = nil
			}
			if err != nil {
				logger.Fatal(ctx, "could not register demo account", zap.Error(err))
			}

			err = strg.WithTx(ctx, func(tx storage.AllStorage) error {
				stored, err := tx.StoreProfile(ctx, seedProfile(user.ID))
				if err != nil {
					return err //nolint: wrapcheck
				}
				if _, err := tx.AddJob(ctx, matcher.NewJobArgs(*stored, cfg.Worker.MatchMaxAttempts), nil); err != nil {
					return err //nolint: wrapcheck
				}
				user.ProfileCompleted = true
				_, updateErr := tx.UpdateAccountUser(ctx, user)

				return updateErr //nolint: wrapcheck
			})
			if err != nil {
				logger.Fatal(ctx, "could not store demo profile", zap.Error(err))
			}

			logger.Info(ctx, "demo account seeded", logger.UserID(user.ID.String()), zap.String("email", user.Email))
		},
	}

	cmd.Flags().String("name", "Sarah Chen", "Display name of the demo account")
	cmd.Flags().String("email", "sarah@example.com", "Login email of the demo account")
	cmd.Flags().String("password", "password123", "Password of the demo account")

	return cmd
}
