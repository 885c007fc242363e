// Package main is the govconnect CLI: serve, migrate, seed and token.
package main

import (
	"context"
	"fmt"
	"govconnect/internal/config"
	"govconnect/pkg/logger"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCommand loads the config before any subcommand runs. Subcommands hold
// the same *config.Config and only read it inside Run.
func rootCommand(cfg *config.Config) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "govconnect",
		Short:         "GovConnect session, onboarding and tender matching service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("could not load config %q: %w", configPath, err)
			}
			*cfg = *loaded
			logger.Setup(cfg.Environment)
			logger.Debug(cmd.Context(), "config loaded", zap.String("path", configPath), zap.String("command", cmd.Name()))

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		seedCommand(cfg),
		tokenCommand(cfg),
	)

	return rootCmd
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err := rootCommand(&config.Config{}).ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1) //nolint: gocritic
	}
}
