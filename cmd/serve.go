package main

import (
	"context"
	"errors"
	"govconnect/internal/api"
	"govconnect/internal/api/handler/v1handler"
	"govconnect/internal/config"
	"govconnect/internal/directory"
	"govconnect/internal/matcher"
	"govconnect/internal/onboarding"
	"govconnect/internal/profile"
	"govconnect/internal/session"
	"govconnect/internal/signal"
	"govconnect/internal/tenders"
	"govconnect/internal/worker"
	"govconnect/pkg/logger"
	"net/http"
	ossignal "os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := ossignal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			local, closeLocal := getLocalStore(ctx, cfg)
			defer closeLocal()

			m, err := api.NewMetrics()
			if err != nil {
				logger.Fatal(ctx, "could not create metrics", zap.Error(err))
			}

			hub := signal.NewHub()
			sessions := session.New(directory.New(strg, 0), local, hub, session.Options{
				Latency: cfg.Session.Latency,
				Metrics: m,
			})
			if err := sessions.Init(ctx); err != nil {
				logger.Fatal(ctx, "could not hydrate session", zap.Error(err))
			}

			riverClient, err := worker.Start(ctx, strg.Pool, matcher.New(strg), worker.Options{
				MaxWorkers: cfg.Worker.MaxWorkers,
				JobTimeout: cfg.Worker.JobTimeout,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Session:    sessions,
					Onboarding: onboarding.New(strg, sessions, hub, onboarding.NewOptions(cfg, m)),
					Profile:    profile.New(strg, sessions, hub, profile.NewOptions(cfg)),
					Tenders:    tenders.New(strg, sessions, hub),
					Signals:    hub,
				},
				Metrics: m,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
