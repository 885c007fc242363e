// Package worker runs the background jobs of the service on River.
package worker

import (
	"context"
	"fmt"
	"govconnect/internal/matcher"
	"govconnect/pkg/logger"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// Options tunes the matching queue.
type Options struct {
	MaxWorkers int
	// JobTimeout bounds a single scoring run. Zero keeps River's default.
	JobTimeout time.Duration
}

// NewConfig registers the match_tenders worker on the default queue.
func NewConfig(ctx context.Context, m matcher.Matcher, opts Options) *river.Config {
	if opts.MaxWorkers < 1 {
		opts.MaxWorkers = 1
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewMatchTendersWorker(m))

	return &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.MaxWorkers},
		},
		JobTimeout: opts.JobTimeout,
		Workers:    workers,
		Logger:     slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	}
}

// Start builds a River client over the pool and starts working match jobs.
func Start(ctx context.Context, dbPool *pgxpool.Pool, m matcher.Matcher, opts Options) (*river.Client[pgx.Tx], error) {
	client, err := river.NewClient(riverpgxv5.New(dbPool), NewConfig(ctx, m, opts))
	if err != nil {
		return nil, fmt.Errorf("could not create match queue client: %w", err)
	}

	if err := client.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start match queue client: %w", err)
	}
	logger.Info(ctx, "match queue started", zap.Int("maxWorkers", opts.MaxWorkers))

	return client, nil
}
