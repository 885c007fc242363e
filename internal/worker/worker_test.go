package worker_test

import (
	"context"
	mockmatcher "govconnect/internal/matcher/mock"
	"govconnect/internal/worker"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewConfig(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := worker.NewConfig(context.Background(), mockmatcher.NewMockMatcher(ctrl), worker.Options{
		MaxWorkers: 8,
		JobTimeout: 30 * time.Second,
	})
	require.Equal(t, map[string]river.QueueConfig{river.QueueDefault: {MaxWorkers: 8}}, cfg.Queues)
	require.Equal(t, 30*time.Second, cfg.JobTimeout)
	require.NotNil(t, cfg.Workers)
	require.NotNil(t, cfg.Logger)
}

func TestNewConfig_AtLeastOneWorker(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := worker.NewConfig(context.Background(), mockmatcher.NewMockMatcher(ctrl), worker.Options{})
	require.Equal(t, 1, cfg.Queues[river.QueueDefault].MaxWorkers)
	require.Zero(t, cfg.JobTimeout)
}
