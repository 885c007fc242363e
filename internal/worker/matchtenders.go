package worker

import (
	"context"
	"errors"
	"fmt"
	"govconnect/internal/matcher"
	"govconnect/pkg/domain"
	"govconnect/pkg/logger"
	"govconnect/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// MatchTendersWorker recomputes a user's tender match scores.
//
// A job whose user id does not parse, or whose user has no business profile,
// is cancelled rather than retried. Other errors go through River's retry
// policy.
type MatchTendersWorker struct {
	river.WorkerDefaults[matcher.JobArgs]

	matcher matcher.Matcher
}

func NewMatchTendersWorker(m matcher.Matcher) *MatchTendersWorker {
	return &MatchTendersWorker{matcher: m}
}

func (w *MatchTendersWorker) Work(ctx context.Context, job *river.Job[matcher.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), logger.UserID(job.Args.UserID))

	userID, err := domain.ParseUserID(job.Args.UserID)
	if err != nil {
		logger.Error(ctx, "invalid user id in job", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	matched, err := w.matcher.Match(ctx, userID, job.Args.Revision)
	if errors.Is(err, matcher.ErrSuperseded) {
		logger.Info(ctx, "profile changed, leaving matching to the newer job", zap.Int64("revision", job.Args.Revision))

		return nil
	}
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "skipping tender matching", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in matching tenders", zap.Error(err))

		return fmt.Errorf("could not match tenders: %w", err)
	}

	logger.Info(ctx, "tenders matched", zap.Int("matched", matched))

	return nil
}
