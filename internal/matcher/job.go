package matcher

import (
	"govconnect/pkg/domain"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs asks the worker to recompute a user's tender match scores.
type JobArgs struct {
	UserID string `json:"user_id" river:"unique"`
	// Revision is the profile version the job was queued for. Every profile
	// change yields a new revision, so a change committed while an older job
	// runs is never deduplicated away.
	Revision int64 `json:"revision" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// NewJobArgs builds the arguments of a matching job for a just stored profile.
func NewJobArgs(profile domain.BusinessProfile, maxAttempts int) JobArgs {
	return JobArgs{
		UserID:      profile.UserID.String(),
		Revision:    Revision(profile.UpdatedAt),
		maxAttempts: maxAttempts,
	}
}

// Revision is the job revision of a profile last updated at updatedAt.
func Revision(updatedAt time.Time) int64 {
	if updatedAt.IsZero() {
		return 0
	}

	return updatedAt.UnixMicro()
}

func (args JobArgs) Kind() string { return "MatchTendersJob" }

// InsertOpts dedupes unfinished jobs for the same user and revision.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRetryable,
				rivertype.JobStateRunning,
				rivertype.JobStateScheduled,
			},
		},
	}
}
