package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"govconnect/pkg/logger"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// insertClient returns a River client that is only used to insert jobs. It
// has no queues configured, so it never works any of them.
func insertClient(db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return client, nil
}

// AddJob enqueues a River job. Inside a transaction the job is inserted with
// InsertTx and only becomes visible, and workable, once the transaction
// commits; a rollback discards it together with the rest of the unit of work.
// The returned boolean is false when River skipped a unique duplicate.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		client, cerr := insertClient(nil)
		if cerr != nil {
			return false, cerr
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		client, cerr := insertClient(db)
		if cerr != nil {
			return false, cerr
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("unsupported executor %T", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	logger.Debug(ctx, "job enqueued",
		zap.String("kind", args.Kind()),
		zap.Int64("job_id", res.Job.ID),
		zap.Bool("duplicate", res.UniqueSkippedAsDuplicate))

	return !res.UniqueSkippedAsDuplicate, nil
}
