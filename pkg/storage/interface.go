// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations and transaction management so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"govconnect/pkg/domain"

	"github.com/riverqueue/river"
)

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	AccountStorage
	ProfileStorage
	TenderStorage
	JobStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions. It exposes domain-specific capabilities and lifecycle
// management such as Close.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx is a helper that begins a transaction, invokes the provided callback
	// with a TxStorage, and then commits on success or rolls back if the callback
	// returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

// AccountStorage persists directory accounts. Emails are compared in their
// normalized (trimmed, lower-cased) form; callers normalize before calling.
type AccountStorage interface {
	// StoreAccount inserts a new account. ErrDuplicate is returned when the
	// email is already registered.
	StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	// AccountByEmail returns nil without error when no account matches.
	AccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	// UpdateAccountUser overwrites the public fields of an account. ErrDuplicate
	// is returned when the new email belongs to another account; nil, nil when
	// the account does not exist.
	UpdateAccountUser(ctx context.Context, user domain.User) (*domain.User, error)
}

// ProfileStorage persists business profiles, one per user.
type ProfileStorage interface {
	// StoreProfile inserts or replaces the profile of profile.UserID.
	StoreProfile(ctx context.Context, profile domain.BusinessProfile) (*domain.BusinessProfile, error)
	// ProfileByUserID returns nil without error when the user has no profile.
	ProfileByUserID(ctx context.Context, userID domain.UserID) (*domain.BusinessProfile, error)
}

// TenderStorage reads the tender catalog along with per-user marks and scores.
type TenderStorage interface {
	// Tenders returns the catalog with userID's marks and match scores filled in.
	Tenders(ctx context.Context, userID domain.UserID) ([]domain.Tender, error)
	// TenderByID returns nil without error when the tender does not exist.
	TenderByID(ctx context.Context, userID domain.UserID, id domain.TenderID) (*domain.Tender, error)
	// SetTenderMark records the user's decision. TenderMarkNone clears it.
	SetTenderMark(ctx context.Context, userID domain.UserID, id domain.TenderID, mark domain.TenderMark) error
	// StoreMatchScores replaces the user's match scores.
	StoreMatchScores(ctx context.Context, userID domain.UserID, scores map[domain.TenderID]float64) error
}

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations are responsible for persisting the job into the underlying
// queue backend. The args parameter contains the job payload and opts can be
// used to customize insertion behavior (e.g., queue name, delay, priority).
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It should be atomic
	// with respect to any surrounding transaction when supported by the backend.
	// The boolean is false when a unique job was skipped as a duplicate.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
