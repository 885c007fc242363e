// Package session owns the single authenticated session of the process: who
// is logged in, whether their business profile is complete, and the durable
// record that lets the session survive a restart.
//
//go:generate mockgen -package mocksession -source=interface.go -destination=mock/mocksession.go *
package session

import (
	"context"
	"govconnect/internal/signal"
	"govconnect/pkg/domain"
)

// Directory is the account directory consulted by Login and Signup.
type Directory interface {
	Authenticate(ctx context.Context, email, password string) (domain.User, error)
	Register(ctx context.Context, name, email, password string) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
}

// Signals receives navigation and notification side effects.
type Signals interface {
	Navigate(ctx context.Context, route signal.Route)
	Notify(ctx context.Context, level signal.Level, message string)
}

// Manager is the session as seen by the onboarding flow and the HTTP layer.
type Manager interface {
	// Init hydrates the session from the durable record. Call it once, before
	// anything reads the session.
	Init(ctx context.Context) error
	Login(ctx context.Context, email, password string) (domain.User, error)
	Signup(ctx context.Context, name, email, password string) (domain.User, error)
	// Logout is a no-op without an active session.
	Logout(ctx context.Context) error
	// UpdateUser merges update into the current user. It returns nil, nil
	// without an active session.
	UpdateUser(ctx context.Context, update domain.UserUpdate) (*domain.User, error)
	// CompleteProfile runs commit and flips profileCompleted for userID, which
	// has to be the session user for the whole call.
	CompleteProfile(ctx context.Context,
		userID domain.UserID,
		commit func(ctx context.Context, user domain.User) error) (domain.User, error)

	Current() (domain.User, bool)
	State() State
	Loading() bool
	Snapshot() Snapshot
}
