package session

import (
	"context"
	"errors"
	"govconnect/internal/signal"
	"govconnect/pkg/domain"
	"govconnect/pkg/localstore"
	"govconnect/pkg/logger"
	"govconnect/pkg/metrics"
	"govconnect/pkg/serrors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Notification messages.
const (
	MsgWelcomeBack    = "Welcome back!"
	MsgLoginFailed    = "Login failed: "
	MsgAccountCreated = "Account created successfully!"
	MsgSignupFailed   = "Signup failed: "
	MsgLoggedOut      = "Logged out successfully"

	msgUnexpected = "Something went wrong"
)

// Options tunes a Store.
type Options struct {
	// Latency is waited inside Login and Signup before the directory is asked.
	Latency time.Duration
	Metrics *metrics.Metrics
}

// Store is the Manager implementation. Mutators are serialized by opMu for
// their whole duration, simulated latency included. Readers only take mu, so
// they never wait for a slow mutator and always observe the state either
// before or after it.
type Store struct {
	directory Directory
	local     localstore.Store
	signals   Signals
	opts      Options

	opMu    sync.Mutex
	mu      sync.RWMutex
	user    *domain.User
	loading atomic.Bool
}

func New(directory Directory, local localstore.Store, signals Signals, opts Options) *Store {
	return &Store{
		directory: directory,
		local:     local,
		signals:   signals,
		opts:      opts,
	}
}

var _ Manager = (*Store)(nil)

func (s *Store) Init(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	raw, ok, err := s.local.GetItem(ctx, RecordKey)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not read session record")
	}
	if !ok {
		logger.Debug(ctx, "no session record, starting unauthenticated")
		s.set(nil)

		return nil
	}

	user, err := decodeRecord(raw)
	if err != nil {
		logger.Warn(ctx, "discarding malformed session record", zap.Error(err))
		if err := s.local.RemoveItem(ctx, RecordKey); err != nil {
			return serrors.Wrap(serrors.ErrInternal, err, "could not remove malformed session record")
		}
		s.set(nil)

		return nil
	}

	logger.Info(ctx, "session restored", logger.UserID(user.ID.String()))
	s.set(&user)

	return nil
}

func (s *Store) Login(ctx context.Context, email, password string) (domain.User, error) {
	// once started, a login runs to completion
	ctx = logger.WithFields(context.WithoutCancel(ctx), zap.String("op", "login"))

	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.loading.Store(true)
	defer s.loading.Store(false)

	s.wait()

	user, err := s.directory.Authenticate(ctx, email, password)
	if err != nil {
		s.fail(ctx, "login", MsgLoginFailed, err)

		return domain.User{}, err
	}

	if err := s.persist(ctx, &user); err != nil {
		s.fail(ctx, "login", MsgLoginFailed, err)

		return domain.User{}, err
	}

	logger.Info(ctx, "logged in", logger.UserID(user.ID.String()))
	s.opts.Metrics.SessionOperation(ctx, "login", metrics.OutcomeSuccess)
	s.signals.Navigate(ctx, stateOf(&user).Route())
	s.signals.Notify(ctx, signal.LevelSuccess, MsgWelcomeBack)

	return user, nil
}

func (s *Store) Signup(ctx context.Context, name, email, password string) (domain.User, error) {
	ctx = logger.WithFields(context.WithoutCancel(ctx), zap.String("op", "signup"))

	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.loading.Store(true)
	defer s.loading.Store(false)

	s.wait()

	user, err := s.directory.Register(ctx, name, email, password)
	if err != nil {
		s.fail(ctx, "signup", MsgSignupFailed, err)

		return domain.User{}, err
	}
	user.ProfileCompleted = false

	if err := s.persist(ctx, &user); err != nil {
		s.fail(ctx, "signup", MsgSignupFailed, err)

		return domain.User{}, err
	}

	logger.Info(ctx, "signed up", logger.UserID(user.ID.String()))
	s.opts.Metrics.SessionOperation(ctx, "signup", metrics.OutcomeSuccess)
	s.signals.Navigate(ctx, signal.RouteOnboardingStart)
	s.signals.Notify(ctx, signal.LevelSuccess, MsgAccountCreated)

	return user, nil
}

func (s *Store) Logout(ctx context.Context) error {
	ctx = logger.WithFields(context.WithoutCancel(ctx), zap.String("op", "logout"))

	s.opMu.Lock()
	defer s.opMu.Unlock()

	current := s.get()
	if current == nil {
		s.opts.Metrics.SessionOperation(ctx, "logout", metrics.OutcomeSkipped)

		return nil
	}

	if err := s.local.RemoveItem(ctx, RecordKey); err != nil {
		s.opts.Metrics.SessionOperation(ctx, "logout", metrics.OutcomeFailure)

		return serrors.Wrap(serrors.ErrInternal, err, "could not remove session record")
	}
	s.set(nil)

	logger.Info(ctx, "logged out", logger.UserID(current.ID.String()))
	s.opts.Metrics.SessionOperation(ctx, "logout", metrics.OutcomeSuccess)
	s.signals.Navigate(ctx, signal.RouteLogin)
	s.signals.Notify(ctx, signal.LevelSuccess, MsgLoggedOut)

	return nil
}

func (s *Store) UpdateUser(ctx context.Context, update domain.UserUpdate) (*domain.User, error) {
	ctx = logger.WithFields(context.WithoutCancel(ctx), zap.String("op", "update_user"))

	s.opMu.Lock()
	defer s.opMu.Unlock()

	current := s.get()
	if current == nil {
		s.opts.Metrics.SessionOperation(ctx, "update_user", metrics.OutcomeSkipped)

		return nil, nil
	}

	merged := current.Apply(update)
	synced, err := s.directory.Update(ctx, merged)
	if err != nil {
		s.opts.Metrics.SessionOperation(ctx, "update_user", metrics.OutcomeFailure)

		return nil, err
	}
	if err := s.persist(ctx, &synced); err != nil {
		s.opts.Metrics.SessionOperation(ctx, "update_user", metrics.OutcomeFailure)

		return nil, err
	}

	logger.Info(ctx, "user updated",
		logger.UserID(synced.ID.String()),
		zap.Bool("profile_completed", synced.ProfileCompleted))
	s.opts.Metrics.SessionOperation(ctx, "update_user", metrics.OutcomeSuccess)

	return &synced, nil
}

// CompleteProfile marks userID's profile complete. It fails with
// ErrUnauthorized when nobody is logged in and ErrConflict when the session
// belongs to someone else. The durable record is written before commit runs
// and restored when commit fails, so the record, the account and memory agree.
// ctx is used as is: callers carry their own log fields.
func (s *Store) CompleteProfile(ctx context.Context,
	userID domain.UserID,
	commit func(ctx context.Context, user domain.User) error) (domain.User, error) {
	ctx = context.WithoutCancel(ctx)

	s.opMu.Lock()
	defer s.opMu.Unlock()

	current := s.get()
	if current == nil {
		s.opts.Metrics.SessionOperation(ctx, "complete_profile", metrics.OutcomeFailure)

		return domain.User{}, serrors.With(serrors.ErrUnauthorized, "Log in to finish onboarding")
	}
	if current.ID != userID {
		logger.Warn(ctx, "session changed hands before the profile was completed",
			zap.String("session_user_id", current.ID.String()))
		s.opts.Metrics.SessionOperation(ctx, "complete_profile", metrics.OutcomeFailure)

		return domain.User{}, serrors.With(serrors.ErrConflict, "The session changed while your profile was being saved")
	}

	completed := *current
	completed.ProfileCompleted = true
	if err := s.local.SetItem(ctx, RecordKey, encodeRecord(completed)); err != nil {
		s.opts.Metrics.SessionOperation(ctx, "complete_profile", metrics.OutcomeFailure)

		return domain.User{}, serrors.Wrap(serrors.ErrInternal, err, "could not write session record")
	}

	if err := commit(ctx, completed); err != nil {
		if restoreErr := s.local.SetItem(ctx, RecordKey, encodeRecord(*current)); restoreErr != nil {
			logger.Error(ctx, "could not restore session record", zap.Error(restoreErr))
		}
		s.opts.Metrics.SessionOperation(ctx, "complete_profile", metrics.OutcomeFailure)

		return domain.User{}, err
	}
	s.set(&completed)

	logger.Info(ctx, "profile completed")
	s.opts.Metrics.SessionOperation(ctx, "complete_profile", metrics.OutcomeSuccess)

	return completed, nil
}

func (s *Store) Current() (domain.User, bool) {
	if u := s.get(); u != nil {
		return *u, true
	}

	return domain.User{}, false
}

func (s *Store) State() State {
	return stateOf(s.get())
}

// Loading reports whether a Login or Signup is in flight.
func (s *Store) Loading() bool {
	return s.loading.Load()
}

func (s *Store) Snapshot() Snapshot {
	user := s.get()
	state := stateOf(user)

	return Snapshot{
		User:    user,
		State:   state,
		Loading: s.loading.Load(),
		Route:   state.Route(),
	}
}

// get returns a copy of the current user, nil when unauthenticated.
func (s *Store) get() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user

	return &u
}

func (s *Store) set(user *domain.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

// persist writes the durable record first so memory never runs ahead of it.
func (s *Store) persist(ctx context.Context, user *domain.User) error {
	if err := s.local.SetItem(ctx, RecordKey, encodeRecord(*user)); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not write session record")
	}
	s.set(user)

	return nil
}

func (s *Store) fail(ctx context.Context, op, prefix string, err error) {
	kind := serrors.KindOf(err)
	msg := msgUnexpected
	if kind != serrors.ErrInternal {
		msg = serrors.MessageOf(err, kind.Error())
	}

	if errors.Is(err, serrors.ErrInternal) {
		logger.Error(ctx, op+" failed", zap.Error(err))
	} else {
		logger.Info(ctx, op+" rejected", zap.String("reason", kind.Error()))
	}

	s.opts.Metrics.SessionOperation(ctx, op, metrics.OutcomeFailure)
	s.signals.Notify(ctx, signal.LevelError, prefix+msg)
}

func (s *Store) wait() {
	if s.opts.Latency > 0 {
		time.Sleep(s.opts.Latency)
	}
}
