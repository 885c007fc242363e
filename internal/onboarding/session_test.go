package onboarding_test

import (
	"context"
	"errors"
	"govconnect/internal/onboarding"
	"govconnect/internal/session"
	mocksession "govconnect/internal/session/mock"
	"govconnect/internal/signal"
	"govconnect/pkg/domain"
	mocklocalstore "govconnect/pkg/localstore/mock"
	"govconnect/pkg/localstore/sqlite"
	"govconnect/pkg/serrors"
	"govconnect/pkg/logger"
	mockstorage "govconnect/pkg/storage/mock"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// signalLog records every signal for later assertions.
type signalLog struct {
	mu     sync.Mutex
	routes []signal.Route
	notes  []string
}

func (l *signalLog) lastRoute() signal.Route {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.routes) == 0 {
		return ""
	}

	return l.routes[len(l.routes)-1]
}

func (l *signalLog) notifications() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.notes...)
}

func recordSignals(ctrl *gomock.Controller) (*mocksession.MockSignals, *signalLog) {
	log := &signalLog{}
	signals := mocksession.NewMockSignals(ctrl)
	signals.EXPECT().Navigate(gomock.Any(), gomock.Any()).Do(func(_ context.Context, route signal.Route) {
		log.mu.Lock()
		log.routes = append(log.routes, route)
		log.mu.Unlock()
	}).AnyTimes()
	signals.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, _ signal.Level, message string) {
			log.mu.Lock()
			log.notes = append(log.notes, message)
			log.mu.Unlock()
		}).AnyTimes()

	return signals, log
}

// liveFixture runs the flow against a real session store persisting to SQLite.
type liveFixture struct {
	ctrl      *gomock.Controller
	storage   *mockstorage.MockStorage
	directory *mocksession.MockDirectory
	local     *sqlite.Store
	sessions  *session.Store
	signals   *signalLog
	flow      *onboarding.Flow
}

func newLiveFixture(t *testing.T, commitLatency time.Duration) *liveFixture {
	t.Helper()
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	local, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })

	signals, log := recordSignals(ctrl)
	fx := &liveFixture{
		ctrl:      ctrl,
		storage:   mockstorage.NewMockStorage(ctrl),
		directory: mocksession.NewMockDirectory(ctrl),
		local:     local,
		signals:   log,
	}
	fx.sessions = session.New(fx.directory, local, signals, session.Options{})
	require.NoError(t, fx.sessions.Init(ctx))
	fx.flow = onboarding.New(fx.storage, fx.sessions, signals, onboarding.Options{
		CommitLatency:       commitLatency,
		StrictIndustryCodes: true,
		MatchMaxAttempts:    matchMaxAttempts,
	})

	return fx
}

func (fx *liveFixture) login(t *testing.T, user domain.User) {
	t.Helper()
	fx.directory.EXPECT().Authenticate(gomock.Any(), user.Email, "pw").Return(user, nil)

	_, err := fx.sessions.Login(context.Background(), user.Email, "pw")
	require.NoError(t, err)
}

// fillProfile walks all four steps with a consulting profile in Ontario.
func (fx *liveFixture) fillProfile(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := fx.flow.SetDescription(ctx, "consulting")
	require.NoError(t, err)
	_, err = fx.flow.Next(ctx)
	require.NoError(t, err)

	// the draft preselects 541512 and 541519
	state, err := fx.flow.ToggleIndustryCode(ctx, "541519")
	require.NoError(t, err)
	require.Equal(t, []string{"541512"}, state.Draft.IndustryCodes)
	_, err = fx.flow.Next(ctx)
	require.NoError(t, err)

	_, err = fx.flow.SetValueRange(ctx, domain.ValueRange{Min: 50_000, Max: 100_000})
	require.NoError(t, err)
	_, err = fx.flow.Next(ctx)
	require.NoError(t, err)

	_, err = fx.flow.SetRegion(ctx, "Ontario")
	require.NoError(t, err)
	require.Equal(t, signal.RouteOnboardingRegion, fx.signals.lastRoute())
}

func (fx *liveFixture) record(t *testing.T) string {
	t.Helper()
	raw, ok, err := fx.local.GetItem(context.Background(), session.RecordKey)
	require.NoError(t, err)
	require.True(t, ok)

	return raw
}

func TestFlow_SignupToDashboard(t *testing.T) {
	fx := newLiveFixture(t, 0)
	ctx := context.Background()
	alice := domain.User{ID: domain.NewUserID(), Name: "Alice", Email: "alice@example.com"}

	fx.directory.EXPECT().Register(gomock.Any(), "Alice", "alice@example.com", "pw").Return(alice, nil)
	_, err := fx.sessions.Signup(ctx, "Alice", "alice@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, signal.RouteOnboardingStart, fx.signals.lastRoute())

	fx.fillProfile(t)

	completed := alice
	completed.ProfileCompleted = true
	expectWithTx(t, fx.ctrl, fx.storage, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().StoreProfile(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p domain.BusinessProfile) (*domain.BusinessProfile, error) {
					require.Equal(t, domain.BusinessProfile{
						UserID:        alice.ID,
						Description:   "consulting",
						IndustryCodes: []string{"541512"},
						ValueRange:    domain.ValueRange{Min: 50_000, Max: 100_000},
						Region:        "Ontario",
					}, p)

					return &p, nil
				}),
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), nil).Return(true, nil),
			tx.EXPECT().UpdateAccountUser(gomock.Any(), completed).Return(&completed, nil),
		)
	})

	_, err = fx.flow.Finish(ctx)
	require.NoError(t, err)

	require.Equal(t, signal.RouteDashboard, fx.signals.lastRoute())
	require.Equal(t, session.StateProfileComplete, fx.sessions.State())
	require.JSONEq(t,
		`{"id":"`+alice.ID.String()+`","name":"Alice","email":"alice@example.com","profileCompleted":true}`,
		fx.record(t))

	// a restart reads the same completed session back
	restarted := session.New(fx.directory, fx.local, mocksession.NewMockSignals(fx.ctrl), session.Options{})
	require.NoError(t, restarted.Init(ctx))
	got, ok := restarted.Current()
	require.True(t, ok)
	require.Equal(t, completed, got)
}

func TestFlow_Finish_SessionSwitchedDuringCommit(t *testing.T) {
	fx := newLiveFixture(t, 500*time.Millisecond)
	ctx := context.Background()
	alice := domain.User{ID: domain.NewUserID(), Name: "Alice", Email: "alice@example.com"}
	bob := domain.User{ID: domain.NewUserID(), Name: "Bob", Email: "bob@example.com"}
	fx.login(t, alice)
	fx.fillProfile(t)

	// no WithTx expectation: nothing may be written for either user
	done := make(chan error, 1)
	go func() {
		_, err := fx.flow.Finish(ctx)
		done <- err
	}()
	require.Eventually(t, func() bool { return fx.flow.State(ctx).Submitting }, time.Second, time.Millisecond)

	require.NoError(t, fx.sessions.Logout(ctx))
	fx.login(t, bob)

	require.ErrorIs(t, <-done, serrors.ErrConflict)

	current, ok := fx.sessions.Current()
	require.True(t, ok)
	require.Equal(t, bob.ID, current.ID)
	require.False(t, current.ProfileCompleted)
	require.Contains(t, fx.record(t), `"profileCompleted":false`)
	require.Contains(t, fx.signals.notifications(), onboarding.MsgSaveFailed)

	// Bob starts from scratch
	require.Equal(t, onboarding.StepDescription, fx.flow.State(ctx).Step)
}

func TestFlow_Finish_HoldsSessionUntilCommitted(t *testing.T) {
	fx := newLiveFixture(t, 0)
	ctx := context.Background()
	alice := domain.User{ID: domain.NewUserID(), Name: "Alice", Email: "alice@example.com"}
	fx.login(t, alice)
	fx.fillProfile(t)

	loggedOut := make(chan error, 1)
	completed := alice
	completed.ProfileCompleted = true
	expectWithTx(t, fx.ctrl, fx.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreProfile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.BusinessProfile) (*domain.BusinessProfile, error) {
				go func() { loggedOut <- fx.sessions.Logout(ctx) }()

				select {
				case <-loggedOut:
					require.Fail(t, "logout ran in the middle of the commit")
				case <-time.After(50 * time.Millisecond):
				}

				return &p, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), nil).Return(true, nil)
		tx.EXPECT().UpdateAccountUser(gomock.Any(), completed).Return(&completed, nil)
	})

	_, err := fx.flow.Finish(ctx)
	require.NoError(t, err)
	require.NoError(t, <-loggedOut)
	require.Equal(t, session.StateUnauthenticated, fx.sessions.State())
}

func TestFlow_Finish_RecordWriteFailureLeavesAccountUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	alice := domain.User{ID: domain.NewUserID(), Name: "Alice", Email: "alice@example.com"}

	local := mocklocalstore.NewMockStore(ctrl)
	gomock.InOrder(
		local.EXPECT().GetItem(gomock.Any(), session.RecordKey).Return("", false, nil),
		local.EXPECT().SetItem(gomock.Any(), session.RecordKey, gomock.Any()).Return(nil),
		local.EXPECT().SetItem(gomock.Any(), session.RecordKey, gomock.Any()).Return(errors.New("disk full")),
	)
	dir := mocksession.NewMockDirectory(ctrl)
	dir.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(alice, nil)
	signals, log := recordSignals(ctrl)

	sessions := session.New(dir, local, signals, session.Options{})
	require.NoError(t, sessions.Init(ctx))
	_, err := sessions.Login(ctx, alice.Email, "pw")
	require.NoError(t, err)

	// no WithTx expectation: the account row is never touched
	st := mockstorage.NewMockStorage(ctrl)

	flow := onboarding.New(st, sessions, signals, onboarding.Options{StrictIndustryCodes: true})
	_, err = flow.SetDescription(ctx, "consulting")
	require.NoError(t, err)
	for range 3 {
		_, err = flow.Next(ctx)
		require.NoError(t, err)
	}

	_, err = flow.Finish(ctx)
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.Equal(t, session.StateProfileIncomplete, sessions.State())
	require.Equal(t, onboarding.StepRegion, flow.State(ctx).Step)
	require.Contains(t, log.notifications(), onboarding.MsgSaveFailed)
}

func TestFlow_Finish_LogsEachFieldOnce(t *testing.T) {
	fx := newLiveFixture(t, 0)
	alice := domain.User{ID: domain.NewUserID(), Name: "Alice", Email: "alice@example.com"}
	fx.login(t, alice)
	fx.fillProfile(t)

	completed := alice
	completed.ProfileCompleted = true
	expectWithTx(t, fx.ctrl, fx.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreProfile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.BusinessProfile) (*domain.BusinessProfile, error) { return &p, nil })
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), nil).Return(true, nil)
		tx.EXPECT().UpdateAccountUser(gomock.Any(), completed).Return(&completed, nil)
	})

	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	_, err := fx.flow.Finish(ctx)
	require.NoError(t, err)

	require.NotEmpty(t, logs.FilterMessage("profile completed").All())
	for _, entry := range logs.All() {
		seen := map[string]int{}
		for _, field := range entry.Context {
			seen[field.Key]++
		}
		require.LessOrEqual(t, seen["user_id"], 1, entry.Message)
		require.LessOrEqual(t, seen["op"], 1, entry.Message)
	}
}
