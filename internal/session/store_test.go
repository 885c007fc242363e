package session_test

import (
	"context"
	"errors"
	"govconnect/internal/directory"
	"govconnect/internal/session"
	mocksession "govconnect/internal/session/mock"
	"govconnect/internal/signal"
	"govconnect/pkg/domain"
	mocklocalstore "govconnect/pkg/localstore/mock"
	"govconnect/pkg/localstore/sqlite"
	"govconnect/pkg/logger"
	"govconnect/pkg/serrors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

type fixture struct {
	store     *session.Store
	local     *sqlite.Store
	directory *mocksession.MockDirectory
	signals   *mocksession.MockSignals
	path      string
}

func newFixture(t *testing.T, latency time.Duration) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	path := filepath.Join(t.TempDir(), "local.db")
	local, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })

	f := &fixture{
		local:     local,
		directory: mocksession.NewMockDirectory(ctrl),
		signals:   mocksession.NewMockSignals(ctrl),
		path:      path,
	}
	f.store = session.New(f.directory, local, f.signals, session.Options{Latency: latency})
	require.NoError(t, f.store.Init(context.Background()))

	return f
}

func (f *fixture) record(t *testing.T) (string, bool) {
	t.Helper()
	raw, ok, err := f.local.GetItem(context.Background(), session.RecordKey)
	require.NoError(t, err)

	return raw, ok
}

// loginAs puts the fixture into an authenticated session without asserting signals.
func (f *fixture) loginAs(t *testing.T, user domain.User) {
	t.Helper()
	f.directory.EXPECT().Authenticate(gomock.Any(), user.Email, "pw").Return(user, nil)
	f.signals.EXPECT().Navigate(gomock.Any(), gomock.Any())
	f.signals.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any())

	_, err := f.store.Login(context.Background(), user.Email, "pw")
	require.NoError(t, err)
}

func sarah() domain.User {
	return domain.User{ID: domain.NewUserID(), Name: "Sarah", Email: "sarah@example.com", ProfileCompleted: true}
}

func TestInit_Unauthenticated(t *testing.T) {
	f := newFixture(t, 0)

	_, ok := f.store.Current()
	require.False(t, ok)
	require.Equal(t, session.StateUnauthenticated, f.store.State())
	require.Equal(t, signal.RouteLogin, f.store.Snapshot().Route)
}

func TestInit_RestoresAcrossRestart(t *testing.T) {
	f := newFixture(t, 0)
	user := sarah()
	f.loginAs(t, user)
	require.NoError(t, f.local.Close())

	local, err := sqlite.Open(context.Background(), f.path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })

	ctrl := gomock.NewController(t)
	restarted := session.New(mocksession.NewMockDirectory(ctrl), local, mocksession.NewMockSignals(ctrl), session.Options{})
	require.NoError(t, restarted.Init(context.Background()))

	got, ok := restarted.Current()
	require.True(t, ok)
	require.Equal(t, user, got)
	require.Equal(t, session.StateProfileComplete, restarted.State())
}

func TestInit_MalformedRecordIsDiscarded(t *testing.T) {
	for name, raw := range map[string]string{
		"bad json":   "{oops",
		"missing id": `{"name":"Sarah","email":"sarah@example.com","profileCompleted":true}`,
	} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			local, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "local.db"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = local.Close() })
			require.NoError(t, local.SetItem(ctx, session.RecordKey, raw))

			ctrl := gomock.NewController(t)
			store := session.New(mocksession.NewMockDirectory(ctrl), local, mocksession.NewMockSignals(ctrl), session.Options{})
			require.NoError(t, store.Init(ctx))

			require.Equal(t, session.StateUnauthenticated, store.State())
			_, ok, err := local.GetItem(ctx, session.RecordKey)
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestInit_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mocklocalstore.NewMockStore(ctrl)
	local.EXPECT().GetItem(gomock.Any(), session.RecordKey).Return("", false, errors.New("disk gone"))

	store := session.New(mocksession.NewMockDirectory(ctrl), local, mocksession.NewMockSignals(ctrl), session.Options{})
	require.ErrorIs(t, store.Init(context.Background()), serrors.ErrInternal)
}

func TestLogin_CompletedProfileGoesToDashboard(t *testing.T) {
	f := newFixture(t, 0)
	user := sarah()

	f.directory.EXPECT().Authenticate(gomock.Any(), "sarah@example.com", "password123").Return(user, nil)
	gomock.InOrder(
		f.signals.EXPECT().Navigate(gomock.Any(), signal.RouteDashboard),
		f.signals.EXPECT().Notify(gomock.Any(), signal.LevelSuccess, "Welcome back!"),
	)

	got, err := f.store.Login(context.Background(), "sarah@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, user, got)

	current, ok := f.store.Current()
	require.True(t, ok)
	require.Equal(t, user, current)

	raw, ok := f.record(t)
	require.True(t, ok)
	require.NotContains(t, raw, "password")
	require.Contains(t, raw, user.ID.String())
}

func TestLogin_IncompleteProfileGoesToOnboarding(t *testing.T) {
	f := newFixture(t, 0)
	user := sarah()
	user.ProfileCompleted = false

	f.directory.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(user, nil)
	f.signals.EXPECT().Navigate(gomock.Any(), signal.RouteOnboardingStart)
	f.signals.EXPECT().Notify(gomock.Any(), signal.LevelSuccess, session.MsgWelcomeBack)

	_, err := f.store.Login(context.Background(), user.Email, "pw")
	require.NoError(t, err)
	require.Equal(t, session.StateProfileIncomplete, f.store.State())
}

func TestLogin_InvalidCredentialsLeavesSessionUntouched(t *testing.T) {
	f := newFixture(t, 0)

	f.directory.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.User{}, serrors.With(serrors.ErrInvalidCredentials, directory.MsgInvalidCredentials))
	f.signals.EXPECT().Notify(gomock.Any(), signal.LevelError, "Login failed: Invalid email or password")

	_, err := f.store.Login(context.Background(), "sarah@example.com", "wrong")
	require.ErrorIs(t, err, serrors.ErrInvalidCredentials)
	require.Equal(t, session.StateUnauthenticated, f.store.State())
	require.False(t, f.store.Loading())
	_, ok := f.record(t)
	require.False(t, ok)
}

func TestLogin_FailureKeepsPreviousSession(t *testing.T) {
	f := newFixture(t, 0)
	user := sarah()
	f.loginAs(t, user)

	f.directory.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.User{}, serrors.With(serrors.ErrInvalidCredentials, directory.MsgInvalidCredentials))
	f.signals.EXPECT().Notify(gomock.Any(), signal.LevelError, gomock.Any())

	_, err := f.store.Login(context.Background(), "other@example.com", "wrong")
	require.Error(t, err)

	current, ok := f.store.Current()
	require.True(t, ok)
	require.Equal(t, user, current)
}

func TestLogin_InternalErrorShowsGenericMessage(t *testing.T) {
	f := newFixture(t, 0)

	f.directory.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.User{}, serrors.Wrap(serrors.ErrInternal, errors.New("db down"), "could not look up account"))
	f.signals.EXPECT().Notify(gomock.Any(), signal.LevelError, "Login failed: Something went wrong")

	_, err := f.store.Login(context.Background(), "sarah@example.com", "pw")
	require.ErrorIs(t, err, serrors.ErrInternal)
}

func TestLogin_RunsToCompletionDespiteCancellation(t *testing.T) {
	f := newFixture(t, 20*time.Millisecond)
	user := sarah()

	f.directory.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string) (domain.User, error) {
			require.NoError(t, ctx.Err())

			return user, nil
		})
	f.signals.EXPECT().Navigate(gomock.Any(), signal.RouteDashboard)
	f.signals.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.store.Login(ctx, user.Email, "pw")
	require.NoError(t, err)
	require.Equal(t, session.StateProfileComplete, f.store.State())
}

func TestLogin_LoadingAndReadsDuringLatency(t *testing.T) {
	f := newFixture(t, 200*time.Millisecond)
	user := sarah()

	f.directory.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(user, nil)
	f.signals.EXPECT().Navigate(gomock.Any(), gomock.Any())
	f.signals.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = f.store.Login(context.Background(), user.Email, "pw")
	}()

	require.Eventually(t, f.store.Loading, time.Second, 5*time.Millisecond)
	// a read issued mid-login sees the state before it
	snap := f.store.Snapshot()
	require.True(t, snap.Loading)
	require.Nil(t, snap.User)
	require.Equal(t, session.StateUnauthenticated, snap.State)

	<-done
	require.False(t, f.store.Loading())
	require.Equal(t, session.StateProfileComplete, f.store.State())
}

func TestSignup(t *testing.T) {
	f := newFixture(t, 0)
	user := domain.User{ID: domain.NewUserID(), Name: "Alice", Email: "alice@example.com"}

	f.directory.EXPECT().Register(gomock.Any(), "Alice", "alice@example.com", "pw").Return(user, nil)
	gomock.InOrder(
		f.signals.EXPECT().Navigate(gomock.Any(), signal.RouteOnboardingStart),
		f.signals.EXPECT().Notify(gomock.Any(), signal.LevelSuccess, "Account created successfully!"),
	)

	got, err := f.store.Signup(context.Background(), "Alice", "alice@example.com", "pw")
	require.NoError(t, err)
	require.False(t, got.ProfileCompleted)
	require.Equal(t, session.StateProfileIncomplete, f.store.State())

	raw, ok := f.record(t)
	require.True(t, ok)
	require.Contains(t, raw, `"profileCompleted":false`)
}

func TestSignup_EmailAlreadyRegistered(t *testing.T) {
	f := newFixture(t, 0)

	f.directory.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.User{}, serrors.With(serrors.ErrEmailAlreadyRegistered, directory.MsgEmailInUse))
	f.signals.EXPECT().Notify(gomock.Any(), signal.LevelError, "Signup failed: Email already in use")

	_, err := f.store.Signup(context.Background(), "Sarah", "sarah@example.com", "pw")
	require.ErrorIs(t, err, serrors.ErrEmailAlreadyRegistered)
	require.Equal(t, session.StateUnauthenticated, f.store.State())
}

func TestLogout(t *testing.T) {
	f := newFixture(t, 0)
	f.loginAs(t, sarah())

	gomock.InOrder(
		f.signals.EXPECT().Navigate(gomock.Any(), signal.RouteLogin),
		f.signals.EXPECT().Notify(gomock.Any(), signal.LevelSuccess, "Logged out successfully"),
	)

	require.NoError(t, f.store.Logout(context.Background()))
	require.Equal(t, session.StateUnauthenticated, f.store.State())
	_, ok := f.record(t)
	require.False(t, ok)
}

func TestLogout_WithoutSessionIsSilent(t *testing.T) {
	f := newFixture(t, 0)

	// no signal expectations: any signal fails the test
	require.NoError(t, f.store.Logout(context.Background()))
	require.NoError(t, f.store.Logout(context.Background()))
}

func TestUpdateUser_WithoutSession(t *testing.T) {
	f := newFixture(t, 0)
	done := true

	got, err := f.store.UpdateUser(context.Background(), domain.UserUpdate{ProfileCompleted: &done})
	require.NoError(t, err)
	require.Nil(t, got)
	_, ok := f.record(t)
	require.False(t, ok)
}

func TestUpdateUser_MergesAndPersists(t *testing.T) {
	f := newFixture(t, 0)
	user := sarah()
	user.ProfileCompleted = false
	f.loginAs(t, user)

	done := true
	f.directory.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u domain.User) (domain.User, error) {
			require.True(t, u.ProfileCompleted)
			require.Equal(t, user.Name, u.Name)

			return u, nil
		})

	got, err := f.store.UpdateUser(context.Background(), domain.UserUpdate{ProfileCompleted: &done})
	require.NoError(t, err)
	require.True(t, got.ProfileCompleted)
	require.Equal(t, user.Email, got.Email)
	require.Equal(t, session.StateProfileComplete, f.store.State())

	raw, ok := f.record(t)
	require.True(t, ok)
	require.Contains(t, raw, `"profileCompleted":true`)
}

func TestUpdateUser_DirectoryFailureLeavesSession(t *testing.T) {
	f := newFixture(t, 0)
	user := sarah()
	f.loginAs(t, user)

	email := "taken@example.com"
	f.directory.EXPECT().Update(gomock.Any(), gomock.Any()).
		Return(domain.User{}, serrors.With(serrors.ErrEmailAlreadyRegistered, directory.MsgEmailInUse))

	_, err := f.store.UpdateUser(context.Background(), domain.UserUpdate{Email: &email})
	require.ErrorIs(t, err, serrors.ErrEmailAlreadyRegistered)

	current, _ := f.store.Current()
	require.Equal(t, user.Email, current.Email)
}

func TestUpdateUser_ConcurrentUpdatesAreSerialized(t *testing.T) {
	f := newFixture(t, 0)
	user := sarah()
	f.loginAs(t, user)

	f.directory.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u domain.User) (domain.User, error) { return u, nil }).
		Times(20)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := strings.Repeat("n", i+1)
			_, err := f.store.UpdateUser(context.Background(), domain.UserUpdate{Name: &name})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	current, _ := f.store.Current()
	raw, _ := f.record(t)
	// memory and the durable record agree on whichever update ran last
	require.Contains(t, raw, `"name":"`+current.Name+`"`)
}

func TestCompleteProfile(t *testing.T) {
	f := newFixture(t, 0)
	user := sarah()
	user.ProfileCompleted = false
	f.loginAs(t, user)

	got, err := f.store.CompleteProfile(context.Background(), user.ID,
		func(_ context.Context, completed domain.User) error {
			require.True(t, completed.ProfileCompleted)
			require.Equal(t, user.ID, completed.ID)
			// the durable record is written before the commit
			raw, ok := f.record(t)
			require.True(t, ok)
			require.Contains(t, raw, `"profileCompleted":true`)
			// memory follows only once the commit succeeded
			require.Equal(t, session.StateProfileIncomplete, f.store.State())

			return nil
		})
	require.NoError(t, err)
	require.True(t, got.ProfileCompleted)
	require.Equal(t, session.StateProfileComplete, f.store.State())
}

func TestCompleteProfile_OtherSessionUser(t *testing.T) {
	f := newFixture(t, 0)
	bob := domain.User{ID: domain.NewUserID(), Name: "Bob", Email: "bob@example.com"}
	f.loginAs(t, bob)

	_, err := f.store.CompleteProfile(context.Background(), domain.NewUserID(),
		func(context.Context, domain.User) error {
			require.Fail(t, "commit must not run for another user")

			return nil
		})
	require.ErrorIs(t, err, serrors.ErrConflict)

	current, _ := f.store.Current()
	require.False(t, current.ProfileCompleted)
	raw, _ := f.record(t)
	require.Contains(t, raw, `"profileCompleted":false`)
}

func TestCompleteProfile_WithoutSession(t *testing.T) {
	f := newFixture(t, 0)

	_, err := f.store.CompleteProfile(context.Background(), domain.NewUserID(),
		func(context.Context, domain.User) error {
			require.Fail(t, "commit must not run without a session")

			return nil
		})
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestCompleteProfile_CommitFailureRestoresRecord(t *testing.T) {
	f := newFixture(t, 0)
	user := sarah()
	user.ProfileCompleted = false
	f.loginAs(t, user)

	boom := errors.New("tx aborted")
	_, err := f.store.CompleteProfile(context.Background(), user.ID,
		func(context.Context, domain.User) error { return boom })
	require.ErrorIs(t, err, boom)

	require.Equal(t, session.StateProfileIncomplete, f.store.State())
	raw, ok := f.record(t)
	require.True(t, ok)
	require.Contains(t, raw, `"profileCompleted":false`)
}

func TestCompleteProfile_RecordFailureSkipsCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mocklocalstore.NewMockStore(ctrl)
	dir := mocksession.NewMockDirectory(ctrl)
	signals := mocksession.NewMockSignals(ctrl)
	user := sarah()
	user.ProfileCompleted = false

	gomock.InOrder(
		local.EXPECT().GetItem(gomock.Any(), session.RecordKey).Return("", false, nil),
		local.EXPECT().SetItem(gomock.Any(), session.RecordKey, gomock.Any()).Return(nil),
		local.EXPECT().SetItem(gomock.Any(), session.RecordKey, gomock.Any()).Return(errors.New("disk full")),
	)
	dir.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(user, nil)
	signals.EXPECT().Navigate(gomock.Any(), gomock.Any())
	signals.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any())

	store := session.New(dir, local, signals, session.Options{})
	require.NoError(t, store.Init(context.Background()))
	_, err := store.Login(context.Background(), user.Email, "pw")
	require.NoError(t, err)

	_, err = store.CompleteProfile(context.Background(), user.ID,
		func(context.Context, domain.User) error {
			require.Fail(t, "commit must not run when the record cannot be written")

			return nil
		})
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.Equal(t, session.StateProfileIncomplete, store.State())
}
