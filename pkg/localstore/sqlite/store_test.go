package sqlite_test

import (
	"context"
	"govconnect/pkg/localstore/sqlite"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, path string) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStore_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, filepath.Join(t.TempDir(), "local.db"))

	_, ok, err := s.GetItem(ctx, "gov-connect-user")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.SetItem(ctx, "gov-connect-user", `{"id":"1"}`))
	v, ok, err := s.GetItem(ctx, "gov-connect-user")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"id":"1"}`, v)

	require.NoError(t, s.SetItem(ctx, "gov-connect-user", `{"id":"2"}`))
	v, _, err = s.GetItem(ctx, "gov-connect-user")
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"2"}`, v)

	require.NoError(t, s.RemoveItem(ctx, "gov-connect-user"))
	_, ok, err = s.GetItem(ctx, "gov-connect-user")
	require.NoError(t, err)
	require.False(t, ok)

	// removing twice is fine
	require.NoError(t, s.RemoveItem(ctx, "gov-connect-user"))
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "local.db")

	first, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.SetItem(ctx, "k", "v"))
	require.NoError(t, first.Close())

	second := openStore(t, path)
	v, ok, err := second.GetItem(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", v)
}

func TestStore_InMemory(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, ":memory:")

	require.NoError(t, s.SetItem(ctx, "k", "v"))
	v, ok, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", v)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := sqlite.Open(context.Background(), "  ")
	require.Error(t, err)
}
