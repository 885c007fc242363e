package serrors_test

import (
	"errors"
	"fmt"
	"govconnect/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrInvalidCredentials,
		serrors.ErrEmailAlreadyRegistered,
		serrors.ErrStepIncomplete,
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("disk full")

	e1 := serrors.With(serrors.ErrInvalidCredentials, "Invalid email or password")
	require.Equal(t, "Invalid email or password", e1.Error())

	e2 := serrors.Wrap(serrors.ErrInternal, base, "could not persist session")
	require.Equal(t, "could not persist session: disk full", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrStepIncomplete)
	require.Equal(t, "STEP_INCOMPLETE", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrEmailAlreadyRegistered, base, "Email already in use")

	require.ErrorIs(t, e, serrors.ErrEmailAlreadyRegistered)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrInvalidCredentials)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no session")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no session", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("login: %w", serrors.With(serrors.ErrInvalidCredentials, "Invalid email or password"))
	require.Equal(t, serrors.ErrInvalidCredentials, serrors.KindOf(wrapped))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(serrors.ErrConflict))
}

func TestMessageOf(t *testing.T) {
	wrapped := fmt.Errorf("signup: %w", serrors.With(serrors.ErrEmailAlreadyRegistered, "Email already in use"))
	require.Equal(t, "Email already in use", serrors.MessageOf(wrapped, "fallback"))
	require.Equal(t, "fallback", serrors.MessageOf(errors.New("plain"), "fallback"))
	require.Equal(t, "fallback", serrors.MessageOf(serrors.KindOnly(serrors.ErrNotFound), "fallback"))
}
