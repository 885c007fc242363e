package v1handler_test

import (
	"context"
	"errors"
	"govconnect/internal/api/handler/v1handler"
	"govconnect/pkg/logger"
	"govconnect/pkg/serrors"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, nil)

	res := h.NewError(context.Background(), errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_InternalKindHidesMessage(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, nil)

	res := h.NewError(context.Background(), serrors.With(serrors.ErrInternal, "database password is wrong"))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_Kinds(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
		{serrors.With(serrors.ErrBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
		{serrors.With(serrors.ErrInvalidCredentials, "Invalid email or password"), http.StatusUnauthorized, "Invalid email or password"},
		{serrors.With(serrors.ErrEmailAlreadyRegistered, "Email already in use"), http.StatusConflict, "Email already in use"},
		{serrors.With(serrors.ErrStepIncomplete, "Select at least one industry code"), http.StatusUnprocessableEntity, "Select at least one industry code"},
		{serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "unauthorized"), http.StatusUnauthorized, "unauthorized"},
		{serrors.KindOnly(serrors.ErrConflict), http.StatusConflict, "conflict"},
	}
	for _, tt := range tests {
		t.Run(serrors.KindOf(tt.err).Error(), func(t *testing.T) {
			h := v1handler.New(v1handler.Deps{}, nil)

			res := h.NewError(context.Background(), tt.err)
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, serrors.KindOf(tt.err).Error(), res.Response.Code)
			require.Equal(t, tt.message, res.Response.Message)
		})
	}
}
