package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"govconnect/pkg/domain"
	"govconnect/pkg/storage"
	"govconnect/pkg/storage/postgres"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit_PersistsAccount(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = tx.StoreAccount(ctx, newAccount("commit@example.com"))
	require.NoError(t, err)

	// not visible outside the transaction yet
	got, err := pg.AccountByEmail(ctx, "commit@example.com")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, tx.Commit())

	got, err = pg.AccountByEmail(ctx, "commit@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreAccount(ctx, newAccount("kept@example.com"))

		return e
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		account := newAccount("dropped@example.com")
		if _, e := s.StoreAccount(ctx, account); e != nil {
			return e
		}
		if _, e := s.StoreProfile(ctx, domain.BusinessProfile{
			UserID:        account.ID,
			Description:   "IT services",
			IndustryCodes: []string{"541512"},
			ValueRange:    domain.DefaultValueRange,
			Region:        domain.RegionAllOfCanada,
		}); e != nil {
			return e
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	kept, err := pg.AccountByEmail(ctx, "kept@example.com")
	require.NoError(t, err)
	require.NotNil(t, kept)

	dropped, err := pg.AccountByEmail(ctx, "dropped@example.com")
	require.NoError(t, err)
	require.Nil(t, dropped)
}

func TestPgSQL_WithTx_PanicRollsBack(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.PanicsWithValue(t, "boom", func() {
		_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
			if _, err := s.StoreAccount(ctx, newAccount("panic@example.com")); err != nil {
				return err
			}
			panic("boom")
		})
	})

	got, err := pg.AccountByEmail(ctx, "panic@example.com")
	require.NoError(t, err)
	require.Nil(t, got)
}
