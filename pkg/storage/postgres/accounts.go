package postgres

import (
	"context"
	"fmt"
	"govconnect/pkg/domain"
	"govconnect/pkg/storage"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	accountsTable = "accounts"
)

// StoreAccount inserts a new directory account. The unique index on
// LOWER(email) turns a second registration of the same address into
// storage.ErrDuplicate.
func (p *PgSQL) StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	var row PgAccount
	row.FromDomain(account)

	var result PgAccount
	if _, err := p.Builder.Insert(accountsTable).
		Rows(row).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store account into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) AccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.From(accountsTable).
		Where(goqu.Func("LOWER", goqu.I("email")).Eq(strings.ToLower(email))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get account by email from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateAccountUser overwrites name, email and the profile completion flag.
// The password hash is left untouched.
func (p *PgSQL) UpdateAccountUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgAccount
	found, err := p.Builder.Update(accountsTable).
		Set(goqu.Record{
			"name":              user.Name,
			"email":             user.Email,
			"profile_completed": user.ProfileCompleted,
			"updated_at":        goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(user.ID))).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not update account in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	u := row.ToDomain().Sanitize()

	return &u, nil
}
