// Package directory is the account directory backing login and signup. It
// owns password hashing; nothing outside it ever sees a hash.
package directory

import (
	"context"
	"errors"
	"govconnect/pkg/domain"
	"govconnect/pkg/logger"
	"govconnect/pkg/serrors"
	"govconnect/pkg/storage"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// User-visible failure messages.
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmailInUse         = "Email already in use"
)

// Directory authenticates and registers accounts.
type Directory struct {
	accounts storage.AccountStorage
	cost     int
}

// New returns a Directory storing accounts in accounts. A zero cost selects
// bcrypt.DefaultCost.
func New(accounts storage.AccountStorage, cost int) *Directory {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &Directory{accounts: accounts, cost: cost}
}

// NormalizeEmail is the form emails are stored and compared in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Authenticate returns the sanitized user owning email when password matches.
// Unknown emails and wrong passwords fail identically.
func (d *Directory) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	account, err := d.accounts.AccountByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return domain.User{}, serrors.Wrap(serrors.ErrInternal, err, "could not look up account")
	}
	if account == nil {
		return domain.User{}, serrors.With(serrors.ErrInvalidCredentials, MsgInvalidCredentials)
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.User{}, serrors.With(serrors.ErrInvalidCredentials, MsgInvalidCredentials)
	}
	if err != nil {
		return domain.User{}, serrors.Wrap(serrors.ErrInternal, err, "could not verify password")
	}

	return account.Sanitize(), nil
}

// Register creates an account with a fresh id and profileCompleted unset.
func (d *Directory) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), d.cost)
	if err != nil {
		return domain.User{}, serrors.Wrap(serrors.ErrBadRequest, err, "could not hash password")
	}

	account, err := d.accounts.StoreAccount(ctx, domain.Account{
		User: domain.User{
			ID:    domain.NewUserID(),
			Name:  strings.TrimSpace(name),
			Email: NormalizeEmail(email),
		},
		PasswordHash: string(hash),
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return domain.User{}, serrors.With(serrors.ErrEmailAlreadyRegistered, MsgEmailInUse)
	}
	if err != nil {
		return domain.User{}, serrors.Wrap(serrors.ErrInternal, err, "could not store account")
	}

	logger.Info(ctx, "account registered", logger.UserID(account.ID.String()))

	return account.Sanitize(), nil
}

// Update writes the public fields of user back to its account.
func (d *Directory) Update(ctx context.Context, user domain.User) (domain.User, error) {
	user.Email = NormalizeEmail(user.Email)

	updated, err := d.accounts.UpdateAccountUser(ctx, user)
	if errors.Is(err, storage.ErrDuplicate) {
		return domain.User{}, serrors.With(serrors.ErrEmailAlreadyRegistered, MsgEmailInUse)
	}
	if err != nil {
		return domain.User{}, serrors.Wrap(serrors.ErrInternal, err, "could not update account")
	}
	if updated == nil {
		logger.Warn(ctx, "account to update does not exist", zap.String("user_id", user.ID.String()))

		return domain.User{}, serrors.KindOnly(serrors.ErrNotFound)
	}

	return *updated, nil
}
