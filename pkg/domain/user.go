package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// NewUserID generates a random user identifier.
func NewUserID() UserID { return UserID(uuid.New()) }

// ParseUserID parses the canonical textual form of a user identifier.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, fmt.Errorf("could not parse user id: %w", err)
	}

	return UserID(id), nil
}

// String returns the canonical textual form of the identifier.
func (id UserID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the identifier is unset.
func (id UserID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText encodes the identifier as its canonical string.
func (id UserID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText decodes the identifier from its canonical string.
func (id *UserID) UnmarshalText(b []byte) error {
	parsed, err := ParseUserID(string(b))
	if err != nil {
		return err
	}
	*id = parsed

	return nil
}

// User is the session identity. It never carries secret material.
type User struct {
	// ID is assigned at signup and never changes.
	ID UserID `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Email is the contact and login address.
	Email string `json:"email"`
	// ProfileCompleted is false until the onboarding flow finishes. It decides
	// whether the user is routed to onboarding or to the dashboard.
	ProfileCompleted bool `json:"profileCompleted"`
}

// UserUpdate is a partial User. Nil fields are left untouched by Apply.
type UserUpdate struct {
	Name             *string
	Email            *string
	ProfileCompleted *bool
}

// Apply merges the non-nil fields of the update into a copy of u.
func (u User) Apply(update UserUpdate) User {
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.ProfileCompleted != nil {
		u.ProfileCompleted = *update.ProfileCompleted
	}

	return u
}

// Account is a directory record: a user plus the hash of their password.
type Account struct {
	User

	// PasswordHash is secret material and must never leave the directory.
	PasswordHash string `json:"-"`
}

// Sanitize returns the user without any secret material.
func (a Account) Sanitize() User { return a.User }
