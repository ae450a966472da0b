package user

import (
	"fmt"
	c "passreset/internal/core/domain/common"
	e "passreset/internal/core/domain/errors"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

// User is keyed by its normalized email: there is at most one user per
// address. The password hash is opaque to everything except PasswordHasher.
type User struct {
	ID           ID
	Email        c.Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	return nil
}
