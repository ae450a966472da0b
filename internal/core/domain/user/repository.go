package user

import (
	"context"
	c "passreset/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

// UserRepository persists user credentials. GetByEmail expects the address to
// be normalized already; a miss is reported as ErrUserDoesNotExist, which
// callers branch on rather than treat as fatal.
type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
}
