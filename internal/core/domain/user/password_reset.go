package user

import (
	"context"
	c "passreset/internal/core/domain/common"
)

type PasswordResetToken string

// PasswordResetter mints and verifies signed tokens binding an email address.
// Tokens are self-describing: no server-side state backs them, so a token
// remains verifiable until its embedded expiry even after a successful reset.
type PasswordResetter interface {
	GenerateToken(email c.Email) (PasswordResetToken, error)
	// VerifyToken returns the bound email. A token whose signature checks out
	// but whose expiry has elapsed yields ErrPasswordResetTokenExpired; a
	// malformed or forged token yields ErrPasswordResetTokenInvalid.
	VerifyToken(token PasswordResetToken) (c.Email, error)
}

type PasswordResetTokenSender interface {
	SendPasswordResetToken(ctx context.Context, user User, token PasswordResetToken) error
}
