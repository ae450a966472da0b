package passwordresetter

import (
	"errors"
	c "passreset/internal/core/domain/common"
	"passreset/internal/core/domain/user"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWT mints HS256-signed tokens carrying the bound email as the subject and
// the expiry window as registered iat/exp claims. The signing key is
// process-wide configuration and is never rotated mid-process. Tokens are not
// single-use: there is no token table, so a minted token verifies until exp.
type JWT struct {
	secretKey     []byte
	validDuration time.Duration
	now           func() time.Time
}

func NewJWT(secretKey string, validDuration time.Duration, now func() time.Time) *JWT {
	return &JWT{
		secretKey:     []byte(secretKey),
		validDuration: validDuration,
		now:           now,
	}
}

func (r *JWT) GenerateToken(email c.Email) (user.PasswordResetToken, error) {
	now := r.now()
	claims := jwt.RegisteredClaims{
		Subject:   string(email),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(r.validDuration)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.secretKey)
	if err != nil {
		return user.PasswordResetToken(""), err
	}
	return user.PasswordResetToken(token), nil
}

func (r *JWT) VerifyToken(token user.PasswordResetToken) (email c.Email, err error) {
	parsed, err := jwt.ParseWithClaims(
		string(token),
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) { return r.secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(r.now),
	)
	// The signature is checked before claims, so ErrTokenExpired means the
	// token is genuine, just stale. Everything else is indistinguishable from
	// a forgery.
	if errors.Is(err, jwt.ErrTokenExpired) {
		return email, user.ErrPasswordResetTokenExpired
	}
	if err != nil || !parsed.Valid {
		return email, user.ErrPasswordResetTokenInvalid
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return email, user.ErrPasswordResetTokenInvalid
	}
	return c.Email(claims.Subject), nil
}
