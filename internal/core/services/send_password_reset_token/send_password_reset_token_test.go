package sendpasswordresettoken

import (
	"context"
	c "passreset/internal/core/domain/common"
	"passreset/internal/core/domain/logging"
	"passreset/internal/core/domain/user"
	"passreset/internal/core/services"
	passwordresetter "passreset/internal/implementations/password_resetter"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	EMAIL         = "test@example.com"
	PASSWORD_HASH = "test-password-hash"
	TOKEN         = "test-password-reset-token"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type suite struct {
	log      *logging.FakeLogger
	userRepo *user.FakeUserRepository
	resetter user.PasswordResetter
	sender   *user.FakePasswordResetTokenSender
}

func setupSuite() *suite {
	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{
		{ID: user.ID(1), Email: c.Email(EMAIL), PasswordHash: user.PasswordHash(PASSWORD_HASH), CreatedAt: NOW},
	}
	return &suite{
		log:      logging.NewFakeLogger(),
		userRepo: userRepo,
		resetter: user.NewFakePasswordResetter(TOKEN, c.Email(EMAIL), nil),
		sender:   user.NewFakePasswordResetTokenSender(),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo, s.resetter, s.sender)
}

func TestTokenSentToKnownEmail(t *testing.T) {
	suite := setupSuite()
	service := suite.createService()

	result, err := service.Run(context.Background(), Input{Email: c.Email(EMAIL)})

	require.NoError(t, err)
	require.Equal(t, user.PasswordResetToken(TOKEN), result.Token)
	require.Equal(t, 1, suite.sender.SentCount())
	require.Equal(t, c.Email(EMAIL), suite.sender.LastSentTo().Email)
	require.Equal(t, user.PasswordResetToken(TOKEN), suite.sender.LastSentToken())
}

func TestUnknownEmailDoesNotSend(t *testing.T) {
	suite := setupSuite()
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{Email: c.Email("unknown@example.com")})

	require.ErrorIs(t, err, user.ErrUserDoesNotExist)
	require.Equal(t, 0, suite.sender.SentCount())
}

func TestSenderFailure(t *testing.T) {
	suite := setupSuite()
	suite.sender.ReturnError = true
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{Email: c.Email(EMAIL)})

	require.ErrorIs(t, err, user.ErrPasswordResetTokenNotSent)
}

func TestRepositoryFailure(t *testing.T) {
	suite := setupSuite()
	suite.userRepo.ReturnError = true
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{Email: c.Email(EMAIL)})

	require.Error(t, err)
	require.NotErrorIs(t, err, user.ErrUserDoesNotExist)
	require.Equal(t, 0, suite.sender.SentCount())
}

func TestSentTokenVerifiesToBoundEmail(t *testing.T) {
	suite := setupSuite()
	suite.resetter = passwordresetter.NewJWT(
		"test-secret-key",
		time.Hour,
		func() time.Time { return NOW },
	)
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{Email: c.Email(EMAIL)})

	require.NoError(t, err)
	require.Equal(t, 1, suite.sender.SentCount())
	email, err := suite.resetter.VerifyToken(suite.sender.LastSentToken())
	require.NoError(t, err)
	require.Equal(t, c.Email(EMAIL), email)
}
