package sendpasswordresettoken

import (
	"context"
	"errors"
	c "passreset/internal/core/domain/common"
	e "passreset/internal/core/domain/errors"
	"passreset/internal/core/domain/logging"
	"passreset/internal/core/domain/user"
	"passreset/internal/core/services"
)

type Input struct {
	Email c.Email
}

type Result struct {
	Token user.PasswordResetToken
}

type service struct {
	log                      logging.Logger
	userRepository           user.UserRepository
	passwordResetter         user.PasswordResetter
	passwordResetTokenSender user.PasswordResetTokenSender
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordResetter user.PasswordResetter,
	passwordResetTokenSender user.PasswordResetTokenSender,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordResetter == nil {
		panic(e.NewNilArgumentError("passwordResetter"))
	}
	if passwordResetTokenSender == nil {
		panic(e.NewNilArgumentError("passwordResetTokenSender"))
	}
	return &service{
		log:                      log,
		userRepository:           userRepository,
		passwordResetter:         passwordResetter,
		passwordResetTokenSender: passwordResetTokenSender,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found for password reset.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	token, err := s.passwordResetter.GenerateToken(u.Email)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not generate password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = s.passwordResetTokenSender.SendPasswordResetToken(ctx, u, token)
	if err != nil {
		// Transport details stay in the logs, the caller only learns that
		// sending failed.
		s.log.Error(
			ctx,
			"Could not send password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, user.ErrPasswordResetTokenNotSent
	}

	s.log.Info(
		ctx,
		"Password reset token has been sent.",
		logging.Entry("userID", u.ID),
	)
	result.Token = token
	return result, nil
}
