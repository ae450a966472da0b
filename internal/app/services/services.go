package services

import (
	"passreset/internal/app/deps"
	"passreset/internal/core/services"
	resetpassword "passreset/internal/core/services/reset_password"
	sendpasswordresettoken "passreset/internal/core/services/send_password_reset_token"
)

type Services struct {
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SendPasswordResetToken = sendpasswordresettoken.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordResetter,
		deps.PasswordResetTokenSender,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordResetter,
		deps.PasswordHasher,
	)

	return s
}
