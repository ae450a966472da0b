package email

import (
	"context"
	"fmt"
	"net/url"
	"passreset/internal/core/domain/user"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const passwordResetSubject = "Your Password Reset Link"

const passwordResetBodyTemplate = `Hello,

Click the link below to reset your password:
%s

If you didn't request this, you can safely ignore this email.

Thanks,
Your Website Team`

const charsetUTF8 = "UTF-8"

type EmailSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender               string
	passwordResetBaseUrl url.URL
	sendTimeout          time.Duration
}

func NewEmailSender(
	awsConfig aws.Config,
	sender string,
	passwordResetBaseUrl url.URL,
	sendTimeout time.Duration,
) *EmailSender {
	return &EmailSender{
		ses:                  ses.NewFromConfig(awsConfig),
		sender:               sender,
		passwordResetBaseUrl: passwordResetBaseUrl,
		sendTimeout:          sendTimeout,
	}
}

func (s *EmailSender) SendPasswordResetToken(
	ctx context.Context,
	u user.User,
	token user.PasswordResetToken,
) error {
	// A slow mail submission must not hang the whole request.
	ctx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	body := fmt.Sprintf(passwordResetBodyTemplate, s.passwordResetLink(token))
	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{string(u.Email)},
			},
			Message: &types.Message{
				Subject: &types.Content{
					Charset: aws.String(charsetUTF8),
					Data:    aws.String(passwordResetSubject),
				},
				Body: &types.Body{
					Text: &types.Content{
						Charset: aws.String(charsetUTF8),
						Data:    aws.String(body),
					},
				},
			},
		},
	)
	return err
}

func (s *EmailSender) passwordResetLink(token user.PasswordResetToken) string {
	linkUrl := s.passwordResetBaseUrl
	query := linkUrl.Query()
	query.Set("token", string(token))
	linkUrl.RawQuery = query.Encode()
	return linkUrl.String()
}
