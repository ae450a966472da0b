package config

import (
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config is loaded once at process start and handed to the components that
// need it; nothing reads the environment after startup. Mail settings are
// optional so that a missing mailbox setup breaks sending, not token minting.
type Config struct {
	IsTestMode     bool     `env:"TEST_MODE" envDefault:"false"`
	Port           int      `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*"`

	Secret        string `env:"SECRET,required"`
	PostgresqlURL string `env:"POSTGRESQL_URL,required"`

	BcryptHasherCost           int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	PasswordResetValidDuration time.Duration `env:"PASSWORD_RESET_VALID_DURATION" envDefault:"1h"`
	PasswordResetBaseURL       url.URL       `env:"PASSWORD_RESET_BASE_URL" envDefault:"https://your-website.com/reset-password.html"`

	AwsRegion        string        `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey     string        `env:"AWS_ACCESS_KEY"`
	AwsSecretKey     string        `env:"AWS_SECRET_KEY"`
	AwsEmailSender   string        `env:"AWS_EMAIL_SENDER"`
	EmailSendTimeout time.Duration `env:"EMAIL_SEND_TIMEOUT" envDefault:"10s"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
