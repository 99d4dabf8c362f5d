package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/errs"
)

type Config struct {
	Port                string   `env:"PORT" envDefault:"8080"`
	ReadTimeoutSeconds  int      `env:"READ_TIMEOUT_SECONDS" envDefault:"180"`
	WriteTimeoutSeconds int      `env:"WRITE_TIMEOUT_SECONDS" envDefault:"180"`
	IdleTimeoutSeconds  int      `env:"IDLE_TIMEOUT_SECONDS" envDefault:"180"`
	AcceptedOrigins     []string `env:"ACCEPTED_ORIGINS" envSeparator:","`
	LogLevel            string   `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty           bool     `env:"LOG_PRETTY" envDefault:"false"`
	SSMParameterPrefix  string   `env:"SSM_PARAMETER_PREFIX"`

	Database DatabaseConfig
	Mail     MailConfig
	Media    MediaConfig
	Admin    AdminConfig
}

type DatabaseConfig struct {
	Type                 string `env:"DB_TYPE" envDefault:"postgres"`
	DSN                  string `env:"DB_DSN"`
	Host                 string `env:"DB_HOST" envDefault:"localhost"`
	User                 string `env:"DB_USER"`
	Password             string `env:"DB_PASSWORD"`
	Name                 string `env:"DB_NAME"`
	Port                 string `env:"DB_PORT" envDefault:"5432"`
	SSLMode              string `env:"DB_SSLMODE" envDefault:"disable"`
	ReplicaDSN           string `env:"DB_REPLICA_DSN"`
	SlowThresholdSeconds int    `env:"DB_SLOW_THRESHOLD_SECONDS" envDefault:"10"`
}

// ConnString returns DB_DSN when set, otherwise a postgres keyword/value string
// built from the individual parts. The "supa" type always requires TLS.
func (c DatabaseConfig) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}
	sslMode := c.SSLMode
	if c.Type == "supa" {
		sslMode = "require"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, sslMode)
}

type MailConfig struct {
	Backend        string `env:"EMAIL_BACKEND" envDefault:"smtp"`
	Host           string `env:"EMAIL_HOST"`
	Port           int    `env:"EMAIL_PORT" envDefault:"587"`
	Username       string `env:"EMAIL_HOST_USER"`
	Password       string `env:"EMAIL_HOST_PASSWORD"`
	UseTLS         bool   `env:"EMAIL_USE_TLS" envDefault:"true"`
	UseSSL         bool   `env:"EMAIL_USE_SSL" envDefault:"false"`
	TimeoutSeconds int    `env:"EMAIL_TIMEOUT_SECONDS" envDefault:"10"`
	From           string `env:"DEFAULT_FROM_EMAIL"`
	NotifyAddress  string `env:"NOTIFY_EMAIL"`
	OwnerName      string `env:"SITE_OWNER_NAME"`
	ResendAPIKey   string `env:"RESEND_API_KEY"`
}

func (c MailConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type MediaConfig struct {
	Root        string `env:"MEDIA_ROOT" envDefault:"media"`
	URL         string `env:"MEDIA_URL" envDefault:"/media/"`
	S3Bucket    string `env:"MEDIA_S3_BUCKET"`
	S3Region    string `env:"MEDIA_S3_REGION"`
	S3PublicURL string `env:"MEDIA_S3_PUBLIC_URL"`
	MaxUploadMB int64  `env:"MEDIA_MAX_UPLOAD_MB" envDefault:"10"`
}

type AdminConfig struct {
	PasswordHash    string `env:"ADMIN_PASSWORD_HASH"`
	JWTSecret       string `env:"ADMIN_JWT_SECRET"`
	TokenTTLMinutes int    `env:"ADMIN_TOKEN_TTL_MINUTES" envDefault:"720"`
}

func (c AdminConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// Enabled reports whether operator login is configured.
func (c AdminConfig) Enabled() bool {
	return c.PasswordHash != "" && c.JWTSecret != ""
}

// Load reads .env (when present), overlays SSM parameters when
// SSM_PARAMETER_PREFIX is set and parses the environment into a Config.
func Load(ctx context.Context) (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Failed to load .env file, using existing environment variables")
	}

	if prefix := os.Getenv("SSM_PARAMETER_PREFIX"); prefix != "" {
		if err := loadSSMParameters(ctx, prefix); err != nil {
			return Config{}, errs.NewConfigError("SSM_PARAMETER_PREFIX", err)
		}
	}

	return Parse()
}

// Parse builds a Config from the current process environment.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errs.NewConfigError("environment", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Database.Type {
	case "postgres", "supa", "sqlite":
	default:
		return errs.NewConfigError("DB_TYPE", fmt.Errorf("unsupported database type %q", c.Database.Type))
	}
	switch c.Mail.Backend {
	case "smtp", "resend", "console":
	default:
		return errs.NewConfigError("EMAIL_BACKEND", fmt.Errorf("unsupported email backend %q", c.Mail.Backend))
	}
	if !strings.HasSuffix(c.Media.URL, "/") {
		return errs.NewConfigError("MEDIA_URL", fmt.Errorf("%q must end with a slash", c.Media.URL))
	}
	return nil
}

func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutSeconds) * time.Second
}
