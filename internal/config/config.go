// Package config loads and validates application configuration from
// environment variables. A .env file in the working directory is loaded
// first when present, so local development does not need exported variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// LogLevel controls the minimum log level: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFormat selects the slog handler: "json" for production, "text" for
	// a colored tint handler during development.
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to the Vite dev server.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173"`

	// APIBaseURL is the public base URL of this API, used to build the
	// confirmation links embedded in emails.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`

	// WebBaseURL is the base URL of the web frontend, the target of the
	// confirmation redirects.
	WebBaseURL string `env:"WEB_BASE_URL" envDefault:"http://localhost:5173"`

	// AllowPastTrips permits creating trips that start before the current
	// time. Off by default; flip it for backfilling or testing.
	AllowPastTrips bool `env:"ALLOW_PAST_TRIPS" envDefault:"false"`

	// MailQueueSize is the capacity of the asynchronous mail dispatch queue.
	MailQueueSize int `env:"MAIL_QUEUE_SIZE" envDefault:"64"`

	// SMTP connection settings. Host may be empty, in which case outbound
	// email is logged and discarded (useful for local development).
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	// MailFromName and MailFromAddress form the sender identity.
	MailFromName    string `env:"MAIL_FROM_NAME" envDefault:"plann.er team"`
	MailFromAddress string `env:"MAIL_FROM_ADDRESS" envDefault:"hello@plann.er"`
}

// Load reads configuration from the environment (and an optional .env file)
// and returns a Config. Returns an error when a required variable is missing
// or a value cannot be parsed.
func Load() (Config, error) {
	// Missing .env is fine — production sets real environment variables.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}
