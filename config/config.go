package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds all environment-driven settings for the server.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	DBURL    string `envconfig:"DB_URL" required:"true"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	JWTSecret      string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiryHours int    `envconfig:"JWT_EXPIRY_HOURS" default:"24"`

	ReminderInterval time.Duration `envconfig:"REMINDER_INTERVAL" default:"10m"`

	TwilioAccountSID  string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber string `envconfig:"TWILIO_PHONE_NUMBER"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// Load reads .env if present and processes environment variables into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
