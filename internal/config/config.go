// Package config assembles the run configuration: email credentials from the
// process environment (optionally seeded from a .env file) and scrape
// settings from built-in defaults, optionally overridden by a YAML file.
//
// Credentials are read exactly once at startup. Missing credentials are not
// an error; the mailer turns an incomplete Email config into a logged no-op.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/estatewatch/estate-digest/internal/logger"
)

// Environment variable names for email credentials.
const (
	EnvSender    = "GMAIL_USER"
	EnvPassword  = "GMAIL_APP_PASSWORD"
	EnvRecipient = "RECIPIENT_EMAIL"
)

// Config holds everything a single digest run needs.
type Config struct {
	Email  Email  `yaml:"email"`
	Scrape Scrape `yaml:"scrape"`
}

// Email holds SMTP relay settings. Sender, Password, and Recipient come from
// the environment only; host and port may be overridden in the YAML file.
type Email struct {
	Sender    string `yaml:"-"`
	Password  string `yaml:"-"`
	Recipient string `yaml:"-"`
	SMTPHost  string `yaml:"smtp_host"`
	SMTPPort  int    `yaml:"smtp_port"`
}

// Complete reports whether all three credentials are present.
func (e Email) Complete() bool {
	return e.Sender != "" && e.Password != "" && e.Recipient != ""
}

// Scrape holds the target-site settings for the fetch and extract passes.
type Scrape struct {
	URL         string `yaml:"url"`
	BaseURL     string `yaml:"base_url"`
	Region      string `yaml:"region"`
	City        string `yaml:"city"`
	MaxListings int    `yaml:"max_listings"`
	Timezone    string `yaml:"timezone"`
}

// Default returns the built-in configuration targeting Austin, TX.
func Default() Config {
	return Config{
		Email: Email{
			SMTPHost: "smtp.gmail.com",
			SMTPPort: 587,
		},
		Scrape: Scrape{
			URL:         "https://www.estatesales.net/TX/Austin",
			BaseURL:     "https://www.estatesales.net",
			Region:      "TX",
			City:        "Austin",
			MaxListings: 25,
			Timezone:    "America/Chicago",
		},
	}
}

// Load builds the run configuration: defaults, then the YAML file at path
// (if given), then credentials from the environment. A .env file in the
// working directory seeds the environment when present.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using process environment", nil)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.Email.Sender = os.Getenv(EnvSender)
	cfg.Email.Password = os.Getenv(EnvPassword)
	cfg.Email.Recipient = os.Getenv(EnvRecipient)

	return cfg, nil
}
