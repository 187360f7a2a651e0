package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Everything comes from the environment,
// optionally seeded from a .env file.
type Config struct {
	Port     string
	LogLevel string

	// MailCode is the DrebeDengi import code sent in the forwarding mail.
	MailCode string
	// UserEmail is the account owner: approved sender, alert recipient and
	// the From address for outbound mail.
	UserEmail string
	// BankEmail is the notification robot's sender address.
	BankEmail string
	// ForwardEmail is the DrebeDengi robot that receives the parsed lines.
	ForwardEmail string

	MailgunDomain string
	MailgunAPIKey string
}

const defaultForwardEmail = "parser@x-pro.ru"

// Load reads configuration from the environment. A missing .env file is not
// an error; explicit environment variables always win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		MailCode:      os.Getenv("DD_MAIL_CODE"),
		UserEmail:     strings.ToLower(os.Getenv("DD_USER_EMAIL")),
		BankEmail:     strings.ToLower(os.Getenv("BANK_EMAIL")),
		ForwardEmail:  getEnv("DD_FORWARD_EMAIL", defaultForwardEmail),
		MailgunDomain: os.Getenv("MAILGUN_DOMAIN"),
		MailgunAPIKey: os.Getenv("MAILGUN_API_KEY"),
	}

	if cfg.UserEmail == "" {
		return nil, fmt.Errorf("DD_USER_EMAIL is required")
	}
	if cfg.BankEmail == "" {
		return nil, fmt.Errorf("BANK_EMAIL is required")
	}
	if cfg.MailCode == "" {
		return nil, fmt.Errorf("DD_MAIL_CODE is required")
	}

	return cfg, nil
}

// ApprovedSenders returns the lowercased allow-list for inbound mail.
func (c *Config) ApprovedSenders() []string {
	return []string{c.UserEmail, c.BankEmail}
}

// MailgunConfigured reports whether outbound mail can actually be sent.
func (c *Config) MailgunConfigured() bool {
	return c.MailgunDomain != "" && c.MailgunAPIKey != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
