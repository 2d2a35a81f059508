package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is built once at
// process start and passed by reference; no other package reads the
// environment directly.
type Config struct {
	FeedURL string

	MailUser string
	MailPass string
	SMTPHost string
	SMTPPort int

	Recipients    []string
	TestMode      bool
	TestRecipient string

	Timezone string

	RedisURL   string
	ReportCron string
}

const defaultFeedURL = "https://dashproduction.x10.mx/masterfile/scanner/machining/barcode/scanner.json"

// LoadConfig reads configuration from environment variables (.env file).
// Under an automated scheduler (GITHUB_ACTIONS=true) the .env file is
// skipped and credentials must come from the ambient environment.
func LoadConfig() (*Config, error) {
	if os.Getenv("GITHUB_ACTIONS") != "true" {
		// Don't fail if .env is not present; local runs may export directly.
		_ = godotenv.Load()
	}

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	return &Config{
		FeedURL:       getEnv("FEED_URL", defaultFeedURL),
		MailUser:      getEnv("GMAIL_USER", ""),
		MailPass:      getEnv("GMAIL_PASS", ""),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      port,
		Recipients:    splitList(getEnv("REPORT_RECIPIENTS", "")),
		TestMode:      getEnv("REPORT_TEST_MODE", "") == "true",
		TestRecipient: getEnv("REPORT_TEST_RECIPIENT", ""),
		Timezone:      getEnv("REPORT_TIMEZONE", "Asia/Manila"),
		RedisURL:      getEnv("REDIS_URL", "redis://127.0.0.1:6379"),
		ReportCron:    getEnv("REPORT_CRON", "0 7 * * *"),
	}, nil
}

// ActiveRecipients returns the delivery list for this run. In test mode the
// configured test recipient replaces the whole list.
func (c *Config) ActiveRecipients() []string {
	if c.TestMode && c.TestRecipient != "" {
		return []string{c.TestRecipient}
	}
	return c.Recipients
}

// Helper function to get env var or return default
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
