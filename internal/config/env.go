package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	OpenAI string
	Gemini string
}

// MailCredentials holds the SMTP account loaded from environment
type MailCredentials struct {
	Username  string
	Password  string
	Recipient string
}

// envPaths are searched in order; the first existing file wins
var envPaths = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// LoadEnv loads environment variables from the first .env file found and returns its
// path. A missing file is fine since variables may be set system-wide.
func LoadEnv() (string, error) {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}
	return "", nil
}

// GetAPIKeys retrieves API keys from environment variables
func GetAPIKeys() *APIKeys {
	return &APIKeys{
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Gemini: strings.TrimSpace(firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY")),
	}
}

// For returns the key of the named provider, validated. Keys of other providers
// are ignored. An empty key is allowed here and reported by the provider itself.
func (k *APIKeys) For(provider string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "openai":
		if k.OpenAI != "" {
			if err := ValidateAPIKey(k.OpenAI, "OpenAI"); err != nil {
				return "", fmt.Errorf("invalid OPENAI_API_KEY: %w", err)
			}
		}
		return k.OpenAI, nil
	default:
		if k.Gemini != "" {
			if err := ValidateAPIKey(k.Gemini, "Gemini"); err != nil {
				return "", fmt.Errorf("invalid GEMINI_API_KEY: %w", err)
			}
		}
		return k.Gemini, nil
	}
}

// GetMailCredentials reads the mail account. Empty values leave email disabled.
func GetMailCredentials() MailCredentials {
	return MailCredentials{
		Username:  strings.TrimSpace(os.Getenv("MAIL_USERNAME")),
		Password:  strings.TrimSpace(os.Getenv("MAIL_APP_PASSWORD")),
		Recipient: strings.TrimSpace(os.Getenv("MAIL_RECIPIENT")),
	}
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
