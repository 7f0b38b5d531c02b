package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"meeting-insights/internal/app/llm"
	"meeting-insights/internal/app/notify"
)

const (
	DefaultConfigPath  = "config.yaml"
	DefaultPort        = 8080
	DefaultMaxUploadMB = 25
	DefaultProvider    = "gemini"
	DefaultLLMTimeout  = 60 * time.Second
	DefaultLogLevel    = "info"
)

// Config is the complete runtime configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	LLM     LLMConfig     `yaml:"llm"`
	Mail    MailConfig    `yaml:"mail"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig controls the HTTP listener
type ServerConfig struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	MaxUploadMB int      `yaml:"max_upload_mb"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// LLMConfig selects the model provider
type LLMConfig struct {
	llm.ProviderConfig `yaml:",inline"`
	Timeout            time.Duration `yaml:"timeout"`
}

// MailConfig holds the SMTP account. Credentials normally come from the environment.
type MailConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"-"`
	From      string `yaml:"from"`
	Recipient string `yaml:"recipient"`
	Subject   string `yaml:"subject"`
}

// LoggingConfig controls the zap logger
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads the YAML file at path, overlays environment secrets and validates.
// A missing file is not an error; defaults and environment are used instead.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(os.ExpandEnv(path))
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if provider := strings.TrimSpace(os.Getenv("LLM_PROVIDER")); provider != "" {
		c.LLM.Provider = provider
	}
	key, err := GetAPIKeys().For(c.LLM.Provider)
	if err != nil {
		return err
	}
	c.LLM.APIKey = key

	mail := GetMailCredentials()
	if mail.Username != "" {
		c.Mail.Username = mail.Username
	}
	if mail.Password != "" {
		c.Mail.Password = mail.Password
	}
	if mail.Recipient != "" {
		c.Mail.Recipient = mail.Recipient
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = DefaultMaxUploadMB
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = DefaultProvider
	}
	c.LLM.Provider = strings.ToLower(c.LLM.Provider)
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = DefaultLLMTimeout
	}
	if c.Mail.Host == "" {
		c.Mail.Host = notify.DefaultSMTPHost
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = notify.DefaultSMTPPort
	}
	if c.Mail.Subject == "" {
		c.Mail.Subject = notify.DefaultSubject
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

// Validate checks ranges. Missing API keys and mail credentials are reported at use time.
func (c *Config) Validate() error {
	if err := ValidatePort(c.Server.Port, "server"); err != nil {
		return err
	}
	if err := ValidatePort(c.Mail.Port, "mail"); err != nil {
		return err
	}
	if c.Server.MaxUploadMB < 0 {
		return fmt.Errorf("server max_upload_mb cannot be negative")
	}
	if err := ValidateTimeout(c.LLM.Timeout, "llm"); err != nil {
		return err
	}
	if c.LLM.BaseURL != "" {
		if err := ValidateURL(c.LLM.BaseURL, "llm base"); err != nil {
			return err
		}
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm temperature must be between 0 and 2")
	}
	return ValidateLogLevel(c.Logging.Level)
}

// Addr is the listen address for the HTTP server
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// MaxUploadBytes converts the upload limit to bytes
func (s ServerConfig) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}

// Notify converts the mail section for the notify package
func (m MailConfig) Notify() notify.Config {
	return notify.Config{
		Host:      m.Host,
		Port:      m.Port,
		Username:  m.Username,
		Password:  m.Password,
		From:      m.From,
		Recipient: m.Recipient,
		Subject:   m.Subject,
	}
}
