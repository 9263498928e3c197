// Package config handles cortecaja configuration loading.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"cortecaja/internal/report"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig `yaml:"server"`
	Report   ReportConfig `yaml:"report"`
	SMTP     SMTPConfig   `yaml:"smtp"`
	Email    EmailConfig  `yaml:"email"`
	LogLevel string       `yaml:"logLevel"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	// ReleaseAfter is how long a rendered PDF stays downloadable.
	ReleaseAfter time.Duration `yaml:"releaseAfter"`
}

// ReportConfig holds layout and metadata settings for every render.
type ReportConfig struct {
	PageSize string  `yaml:"pageSize"`
	Margin   float64 `yaml:"margin"`
	Author   string  `yaml:"author"`
	School   string  `yaml:"school"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"pass"`
}

type EmailConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// MailEnabled reports whether enough SMTP settings are present to send mail.
func (c *Config) MailEnabled() bool {
	return c.SMTP.Host != "" && c.Email.From != "" && c.Email.To != ""
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReleaseAfter: 60 * time.Second,
		},
		Report: ReportConfig{
			PageSize: "letter",
			Margin:   36,
			Author:   "Control Escolar",
		},
		SMTP: SMTPConfig{
			Port: 587,
		},
		LogLevel: "info",
	}
}

// Load loads configuration from a file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Server.ReleaseAfter <= 0 {
		return nil, fmt.Errorf("server.releaseAfter must be positive, got %v", cfg.Server.ReleaseAfter)
	}
	if size := report.LookupPageSize(cfg.Report.PageSize); !size.MarginFits(cfg.Report.Margin) {
		return nil, fmt.Errorf("report.margin must be between 0 and a quarter of the shorter page side (%v), got %v",
			math.Min(size.Width, size.Height)/4, cfg.Report.Margin)
	}

	return cfg, nil
}

// LoadOrDefault loads config from path, or returns the defaults if the
// file does not exist. Environment overrides are applied in both cases.
func LoadOrDefault(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			loaded, err := Load(path)
			if err != nil {
				return nil, err
			}
			cfg = loaded
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides file values with the CORTECAJA_* environment
// variables that are set.
func (c *Config) ApplyEnv() error {
	envAddr := os.Getenv("CORTECAJA_ADDR")
	envSMTPHost := os.Getenv("CORTECAJA_SMTP_HOST")
	envSMTPPort := os.Getenv("CORTECAJA_SMTP_PORT")
	envSMTPUser := os.Getenv("CORTECAJA_SMTP_USER")
	envSMTPPass := os.Getenv("CORTECAJA_SMTP_PASS")
	envLogLevel := os.Getenv("CORTECAJA_LOG_LEVEL")

	if len(envAddr) != 0 {
		c.Server.Addr = envAddr
	}

	if len(envSMTPHost) != 0 {
		c.SMTP.Host = envSMTPHost
	}

	if len(envSMTPPort) != 0 {
		port, err := strconv.Atoi(envSMTPPort)
		if err != nil {
			return fmt.Errorf("invalid CORTECAJA_SMTP_PORT %q: %w", envSMTPPort, err)
		}
		c.SMTP.Port = port
	}

	if len(envSMTPUser) != 0 {
		c.SMTP.Username = envSMTPUser
	}

	if len(envSMTPPass) != 0 {
		c.SMTP.Password = envSMTPPass
	}

	if len(envLogLevel) != 0 {
		c.LogLevel = envLogLevel
	}

	return nil
}
