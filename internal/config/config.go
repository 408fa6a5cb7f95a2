package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/rpggio/worklog/internal/domain/commit"
)

// Transport modes for the MCP server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config defines worklog configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Git    GitConfig    `yaml:"git"`
}

type ServerConfig struct {
	Host      string `yaml:"host" env:"WORKLOG_SERVER_HOST"`
	Port      int    `yaml:"port" env:"WORKLOG_SERVER_PORT"`
	Token     string `yaml:"token" env:"WORKLOG_SERVER_TOKEN"`
	Transport string `yaml:"transport" env:"WORKLOG_TRANSPORT"`
}

type DBConfig struct {
	Path string `yaml:"path" env:"WORKLOG_DB_PATH"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"WORKLOG_LOG_LEVEL"`
	Path  string `yaml:"path" env:"WORKLOG_LOG_PATH"`
}

type GitConfig struct {
	Provider string `yaml:"provider" env:"WORKLOG_GIT_PROVIDER"`
	Limit    int    `yaml:"limit" env:"WORKLOG_GIT_LIMIT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:      "127.0.0.1",
			Port:      8080,
			Transport: TransportStdio,
		},
		DB: DBConfig{
			Path: "worklog.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Git: GitConfig{
			Provider: commit.ProviderMock,
			Limit:    50,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("WORKLOG_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Server.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("invalid transport %q: want %s or %s", c.Server.Transport, TransportStdio, TransportHTTP)
	}
	switch c.Git.Provider {
	case commit.ProviderMock, commit.ProviderLocal:
	default:
		return fmt.Errorf("invalid git provider %q: want %s or %s", c.Git.Provider, commit.ProviderMock, commit.ProviderLocal)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Git.Limit < 0 {
		return fmt.Errorf("invalid git limit %d", c.Git.Limit)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
