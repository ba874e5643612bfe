package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort    uint16 = 3000
	DefaultTimeout        = 5 * time.Second
	DefaultLevel          = "info"
)

type Config struct {
	Coolify struct {
		URL     string        `yaml:"url"`
		Token   string        `yaml:"token"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"coolify"`

	Server struct {
		Port uint16 `yaml:"port"`
	} `yaml:"server"`

	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`
}

// env holds the overrides read from the process environment. Pointers
// distinguish "unset" from the zero value.
type env struct {
	CoolifyURL      *string        `envconfig:"COOLIFY_URL"`
	APIToken        *string        `envconfig:"API_TOKEN"`
	Port            *uint16        `envconfig:"PORT"`
	UpstreamTimeout *time.Duration `envconfig:"UPSTREAM_TIMEOUT"`
	LogLevel        *string        `envconfig:"LOG_LEVEL"`
	LogDevelopment  *bool          `envconfig:"LOG_DEVELOPMENT"`
}

// Load layers defaults, the YAML file at path (optional), a .env file in
// the working directory (optional) and the environment, then validates.
func Load(path string) (Config, error) {
	var c Config

	c.Server.Port = DefaultPort
	c.Coolify.Timeout = DefaultTimeout
	c.Log.Level = DefaultLevel

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &c); err != nil {
				return c, fmt.Errorf("parse %s: %w", path, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return c, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, fmt.Errorf("load .env: %w", err)
	}

	var e env
	if err := envconfig.Process("", &e); err != nil {
		return c, err
	}

	if e.CoolifyURL != nil {
		c.Coolify.URL = *e.CoolifyURL
	}
	if e.APIToken != nil {
		c.Coolify.Token = *e.APIToken
	}
	if e.Port != nil {
		c.Server.Port = *e.Port
	}
	if e.UpstreamTimeout != nil {
		c.Coolify.Timeout = *e.UpstreamTimeout
	}
	if e.LogLevel != nil {
		c.Log.Level = *e.LogLevel
	}
	if e.LogDevelopment != nil {
		c.Log.Development = *e.LogDevelopment
	}

	if c.Coolify.Timeout <= 0 {
		c.Coolify.Timeout = DefaultTimeout
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLevel
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return c, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if c.Coolify.URL == "" {
		return c, errors.New("COOLIFY_URL must be set")
	}

	if c.Coolify.Token == "" {
		return c, errors.New("API_TOKEN must be set")
	}

	return c, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Server.Port)
}
