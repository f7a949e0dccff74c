package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"sakatsuku04/internal/domain"
)

type Config struct {
	Locale         string        `env:"SAKATSUKU_LOCALE" envDefault:"zh"`
	LocaleDir      string        `env:"SAKATSUKU_LOCALE_DIR"`
	BackendURL     string        `env:"SAKATSUKU_BACKEND_URL" envDefault:"http://127.0.0.1:1421"`
	BackendTimeout time.Duration `env:"SAKATSUKU_BACKEND_TIMEOUT" envDefault:"30s"`
	ListenAddr     string        `env:"SAKATSUKU_LISTEN_ADDR" envDefault:"127.0.0.1:1420"`
	StrictModes    bool          `env:"SAKATSUKU_STRICT_MODES"`
	Offline        bool          `env:"SAKATSUKU_OFFLINE"`

	// DefaultLocale is Locale once validated.
	DefaultLocale domain.Locale
}

// Load reads the configuration from the environment (and an optional .env
// file) and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment.
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies the rules on the loaded configuration.
func (c *Config) validate() error {
	locale, err := domain.ParseLocale(c.Locale)
	if err != nil {
		return fmt.Errorf("config: SAKATSUKU_LOCALE: %w", err)
	}
	c.DefaultLocale = locale

	if dir := strings.TrimSpace(c.LocaleDir); dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("config: SAKATSUKU_LOCALE_DIR (%q): %w", dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("config: SAKATSUKU_LOCALE_DIR (%q) is not a directory", dir)
		}
		c.LocaleDir = dir
	}

	if _, _, err := net.SplitHostPort(c.ListenAddr); err != nil {
		return fmt.Errorf("config: SAKATSUKU_LISTEN_ADDR invalid (%q): %w", c.ListenAddr, err)
	}

	if c.BackendTimeout <= 0 {
		return fmt.Errorf("config: SAKATSUKU_BACKEND_TIMEOUT must be positive")
	}

	if c.Offline {
		return nil
	}
	parsed, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("config: SAKATSUKU_BACKEND_URL invalid (%q): %w", c.BackendURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: SAKATSUKU_BACKEND_URL invalid (%q): missing scheme or host", c.BackendURL)
	}

	return nil
}
