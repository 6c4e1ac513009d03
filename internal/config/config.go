// Package config loads storefront settings from the environment and the
// command line. Flags override environment values.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"github.com/breinnndel/storefront/internal/catalog"
	"github.com/breinnndel/storefront/internal/shop"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "STOREFRONT_"

// Config holds process settings.
type Config struct {
	SeedFile       string `env:"SEED_FILE"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"warn"`
	Development    bool   `env:"DEV"`
	Currency       string `env:"CURRENCY" envDefault:"P"`
	Locale         string `env:"LOCALE" envDefault:"en"`
	WalletLabel    string `env:"WALLET_LABEL" envDefault:"GCASH"`
	StrictProducts bool   `env:"STRICT_PRODUCTS"`
	Color          bool   `env:"COLOR"`
}

// Load parses the environment, then args into fs. A nil environ reads
// the process environment.
func Load(fs *pflag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "YAML file with products and users (default: embedded seed)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.BoolVar(&cfg.Development, "dev", cfg.Development, "human-readable development logging")
	fs.StringVar(&cfg.Currency, "currency", cfg.Currency, "currency symbol printed before amounts")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "BCP 47 tag used for digit grouping")
	fs.StringVar(&cfg.WalletLabel, "wallet", cfg.WalletLabel, "label of the digital wallet payment option")
	fs.BoolVar(&cfg.StrictProducts, "strict", cfg.StrictProducts, "reject products with negative price or stock instead of zeroing them")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "colorize menu output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that flags and env cannot type-check.
func (c Config) Validate() error {
	if _, err := c.Language(); err != nil {
		return err
	}
	if err := shop.RequireNotBlank(c.WalletLabel, "wallet label cannot be empty"); err != nil {
		return err
	}
	return nil
}

// Language returns the parsed locale.
func (c Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// Money returns the formatter for the configured currency and locale.
func (c Config) Money() shop.Money {
	tag, err := c.Language()
	if err != nil {
		tag = language.English
	}
	return shop.NewMoney(c.Currency, tag)
}

// ProductPolicy maps StrictProducts onto a catalog policy.
func (c Config) ProductPolicy() catalog.Policy {
	if c.StrictProducts {
		return catalog.Strict
	}
	return catalog.Clamp
}
