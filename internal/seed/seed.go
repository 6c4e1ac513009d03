// Package seed loads the initial catalog and user list.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/breinnndel/storefront/internal/account"
	"github.com/breinnndel/storefront/internal/catalog"
)

//go:embed default.yaml
var defaultSeed []byte

// Product is one catalog entry. Price is a string so amounts are parsed
// as decimals, never as floats.
type Product struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
	Stock int    `yaml:"stock"`
}

// User is one credential entry.
type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// Seed is the start-up data set.
type Seed struct {
	Products []Product `yaml:"products"`
	Users    []User    `yaml:"users"`
}

// Default returns the built-in data set.
func Default() (*Seed, error) {
	return Parse(defaultSeed)
}

// Load reads a seed file. An empty path returns Default.
func Load(path string) (*Seed, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML seed data. Unknown fields are rejected; an empty
// document is an empty seed.
func Parse(data []byte) (*Seed, error) {
	var s Seed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &s, nil
}

// Apply creates every product and user. Products get ids in file order.
func Apply(s *Seed, products *catalog.Catalog, users account.Repository, policy catalog.Policy, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	for i, p := range s.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return fmt.Errorf("product %d (%s): invalid price %q: %w", i+1, p.Name, p.Price, err)
		}
		if _, err := products.Create(p.Name, price, p.Stock, policy); err != nil {
			return fmt.Errorf("product %d (%s): %w", i+1, p.Name, err)
		}
	}

	for _, u := range s.Users {
		role, err := account.ParseRole(u.Role)
		if err != nil {
			return fmt.Errorf("user %s: %w", u.Username, err)
		}
		if _, err := users.Add(account.User{Username: u.Username, Password: u.Password, Role: role}); err != nil {
			return fmt.Errorf("user %s: %w", u.Username, err)
		}
	}

	logger.Info("seed applied",
		zap.Int("products", len(s.Products)),
		zap.Int("users", len(s.Users)))
	return nil
}
