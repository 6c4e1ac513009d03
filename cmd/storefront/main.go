package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/breinnndel/storefront/internal/account"
	"github.com/breinnndel/storefront/internal/catalog"
	"github.com/breinnndel/storefront/internal/checkout"
	"github.com/breinnndel/storefront/internal/config"
	"github.com/breinnndel/storefront/internal/console"
	"github.com/breinnndel/storefront/internal/seed"
)

func main() {
	environ, err := config.Environ(os.Environ())
	if err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
	os.Exit(run(os.Args[1:], environ, os.Stdin, os.Stdout, os.Stderr))
}

// run wires the storefront and returns the process exit code. A nil
// environ reads the process environment.
func run(args []string, environ map[string]string, in io.Reader, out, errOut io.Writer) int {
	fs := pflag.NewFlagSet("storefront", pflag.ContinueOnError)
	fs.SetOutput(errOut)

	cfg, err := config.Load(fs, args, environ)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(errOut, "storefront: %v\n", err)
		return 1
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "storefront: %v\n", err)
		return 1
	}
	defer logger.Sync()

	deps, err := build(cfg, logger)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		fmt.Fprintf(errOut, "storefront: %v\n", err)
		return 1
	}

	logger.Info("storefront started",
		zap.String("seed", cfg.SeedFile),
		zap.String("policy", cfg.ProductPolicy().String()),
		zap.String("locale", cfg.Locale))

	if err := console.New(deps, in, out).Run(); err != nil {
		logger.Error("session failed", zap.Error(err))
		return 1
	}
	return 0
}

func build(cfg config.Config, logger *zap.Logger) (console.Deps, error) {
	products, err := catalog.New(logger)
	if err != nil {
		return console.Deps{}, err
	}
	users, err := account.NewStore(logger)
	if err != nil {
		return console.Deps{}, err
	}

	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return console.Deps{}, err
	}
	if err := seed.Apply(data, products, users, cfg.ProductPolicy(), logger); err != nil {
		return console.Deps{}, fmt.Errorf("apply seed: %w", err)
	}

	return console.Deps{
		Catalog:     products,
		Users:       users,
		Checkout:    checkout.NewService(logger),
		Money:       cfg.Money(),
		WalletLabel: cfg.WalletLabel,
		Policy:      cfg.ProductPolicy(),
		Palette:     console.Palette{Enabled: cfg.Color},
		Logger:      logger,
	}, nil
}
