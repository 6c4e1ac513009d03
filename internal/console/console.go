// Package console drives the text menus: login, then one menu per role.
package console

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"google.golang.org/grpc/status"

	"github.com/breinnndel/storefront/internal/account"
	"github.com/breinnndel/storefront/internal/catalog"
	"github.com/breinnndel/storefront/internal/checkout"
	"github.com/breinnndel/storefront/internal/shop"
)

// Banner is printed above the entry menu.
const Banner = "===== Welcome to Brein's Shopping System ====="

// Farewell is printed when the user picks Exit.
const Farewell = "Thank you for shopping!"

// Deps are the collaborators a Console drives.
type Deps struct {
	Catalog  *catalog.Catalog
	Users    account.Repository
	Checkout *checkout.Service

	Money       shop.Money
	WalletLabel string
	Policy      catalog.Policy
	Palette     Palette
	Logger      *zap.Logger
}

// Console is one interactive terminal.
type Console struct {
	Deps
	prompt *Prompter
	out    io.Writer
}

// New creates a console reading from in and writing to out.
func New(d Deps, in io.Reader, out io.Writer) *Console {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	d.Logger = d.Logger.Named("console")
	if d.Checkout == nil {
		d.Checkout = checkout.NewService(d.Logger)
	}
	return &Console{Deps: d, prompt: NewPrompter(in, out), out: out}
}

// Run shows the entry menu until the user exits or input ends. Running
// out of input is a normal end, not an error.
func (c *Console) Run() error {
	entry := NewMenu(c.Palette.Heading(Banner)).
		On("Login", c.login).
		ExitAt(0, "Exit")

	err := c.run(entry)
	switch {
	case err == nil:
		c.println(Farewell)
		return nil
	case errors.Is(err, io.EOF):
		c.Logger.Debug("input closed")
		return nil
	default:
		return err
	}
}

// run dispatches choices until the exit item is picked.
func (c *Console) run(m *Menu) error {
	for {
		choice, err := c.prompt.Int(m.Prompt())
		if err != nil {
			return err
		}
		if m.IsExit(choice) {
			return nil
		}
		action, ok := m.Lookup(choice)
		if !ok {
			c.println(c.Palette.Failure(ErrMsgInvalidOption))
			continue
		}
		if err := c.report(action()); err != nil {
			return err
		}
	}
}

// report prints a domain error and swallows it. Anything else is
// returned to end the session.
func (c *Console) report(err error) error {
	if err == nil {
		return nil
	}
	var shopErr *shop.Error
	if !errors.As(err, &shopErr) {
		return err
	}
	c.Logger.Info("operation rejected",
		zap.String("code", status.Code(err).String()),
		zap.String("kind", shopErr.Kind.String()),
		zap.String("message", shopErr.Error()))
	c.println(c.Palette.Failure(shopErr.Error()))
	return nil
}

func (c *Console) login() error {
	username, err := c.prompt.Word("Username: ")
	if err != nil {
		return err
	}
	password, err := c.prompt.Word("Password: ")
	if err != nil {
		return err
	}

	user, err := c.Users.Authenticate(username, password)
	if err != nil {
		return err
	}

	rule := "--------------------------"
	c.println(rule)
	c.println(c.Palette.Success("Login successful."))
	c.println(rule)
	c.printf("Welcome, %s!\n", user.Username)

	switch user.Role {
	case account.RoleAdmin:
		return c.adminSession(user)
	case account.RoleSeller:
		return c.sellerSession(user)
	case account.RoleBuyer:
		return c.buyerSession(user)
	default:
		return fmt.Errorf("user %s has unknown role %q", user.Username, user.Role)
	}
}

func (c *Console) viewProducts() error {
	products, err := c.Catalog.List()
	if err != nil {
		return err
	}
	c.println(FormatProducts(products, c.Money, c.Palette))
	return nil
}

func (c *Console) deleteProduct() error {
	id, err := c.prompt.Int("Enter product ID to delete: ")
	if err != nil {
		return err
	}
	if err := c.Catalog.Delete(id); err != nil {
		return err
	}
	c.println(c.Palette.Success("Product deleted successfully."))
	return nil
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
