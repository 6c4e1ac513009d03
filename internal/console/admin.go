package console

import (
	"go.uber.org/zap"

	"github.com/breinnndel/storefront/internal/account"
)

func (c *Console) adminSession(user account.User) error {
	c.Logger.Info("admin session started", zap.String("username", user.Username))
	defer c.Logger.Info("admin session ended", zap.String("username", user.Username))

	menu := NewMenu(c.Palette.Heading("--- Admin Menu ---")).
		On("View Products", c.viewProducts).
		On("View Users", c.viewUsers).
		On("View Sellers", func() error { return c.viewRole(account.RoleSeller) }).
		On("View Buyers", func() error { return c.viewRole(account.RoleBuyer) }).
		On("Delete User", c.deleteUser).
		On("Delete Product", c.deleteProduct).
		Exit("Logout")
	return c.run(menu)
}

func (c *Console) viewUsers() error {
	users, err := c.Users.List()
	if err != nil {
		return err
	}
	c.println(FormatUsers(users))
	return nil
}

func (c *Console) viewRole(role account.Role) error {
	users, err := c.Users.ListByRole(role)
	if err != nil {
		return err
	}
	c.println(FormatUsernames(users))
	return nil
}

func (c *Console) deleteUser() error {
	username, err := c.prompt.Word("Enter username to delete: ")
	if err != nil {
		return err
	}
	if err := c.Users.Delete(username); err != nil {
		return err
	}
	c.println(c.Palette.Success("User deleted successfully."))
	return nil
}
