package console

import (
	"go.uber.org/zap"

	"github.com/breinnndel/storefront/internal/account"
	"github.com/breinnndel/storefront/internal/catalog"
	"github.com/breinnndel/storefront/internal/shop"
)

func (c *Console) sellerSession(user account.User) error {
	c.Logger.Info("seller session started", zap.String("username", user.Username))
	defer c.Logger.Info("seller session ended", zap.String("username", user.Username))

	menu := NewMenu(c.Palette.Heading("--- Seller Menu ---")).
		On("View Products", c.viewProducts).
		On("Add Product", c.addProduct).
		On("Restock Product", c.restockProduct).
		On("Delete Product", c.deleteProduct).
		Exit("Logout").
		On("Update Price", c.updatePrice)
	return c.run(menu)
}

func (c *Console) addProduct() error {
	c.println("")
	c.println(c.Palette.Heading("--- Add New Product ---"))

	name, err := c.prompt.Line("Enter product name: ")
	if err != nil {
		return err
	}
	if err := shop.RequireNotBlank(name, catalog.ErrMsgNameRequired); err != nil {
		return err
	}

	price, err := c.prompt.Decimal("Enter product price: " + c.Money.Symbol())
	if err != nil {
		return err
	}
	if err := shop.RequireNonNegativeAmount(price, catalog.ErrMsgPriceNegative); err != nil {
		return err
	}

	stock, err := c.prompt.Int("Enter initial stock quantity: ")
	if err != nil {
		return err
	}
	if err := shop.RequireNonNegative(stock, catalog.ErrMsgStockNegative); err != nil {
		return err
	}

	p, err := c.Catalog.Create(name, price, stock, c.Policy)
	if err != nil {
		return err
	}

	c.println(c.Palette.Success("Product added successfully!"))
	c.printf("Product ID: %d\n", p.ID)
	c.printf("Name: %s\n", p.Name)
	c.printf("Price: %s\n", c.Money.Format(p.Price))
	c.printf("Stock: %d\n", p.Stock)
	return nil
}

func (c *Console) restockProduct() error {
	id, err := c.prompt.Int("Enter Product ID to restock: ")
	if err != nil {
		return err
	}
	qty, err := c.prompt.Int("Enter quantity to add: ")
	if err != nil {
		return err
	}
	if _, err := c.Catalog.Restock(id, qty); err != nil {
		return err
	}
	c.println(c.Palette.Success("Product restocked."))
	return nil
}

func (c *Console) updatePrice() error {
	id, err := c.prompt.Int("Enter Product ID to reprice: ")
	if err != nil {
		return err
	}
	price, err := c.prompt.Decimal("Enter new price: " + c.Money.Symbol())
	if err != nil {
		return err
	}
	p, err := c.Catalog.SetPrice(id, price)
	if err != nil {
		return err
	}
	c.printf("%s %s now costs %s.\n", c.Palette.Success("Price updated."), p.Name, c.Money.Format(p.Price))
	return nil
}
