package console

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/breinnndel/storefront/internal/account"
	"github.com/breinnndel/storefront/internal/cart"
	"github.com/breinnndel/storefront/internal/checkout"
	"github.com/breinnndel/storefront/internal/shop"
)

// buyerSession owns one cart for the length of the session. Whatever is
// still reserved when the session ends goes back to stock.
func (c *Console) buyerSession(user account.User) (err error) {
	basket := cart.New(shop.CartRoot(user.Username), c.Catalog, c.Logger)
	c.Logger.Info("buyer session started", zap.String("username", user.Username), zap.Stringer("cart_id", basket.ID()))

	defer func() {
		if releaseErr := basket.Release(); releaseErr != nil {
			c.Logger.Error("release cart on logout", zap.Error(releaseErr))
			if err == nil {
				err = fmt.Errorf("release cart: %w", releaseErr)
			}
		}
		c.Logger.Info("buyer session ended", zap.String("username", user.Username))
	}()

	menu := NewMenu("").
		On("View Products", c.viewProducts).
		On("Add to Cart", func() error { return c.addToCart(basket) }).
		On("Remove from Cart", func() error { return c.removeFromCart(basket) }).
		On("View Cart", func() error { return c.viewCart(basket) }).
		On("Checkout", func() error { return c.checkout(basket) }).
		Exit("Logout")
	return c.run(menu)
}

func (c *Console) addToCart(basket *cart.Cart) error {
	id, err := c.prompt.Int("Enter Product ID: ")
	if err != nil {
		return err
	}
	qty, err := c.prompt.Int("Enter Quantity: ")
	if err != nil {
		return err
	}

	change, err := basket.AddItem(id, qty)
	if err != nil {
		return err
	}
	if change.Kind == cart.QuantityUpdated {
		c.println(c.Palette.Success("Updated quantity."))
		return nil
	}
	c.println(c.Palette.Success("Item added to cart."))
	return nil
}

func (c *Console) removeFromCart(basket *cart.Cart) error {
	id, err := c.prompt.Int("Enter Product ID to remove: ")
	if err != nil {
		return err
	}
	if _, err := basket.RemoveItem(id); err != nil {
		return err
	}
	c.println(c.Palette.Success("Item removed."))
	return nil
}

func (c *Console) viewCart(basket *cart.Cart) error {
	c.println(FormatCart(basket.View(), c.Money, c.Palette))
	return nil
}

func (c *Console) checkout(basket *cart.Cart) error {
	methods := []checkout.Method{
		checkout.CreditCard{},
		checkout.DigitalWallet{Label: c.WalletLabel},
	}

	var method checkout.Method
	pick := NewMenu("Select Payment Method:")
	for _, m := range methods {
		pick.On(m.Name(), func() error {
			method = m
			return nil
		})
	}

	choice, err := c.prompt.Int(pick.Prompt())
	if err != nil {
		return err
	}
	action, ok := pick.Lookup(choice)
	if !ok {
		c.println(c.Palette.Failure(ErrMsgInvalidOption))
		return nil
	}
	if err := action(); err != nil {
		return err
	}

	receipt, err := c.Checkout.Checkout(basket, method)
	if err != nil {
		return err
	}
	c.println(c.Palette.Success(checkout.FormatPayment(receipt.Payment, c.Money)))
	c.println("")
	c.println(checkout.FormatReceipt(receipt, c.Money))
	return nil
}
