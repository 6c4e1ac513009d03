package cart

// Error message constants for the cart domain.
const (
	ErrMsgQuantityPositive = "Quantity must be positive."
	ErrMsgItemNotInCart    = "Item not found in cart."
)
