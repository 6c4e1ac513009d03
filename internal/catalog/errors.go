package catalog

// Error message constants for the catalog domain.
const (
	ErrMsgNameRequired       = "Product name cannot be empty."
	ErrMsgInvalidPriceStock  = "Invalid price or stock."
	ErrMsgPriceNegative      = "Price cannot be negative."
	ErrMsgStockNegative      = "Stock cannot be negative."
	ErrMsgQuantityPositive   = "Quantity must be positive."
	ErrMsgReservedNegative   = "Reserved quantity cannot be negative."
	ErrMsgProductNotFound    = "Product not found."
	ErrMsgInsufficientStockf = "Insufficient stock: available %d, requested %d."
	ErrMsgStockOverflowf     = "Stock %d cannot take %d more units."
)
