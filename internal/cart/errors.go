package cart

// Error message constants for the cart domain.
const (
	ErrMsgProductIDRequired = "Product ID is required"
	ErrMsgUnknownProduct    = "Product is not in the catalog"
)
