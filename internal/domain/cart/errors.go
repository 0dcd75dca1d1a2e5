// internal/domain/cart/errors.go
package cart

import (
	"errors"
	"fmt"
)

// Resource names carried by NotFoundError
const (
	ResourceProduct  = "product"
	ResourceCartLine = "cart item"
)

// NotFoundError reports a product or cart line that does not exist
type NotFoundError struct {
	Resource  string
	ProductID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ProductID)
}

// Message is the client-facing text for the error
func (e *NotFoundError) Message() string {
	switch e.Resource {
	case ResourceProduct:
		return "Product not found."
	case ResourceCartLine:
		return "Cart item not found."
	default:
		return "Not found."
	}
}

// IsNotFound reports whether err wraps a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
