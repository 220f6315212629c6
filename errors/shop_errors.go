// api/errors/shop_errors.go
package errors

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrMissingSession    = errors.New("missing cart session")
	ErrAlreadySubscribed = errors.New("already subscribed")
	ErrSubscriberMissing = errors.New("subscriber not found")
)
