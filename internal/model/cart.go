package model

import "time"

type CartItem struct {
	// Unique identifier of the cart item.
	ID string
	// Opaque per-browser-session token scoping the cart.
	SessionID string
	// ID of the referenced product. Not validated on insert; a dangling
	// reference yields a nil product on read.
	ProductID string
	// Number of units. Callers are expected to keep this >= 1.
	Quantity int
	// Timestamp when the item was added.
	CreatedAt time.Time
}

// CartLine is a cart item joined with its product. Product is nil when
// the referenced product no longer exists.
type CartLine struct {
	CartItem
	Product *Product
}

type AddCartItemParams struct {
	SessionID string
	ProductID string
	Quantity  int
}
