// api/model/cart.go
package model

import "time"

// Cart lines carry a denormalized product snapshot so the storefront can
// render without a second round trip.
type CartItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	UnitCents   int64  `json:"unitCents"`
	Currency    string `json:"currency"`
	Quantity    int    `json:"quantity"`
}

type Cart struct {
	ID         string     `json:"id"`
	SessionID  string     `json:"sessionId"`
	Items      []CartItem `json:"items"`
	TotalCents int64      `json:"totalCents"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
