package cart

import (
	"context"
	"encoding/json"
)

// Cart is the read-only view of a cart owned by the order service. Only Total
// is consumed here; products and customer are carried opaquely.
type Cart struct {
	ID       string            `json:"_id,omitempty"`
	Products []json.RawMessage `json:"products,omitempty"`
	Total    float64           `json:"total"`
	Customer json.RawMessage   `json:"customer,omitempty"`
}

// Lookup fetches carts from the order service.
type Lookup interface {
	GetCartByID(ctx context.Context, cartID string) (*Cart, error)
}
