package models

import "github.com/shopspring/decimal"

// CartItem is one line in the shopping cart. Lines are addressed by Key;
// product id plus observation only decide whether AddItem merges a new entry
// into an existing line.
type CartItem struct {
	Key         string          `json:"key"`
	ProductID   string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Observation string          `json:"observation,omitempty"`
}

// Subtotal returns the line total, unit price times quantity.
func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
