package models

import "github.com/shopspring/decimal"

// Product represents a catalog entry. The catalog is loaded once at startup
// and never mutated.
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	FullDescription string          `json:"fullDescription,omitempty"`
	Price           decimal.Decimal `json:"price"`
	PriceNote       string          `json:"priceNote"`
	Image           string          `json:"image"`
	Category        string          `json:"category"`
	Tag             ProductTag      `json:"tag,omitempty"`
	Ingredients     []string        `json:"ingredients,omitempty"`
	Allergens       []string        `json:"allergens,omitempty"`
}

// ProductTag marks a promotional highlight on a product card.
type ProductTag string

const (
	TagBestSeller ProductTag = "Mais Vendido"
	TagNew        ProductTag = "Novo"
	TagPremium    ProductTag = "Premium"
	TagPromo      ProductTag = "Promo"
)

// Category groups products on the menu page.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// CategoryAll is the sentinel category id that bypasses filtering.
const CategoryAll = "todos"

// QuoteOnly reports whether the product has no fixed price and is sold
// under consultation.
func (p Product) QuoteOnly() bool {
	return p.Price.IsZero()
}

// IsInCategory checks if the product belongs to a specific category.
func (p Product) IsInCategory(category string) bool {
	return p.Category == category
}
