// api/model/product.go
package model

import "time"

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	PriceCents    int64     `json:"priceCents"`
	Currency      string    `json:"currency"`
	Images        []string  `json:"images"`
	StockQuantity int       `json:"stockQuantity"`
	Featured      bool      `json:"featured"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ProductInput struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PriceCents    int64    `json:"priceCents"`
	Currency      string   `json:"currency"`
	Images        []string `json:"images"`
	StockQuantity int      `json:"stockQuantity"`
	Featured      bool     `json:"featured"`
	Active        bool     `json:"active"`
}
