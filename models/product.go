package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ═══════════════════════════════════════════════════════════
// Product Identifiers
// ═══════════════════════════════════════════════════════════

// ProductID is the stable key a product is favorited and looked up by.
// Legacy feeds use small integers, imported records without an id get a
// generated token, so the type accepts both JSON numbers and strings.
type ProductID string

func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid product id: %w", err)
		}
		*id = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid product id: %w", err)
	}
	*id = ProductID(n.String())
	return nil
}

// ═══════════════════════════════════════════════════════════
// Gender
// ═══════════════════════════════════════════════════════════

type Gender string

const (
	GenderMen   Gender = "men"
	GenderWomen Gender = "women"
	GenderKids  Gender = "kids"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMen, GenderWomen, GenderKids:
		return true
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Product
// ═══════════════════════════════════════════════════════════

// Product is immutable once loaded; bulk imports only ever append.
// Prices are whole rubles (no minor units). SalePrice is meaningful
// only while OnSale is true.
type Product struct {
	ID          ProductID `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	OnSale      bool      `json:"onSale"`
	SalePrice   int       `json:"salePrice,omitempty"`
	Gender      Gender    `json:"gender"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Colors      []string  `json:"colors"`
	Sizes       []string  `json:"sizes"`
	Materials   []string  `json:"materials"`
	Image       string    `json:"image"`
}

// EffectivePrice is the single price used by sorting, display and
// order inquiries: the sale price while on sale, the list price otherwise.
func (p Product) EffectivePrice() int {
	if p.OnSale {
		return p.SalePrice
	}
	return p.Price
}

// HasSize reports whether the product is offered in the given size.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Sorting
// ═══════════════════════════════════════════════════════════

type SortKey string

const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortName      SortKey = "name"
	SortBrand     SortKey = "brand"
)
