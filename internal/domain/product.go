package domain

import (
	"encoding/json"
	"strings"
)

// ProductCategory catalog section
type ProductCategory string

const (
	CategoryPaints      ProductCategory = "paints"
	CategoryWraps       ProductCategory = "wraps"
	CategoryBodykits    ProductCategory = "bodykits"
	CategoryWheels      ProductCategory = "wheels"
	CategoryInterior    ProductCategory = "interior"
	CategoryStarlight   ProductCategory = "starlight"
	CategoryAccessories ProductCategory = "accessories"
)

// Product catalog entry. Optional attributes depend on the category.
type Product struct {
	ID         string
	SKU        string
	Name       string
	Category   ProductCategory
	Price      float64
	Currency   string
	LaborHours float64
	Image      string

	Color          *string
	Finish         *string
	Warranty       *string
	Type           *string
	Size           *string
	Set            *int
	Stars          *int
	Fiber          *string
	Shooting       *bool
	Constellations *bool
	Includes       []string
	Materials      []string
	Colors         []string
}

// ProductFilter catalog query
type ProductFilter struct {
	Category string
	Search   string // case-insensitive substring of name or sku
}

// Normalize trims the filter and lower-cases the search term
func (f ProductFilter) Normalize() ProductFilter {
	return ProductFilter{
		Category: strings.TrimSpace(f.Category),
		Search:   strings.ToLower(strings.TrimSpace(f.Search)),
	}
}

// ParseStringList decodes a JSON array stored as text. Invalid input yields an empty list.
func ParseStringList(raw string) []string {
	if raw == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []string{}
	}
	return list
}
