package product

import (
	"bytes"
	"time"
)

// Flag is a boolean stored as 1/0 in the JSON documents so existing data
// files keep round-tripping unchanged. It also accepts true/false on input.
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("1")), bytes.Equal(data, []byte("true")):
		*f = true
	default:
		*f = false
	}
	return nil
}

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Price       int       `json:"price"`
	CategoryID  int       `json:"category_id"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Stock       int       `json:"stock"`
	IsActive    Flag      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// WithCategory is a product enriched with its category's name, the shape
// the catalog and admin endpoints return.
type WithCategory struct {
	Product
	CategoryName string `json:"category_name"`
}

type ListOptions struct {
	CategoryID      *int
	Search          string
	Page            int
	Limit           int
	IncludeInactive bool
}

type ListResult struct {
	Items []WithCategory `json:"products"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type CreateInput struct {
	Name        string
	Price       int
	CategoryID  int
	Description string
	ImageURL    string
	Stock       int
}

type UpdateInput struct {
	Name        *string
	Price       *int
	CategoryID  *int
	Description *string
	ImageURL    *string
	Stock       *int
	IsActive    *bool
}

// Deduction is one line of a stock decrement applied after order placement.
type Deduction struct {
	ProductID int
	Quantity  int
}

// DefaultImageURL is used when a product is created without an image reference.
const DefaultImageURL = "/images/default-product.png"

// RestockAmount is the stock a sold-out product jumps back to when toggled.
const RestockAmount = 100
