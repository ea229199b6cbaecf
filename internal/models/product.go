package models

import "time"

// Attribute types for product attributes.
const (
	AttributeText    = "text"
	AttributeNumber  = "number"
	AttributeColor   = "color"
	AttributeSize    = "size"
	AttributeBoolean = "boolean"
)

type Product struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	Description      string  `json:"description,omitempty"`
	ShortDescription string  `json:"short_description,omitempty"`
	SEOTitle         string  `json:"seo_title,omitempty"`
	SEODescription   string  `json:"seo_description,omitempty"`
	SEOKeywords      string  `json:"seo_keywords,omitempty"`
	SKU              string  `json:"sku"`
	Price            float64 `json:"price"`
	Stock            int     `json:"stock"`

	Weight float64 `json:"weight,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Depth  float64 `json:"depth,omitempty"`

	DiscountPrice *float64 `json:"discount_price,omitempty"`
	Currency      string   `json:"currency"`
	IsFeatured    bool     `json:"is_featured"`
	IsActive      bool     `json:"is_active"`

	CategoryID int `json:"category_id"`
	BrandID    int `json:"brand_id"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"` // soft delete
}

type ProductImage struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	ImageURL  string `json:"image_url"`
	AltText   string `json:"alt_text,omitempty"`
	MainImage bool   `json:"main_image"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`

	ImageSize int `json:"image_size,omitempty"` // bytes
	Width     int `json:"width,omitempty"`
	Height    int `json:"height,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductAttribute struct {
	ID            int       `json:"id"`
	ProductID     int       `json:"product_id"`
	Name          string    `json:"name"`
	Value         string    `json:"value"`
	Description   string    `json:"description,omitempty"`
	AttributeType string    `json:"attribute_type"`
	IsActive      bool      `json:"is_active"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ProductVariant struct {
	ID        int        `json:"id"`
	ProductID int        `json:"product_id"`
	Name      string     `json:"name"`
	SKU       string     `json:"sku"`
	Price     float64    `json:"price"`
	Stock     int        `json:"stock"`
	Barcode   string     `json:"barcode,omitempty"`
	Currency  string     `json:"currency"`
	Weight    float64    `json:"weight,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}
