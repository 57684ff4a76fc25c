package entity

type ProductImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Product is the canonical in-system product representation, independent of
// the upstream feed shape. Price fields are pre-formatted display strings; no
// arithmetic is performed on them downstream.
type Product struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Model         string         `json:"model"`
	Price         string         `json:"price"`
	OriginalPrice string         `json:"originalPrice,omitempty"`
	Images        []ProductImage `json:"images"`
	Tag           string         `json:"tag,omitempty"`
	Stock         string         `json:"stock,omitempty"`
	ExternalURL   string         `json:"externalUrl,omitempty"`
	Slug          string         `json:"slug"`
	Category      string         `json:"category"`
}

type OptionGroup struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type Variant struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Price          string `json:"price"`
	CompareAtPrice string `json:"compareAtPrice,omitempty"`
	Available      bool   `json:"available"`
	Option1        string `json:"option1,omitempty"`
	Option2        string `json:"option2,omitempty"`
	SKU            string `json:"sku,omitempty"`
}

// ProductDetail is the extended bundle consumed by detail pages only; grid
// views use the embedded Product.
type ProductDetail struct {
	Product
	Description string        `json:"description"`
	Options     []OptionGroup `json:"options"`
	Variants    []Variant     `json:"variants"`
}
