package domain

import "fmt"

// Category classifies products for the shop filters.
type Category string

const (
	CategoryFigures      Category = "Figures"
	CategoryApparel      Category = "Apparel"
	CategoryAccessories  Category = "Accessories"
	CategoryCollectibles Category = "Collectibles"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategoryFigures, CategoryApparel, CategoryAccessories, CategoryCollectibles}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFigures, CategoryApparel, CategoryAccessories, CategoryCollectibles:
		return true
	}
	return false
}

// Rarity grades a collectible in the product specs.
type Rarity string

const (
	RarityCommon Rarity = "Common"
	RarityRare   Rarity = "Rare"
	RarityEpic   Rarity = "Epic"
	RarityZenith Rarity = "Zenith"
)

// ProductSpecs holds the optional physical attributes shown on the detail page.
type ProductSpecs struct {
	Material   string `json:"material,omitempty"`
	Dimensions string `json:"dimensions,omitempty"`
	Weight     string `json:"weight,omitempty"`
	Origin     string `json:"origin,omitempty"`
	Rarity     Rarity `json:"rarity,omitempty"`
}

// Product is a catalog entry. Prices are in minor currency units.
// OriginalPrice, when non-zero, is the pre-discount price shown struck through.
type Product struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Series        string        `json:"series"`
	Category      Category      `json:"category"`
	Price         int64         `json:"price"`
	OriginalPrice int64         `json:"originalPrice,omitempty"`
	Description   string        `json:"description,omitempty"`
	Image         string        `json:"image,omitempty"`
	Image2        string        `json:"image2,omitempty"`
	Images        []string      `json:"images,omitempty"`
	VideoURL      string        `json:"videoUrl,omitempty"`
	IsFeatured    bool          `json:"isFeatured,omitempty"`
	Stock         int           `json:"stock"`
	Specs         *ProductSpecs `json:"specs,omitempty"`
	Reviews       []Review      `json:"reviews,omitempty"`
}

// Clone returns a deep copy. Orders and store snapshots rely on this so that
// later catalog mutations can never reach back into handed-out data.
func (p Product) Clone() Product {
	out := p
	if p.Images != nil {
		out.Images = append([]string(nil), p.Images...)
	}
	if p.Reviews != nil {
		out.Reviews = append([]Review(nil), p.Reviews...)
	}
	if p.Specs != nil {
		specs := *p.Specs
		out.Specs = &specs
	}
	return out
}

// Validate checks the fields an admin can get wrong on create/update.
func (p *Product) Validate() error {
	if p.ID == "" {
		return &ValidationError{Field: "id", Message: "id is required"}
	}
	if p.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if !p.Category.Valid() {
		return &ValidationError{Field: "category", Message: fmt.Sprintf("unknown category %q", p.Category)}
	}
	if p.Price < 0 {
		return &ValidationError{Field: "price", Message: "price cannot be negative"}
	}
	if p.OriginalPrice != 0 && p.OriginalPrice < p.Price {
		return &ValidationError{Field: "originalPrice", Message: "original price cannot be below price"}
	}
	if p.Stock < 0 {
		return &ValidationError{Field: "stock", Message: "stock cannot be negative"}
	}
	return nil
}

// ValidationError reports a malformed product field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
