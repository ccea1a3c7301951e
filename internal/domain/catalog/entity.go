// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"gorm.io/gorm"
)

// Product represents an item offered in the shop. Category is a free-text
// label rather than a foreign key: deleting a Category row leaves the label
// on the product untouched.
type Product struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null;size:255" json:"name"`
	Price         int64          `gorm:"not null" json:"price"` // smallest currency unit
	OriginalPrice int64          `json:"original_price"`        // pre-discount price, 0 when not discounted
	Description   string         `gorm:"type:text" json:"description"`
	Category      string         `gorm:"size:255;index" json:"category"`
	Image         string         `gorm:"size:500" json:"image"` // primary image path
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images,omitempty"`
}

// ProductImage represents a gallery image exclusively owned by its product.
type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Path      string    `gorm:"not null;size:500" json:"path"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// Category represents a browse filter label. Products reference it by name
// only, so category rows can come and go independently of the catalog.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null;size:255" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides
func (Product) TableName() string      { return "products" }
func (ProductImage) TableName() string { return "product_images" }
func (Category) TableName() string     { return "categories" }

// IsDiscounted reports whether the product carries a pre-discount price.
func (p *Product) IsDiscounted() bool {
	return p.OriginalPrice > 0 && p.Price < p.OriginalPrice
}

// DiscountPercentage returns the discount relative to the original price.
func (p *Product) DiscountPercentage() int {
	if !p.IsDiscounted() {
		return 0
	}
	return int(((p.OriginalPrice - p.Price) * 100) / p.OriginalPrice)
}
