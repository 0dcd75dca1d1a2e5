// internal/domain/product/entity.go
package product

// Product represents a catalog entry. Products are seeded once at startup and
// never mutated afterwards.
type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string  `gorm:"not null;size:255" json:"name"`
	Category    string  `gorm:"not null;size:100;index" json:"category"`
	Price       int64   `gorm:"not null" json:"price"` // Price in the smallest currency unit
	Rating      float64 `json:"rating"`
	Badge       string  `gorm:"size:100" json:"badge"`
	Stock       int     `gorm:"default:0" json:"stock"`
	Delivery    string  `gorm:"size:100" json:"delivery"` // Delivery estimate shown to shoppers
	Offer       string  `gorm:"size:255" json:"offer"`
	Image       string  `gorm:"size:500" json:"image"`
	Description string  `gorm:"type:text" json:"description"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}
