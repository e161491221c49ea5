// internal/models/product.go
package models

import "github.com/google/uuid"

// Product is a single crop listing. Quantity is kilograms available; a
// listing whose quantity reaches zero is removed from the catalog.
type Product struct {
	BaseModel
	Name        string          `json:"name" gorm:"size:255;not null"`
	Category    ProductCategory `json:"category" gorm:"type:varchar(20);not null;index"`
	Description string          `json:"description" gorm:"type:text"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	Price       float64         `json:"price" gorm:"type:decimal(10,2);not null"`
	Location    string          `json:"location" gorm:"size:100;index"`
	Organic     bool            `json:"organic" gorm:"default:false;index"`
	FarmerID    uuid.UUID       `json:"farmer_id" gorm:"type:uuid;not null;index"`
	FarmerName  string          `json:"farmer_name" gorm:"size:100;not null"`

	Farmer *User `json:"farmer,omitempty" gorm:"foreignKey:FarmerID"`
}

// InStock reports whether the requested quantity can currently be served.
func (p *Product) InStock(quantity int) bool {
	return quantity > 0 && p.Quantity >= quantity
}
