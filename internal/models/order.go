// internal/models/order.go
package models

import "github.com/google/uuid"

// Order snapshots product price, name and both party identities at placement
// time, so later listing edits never change what was agreed.
type Order struct {
	BaseModel
	ProductID   uuid.UUID   `json:"product_id" gorm:"type:uuid;not null;index"`
	ProductName string      `json:"product_name" gorm:"size:255;not null"`
	Quantity    int         `json:"quantity" gorm:"not null"`
	PricePerKg  float64     `json:"price_per_kg" gorm:"type:decimal(10,2);not null"`
	Total       float64     `json:"total" gorm:"type:decimal(12,2);not null"`
	BuyerID     uuid.UUID   `json:"buyer_id" gorm:"type:uuid;not null;index"`
	BuyerName   string      `json:"buyer_name" gorm:"size:100;not null"`
	FarmerID    uuid.UUID   `json:"farmer_id" gorm:"type:uuid;not null;index"`
	FarmerName  string      `json:"farmer_name" gorm:"size:100;not null"`
	Address     string      `json:"address" gorm:"type:text;not null"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
}

func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

func (o *Order) IsDelivered() bool {
	return o.Status == OrderStatusDelivered
}
