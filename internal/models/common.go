// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// BeforeCreate assigns a collision-resistant id so the id scheme works the
// same on every database backend.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Enums
type UserRole string

const (
	UserRoleFarmer UserRole = "farmer"
	UserRoleHelper UserRole = "helper"
	UserRoleVendor UserRole = "vendor"
	UserRoleAdmin  UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleFarmer, UserRoleHelper, UserRoleVendor, UserRoleAdmin:
		return true
	}
	return false
}

type ProductCategory string

const (
	CategoryGrains     ProductCategory = "grains"
	CategoryVegetables ProductCategory = "vegetables"
	CategoryFruits     ProductCategory = "fruits"
	CategoryPulses     ProductCategory = "pulses"
	CategorySpices     ProductCategory = "spices"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryGrains, CategoryVegetables, CategoryFruits, CategoryPulses, CategorySpices:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
)

type ChatSender string

const (
	ChatSenderUser   ChatSender = "user"
	ChatSenderExpert ChatSender = "expert"
)
