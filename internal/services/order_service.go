// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agriconnect/agriconnect-backend/internal/models"
	"github.com/agriconnect/agriconnect-backend/internal/utils"
)

// OrderService mediates order placement against the catalog and manages the
// order lifecycle: pending -> confirmed -> delivered, or pending -> rejected
// (rejection removes the order rather than storing a terminal state).
type OrderService struct {
	db              *gorm.DB
	catalog         *CatalogService
	restockOnReject bool
}

type PlaceOrderRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	Address   string    `json:"address" validate:"required"`
}

type FarmerStats struct {
	ProductCount  int64   `json:"product_count"`
	PendingOrders int64   `json:"pending_orders"`
	Revenue       float64 `json:"revenue"`
}

func NewOrderService(db *gorm.DB, catalog *CatalogService, restockOnReject bool) *OrderService {
	return &OrderService{
		db:              db,
		catalog:         catalog,
		restockOnReject: restockOnReject,
	}
}

// PlaceOrder debits the catalog and records the order in one transaction, so
// a reader never sees a debited product without its order or vice versa. The
// order snapshots the product's current price, name and farmer identity.
func (s *OrderService) PlaceOrder(buyerID uuid.UUID, buyerName string, req *PlaceOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var order *models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		if req.Quantity > product.Quantity {
			return fmt.Errorf("%w: requested %d kg, only %d kg available", ErrInsufficientStock, req.Quantity, product.Quantity)
		}

		if err := s.catalog.DecrementStock(tx, product.ID, req.Quantity); err != nil {
			return err
		}

		order = &models.Order{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    req.Quantity,
			PricePerKg:  product.Price,
			Total:       float64(req.Quantity) * product.Price,
			BuyerID:     buyerID,
			BuyerName:   buyerName,
			FarmerID:    product.FarmerID,
			FarmerName:  product.FarmerName,
			Address:     req.Address,
			Status:      models.OrderStatusPending,
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

// ConfirmOrder moves a pending order to confirmed.
func (s *OrderService) ConfirmOrder(orderID uuid.UUID, farmerID uuid.UUID) (*models.Order, error) {
	return s.transition(orderID, farmerID, models.OrderStatusPending, models.OrderStatusConfirmed)
}

// MarkDelivered moves a confirmed order to delivered. Delivered orders feed
// the farmer's revenue figure.
func (s *OrderService) MarkDelivered(orderID uuid.UUID, farmerID uuid.UUID) (*models.Order, error) {
	return s.transition(orderID, farmerID, models.OrderStatusConfirmed, models.OrderStatusDelivered)
}

func (s *OrderService) transition(orderID, farmerID uuid.UUID, from, to models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.FarmerID != farmerID {
		return nil, fmt.Errorf("%w: order belongs to another farmer", ErrNotOwner)
	}

	if order.Status != from {
		return nil, fmt.Errorf("%w: cannot move order from %s to %s", ErrInvalidTransition, order.Status, to)
	}

	if err := s.db.Model(&order).Update("status", to).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order.Status = to
	return &order, nil
}

// RejectOrder removes a pending order entirely. Whether the debited stock is
// returned to the listing is a deployment policy (restock_on_reject); the
// historical behavior forfeits it.
func (s *OrderService) RejectOrder(orderID uuid.UUID, farmerID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		if order.FarmerID != farmerID {
			return fmt.Errorf("%w: order belongs to another farmer", ErrNotOwner)
		}

		if order.Status != models.OrderStatusPending {
			return fmt.Errorf("%w: only pending orders can be rejected", ErrInvalidTransition)
		}

		if err := tx.Delete(&order).Error; err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}

		if s.restockOnReject {
			if err := s.catalog.RestockProduct(tx, order.ProductID, order.Quantity); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *OrderService) GetOrder(orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

// OrdersForFarmer returns all orders sold by the farmer, oldest first.
func (s *OrderService) OrdersForFarmer(farmerID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("farmer_id = ?", farmerID).Order("created_at asc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch farmer orders: %w", err)
	}
	return orders, nil
}

// OrdersForBuyer returns all orders placed by the buyer, oldest first.
func (s *OrderService) OrdersForBuyer(buyerID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("buyer_id = ?", buyerID).Order("created_at asc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch buyer orders: %w", err)
	}
	return orders, nil
}

// FarmerDashboard aggregates the numbers shown on the farmer dashboard:
// active listings, orders awaiting action, and revenue over delivered orders.
func (s *OrderService) FarmerDashboard(farmerID uuid.UUID) (*FarmerStats, error) {
	stats := &FarmerStats{}

	if err := s.db.Model(&models.Product{}).Where("farmer_id = ?", farmerID).Count(&stats.ProductCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	if err := s.db.Model(&models.Order{}).
		Where("farmer_id = ? AND status = ?", farmerID, models.OrderStatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}

	if err := s.db.Model(&models.Order{}).
		Where("farmer_id = ? AND status = ?", farmerID, models.OrderStatusDelivered).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.Revenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return stats, nil
}
