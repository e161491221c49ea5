// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agriconnect/agriconnect-backend/internal/models"
	"github.com/agriconnect/agriconnect-backend/internal/utils"
)

// CatalogService owns the set of active produce listings.
type CatalogService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Category    string  `json:"category" validate:"required,crop_category"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Location    string  `json:"location" validate:"required,max=100"`
	Organic     bool    `json:"organic"`
	Description string  `json:"description,omitempty"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	Category *models.ProductCategory `json:"category,omitempty"`
	Location string                  `json:"location,omitempty"`
	Organic  *bool                   `json:"organic,omitempty"`
	PriceMin *float64                `json:"price_min,omitempty"`
	PriceMax *float64                `json:"price_max,omitempty"`
	FarmerID *uuid.UUID              `json:"farmer_id,omitempty"`
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) CreateProduct(farmerID uuid.UUID, farmerName string, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	product := &models.Product{
		Name:        req.Name,
		Category:    models.ProductCategory(req.Category),
		Quantity:    req.Quantity,
		Price:       req.Price,
		Location:    strings.ToLower(req.Location),
		Organic:     req.Organic,
		Description: req.Description,
		FarmerID:    farmerID,
		FarmerName:  farmerName,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *CatalogService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) DeleteProduct(id uuid.UUID, farmerID uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if product.FarmerID != farmerID {
		return fmt.Errorf("%w: product belongs to another farmer", ErrNotOwner)
	}

	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// DecrementStock debits amount kilograms inside the caller's transaction.
// The guarded UPDATE only matches rows that still hold enough stock, so two
// concurrent orders can never both pass the availability check. A listing
// that reaches exactly zero is removed from the catalog in the same
// transaction.
func (s *CatalogService) DecrementStock(tx *gorm.DB, id uuid.UUID, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	res := tx.Model(&models.Product{}).
		Where("id = ? AND quantity >= ?", id, amount).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", amount))
	if res.Error != nil {
		return fmt.Errorf("failed to update stock: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		var product models.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}
		return fmt.Errorf("%w: requested %d kg, only %d kg available", ErrInsufficientStock, amount, product.Quantity)
	}

	var product models.Product
	if err := tx.First(&product, "id = ?", id).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if product.Quantity == 0 {
		if err := tx.Delete(&product).Error; err != nil {
			return fmt.Errorf("failed to remove depleted product: %w", err)
		}
	}

	return nil
}

// RestockProduct returns amount kilograms to a listing, resurrecting it if
// the debit had removed it at zero.
func (s *CatalogService) RestockProduct(tx *gorm.DB, id uuid.UUID, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	res := tx.Unscoped().Model(&models.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", amount),
			"deleted_at": nil,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to restock product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (s *CatalogService) SearchProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	// Apply filters (conjunctive)
	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}

	if params.Location != "" {
		query = query.Where("location = ?", strings.ToLower(params.Location))
	}

	if params.Organic != nil && *params.Organic {
		query = query.Where("organic = ?", true)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	if params.PriceMin != nil {
		query = query.Where("price >= ?", *params.PriceMin)
	}

	if params.PriceMax != nil {
		query = query.Where("price <= ?", *params.PriceMax)
	}

	if params.FarmerID != nil {
		query = query.Where("farmer_id = ?", *params.FarmerID)
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	// Apply sorting
	allowedSortFields := []string{"created_at", "price", "quantity"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)

	// Apply pagination
	query = utils.ApplyPagination(query, params.PaginationParams)

	// Execute query
	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *CatalogService) FarmerProducts(farmerID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("farmer_id = ?", farmerID).Order("created_at desc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch farmer products: %w", err)
	}
	return products, nil
}
