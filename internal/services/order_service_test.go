// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/agriconnect/agriconnect-backend/internal/models"
)

type OrderServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	catalog *CatalogService
	orders  *OrderService
	farmer  *models.User
	vendor  *models.User
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.catalog = NewCatalogService(suite.db)
	suite.orders = NewOrderService(suite.db, suite.catalog, false)
	suite.farmer = createTestUser(suite.T(), suite.db, "farmer", "Rajesh Kumar", models.UserRoleFarmer)
	suite.vendor = createTestUser(suite.T(), suite.db, "vendor", "Priya Traders", models.UserRoleVendor)
}

func (suite *OrderServiceTestSuite) createProduct(name string, quantity int, price float64) *models.Product {
	product, err := suite.catalog.CreateProduct(suite.farmer.ID, suite.farmer.Name, &CreateProductRequest{
		Name:     name,
		Category: "grains",
		Quantity: quantity,
		Price:    price,
		Location: "punjab",
	})
	suite.Require().NoError(err)
	return product
}

func (suite *OrderServiceTestSuite) placeOrder(productID uuid.UUID, quantity int) *models.Order {
	order, err := suite.orders.PlaceOrder(suite.vendor.ID, suite.vendor.Name, &PlaceOrderRequest{
		ProductID: productID,
		Quantity:  quantity,
		Address:   "12 Market Road, Ludhiana",
	})
	suite.Require().NoError(err)
	return order
}

func (suite *OrderServiceTestSuite) TestPlaceOrderDebitsStockAndSnapshotsListing() {
	product := suite.createProduct("Organic Wheat", 100, 28)

	order := suite.placeOrder(product.ID, 40)

	assert.Equal(suite.T(), models.OrderStatusPending, order.Status)
	assert.Equal(suite.T(), 40, order.Quantity)
	assert.Equal(suite.T(), float64(28), order.PricePerKg)
	assert.Equal(suite.T(), float64(1120), order.Total)
	assert.Equal(suite.T(), "Organic Wheat", order.ProductName)
	assert.Equal(suite.T(), suite.farmer.ID, order.FarmerID)
	assert.Equal(suite.T(), "Priya Traders", order.BuyerName)

	updated, err := suite.catalog.GetProduct(product.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 60, updated.Quantity)
}

func (suite *OrderServiceTestSuite) TestPlaceOrderForEntireStockRemovesListing() {
	product := suite.createProduct("Green Peas", 10, 35)

	order := suite.placeOrder(product.ID, 10)
	assert.Equal(suite.T(), float64(350), order.Total)

	_, err := suite.catalog.GetProduct(product.ID)
	assert.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func (suite *OrderServiceTestSuite) TestPlaceOrderInsufficientStockLeavesNothingBehind() {
	product := suite.createProduct("Fresh Tomatoes", 5, 20)

	_, err := suite.orders.PlaceOrder(suite.vendor.ID, suite.vendor.Name, &PlaceOrderRequest{
		ProductID: product.ID,
		Quantity:  8,
		Address:   "12 Market Road, Ludhiana",
	})
	assert.ErrorIs(suite.T(), err, ErrInsufficientStock)

	// Neither the listing nor the ledger may show a trace of the attempt.
	updated, err := suite.catalog.GetProduct(product.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 5, updated.Quantity)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Order{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *OrderServiceTestSuite) TestPlaceOrderUnknownProduct() {
	_, err := suite.orders.PlaceOrder(suite.vendor.ID, suite.vendor.Name, &PlaceOrderRequest{
		ProductID: uuid.New(),
		Quantity:  1,
		Address:   "12 Market Road, Ludhiana",
	})
	assert.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func (suite *OrderServiceTestSuite) TestPlaceOrderValidation() {
	product := suite.createProduct("Organic Wheat", 100, 28)

	_, err := suite.orders.PlaceOrder(suite.vendor.ID, suite.vendor.Name, &PlaceOrderRequest{
		ProductID: product.ID,
		Quantity:  0,
		Address:   "12 Market Road, Ludhiana",
	})
	assert.ErrorIs(suite.T(), err, ErrValidation)

	_, err = suite.orders.PlaceOrder(suite.vendor.ID, suite.vendor.Name, &PlaceOrderRequest{
		ProductID: product.ID,
		Quantity:  5,
	})
	assert.ErrorIs(suite.T(), err, ErrValidation)
}

func (suite *OrderServiceTestSuite) TestConfirmThenDeliver() {
	product := suite.createProduct("Organic Wheat", 100, 28)
	order := suite.placeOrder(product.ID, 40)

	confirmed, err := suite.orders.ConfirmOrder(order.ID, suite.farmer.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.OrderStatusConfirmed, confirmed.Status)

	delivered, err := suite.orders.MarkDelivered(order.ID, suite.farmer.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.OrderStatusDelivered, delivered.Status)
}

func (suite *OrderServiceTestSuite) TestConfirmTwiceFails() {
	product := suite.createProduct("Organic Wheat", 100, 28)
	order := suite.placeOrder(product.ID, 40)

	_, err := suite.orders.ConfirmOrder(order.ID, suite.farmer.ID)
	suite.Require().NoError(err)

	_, err = suite.orders.ConfirmOrder(order.ID, suite.farmer.ID)
	assert.ErrorIs(suite.T(), err, ErrInvalidTransition)
}

func (suite *OrderServiceTestSuite) TestDeliverBeforeConfirmFails() {
	product := suite.createProduct("Organic Wheat", 100, 28)
	order := suite.placeOrder(product.ID, 40)

	_, err := suite.orders.MarkDelivered(order.ID, suite.farmer.ID)
	assert.ErrorIs(suite.T(), err, ErrInvalidTransition)
}

func (suite *OrderServiceTestSuite) TestTransitionRequiresOwnership() {
	other := createTestUser(suite.T(), suite.db, "farmer2", "Sunil Verma", models.UserRoleFarmer)
	product := suite.createProduct("Organic Wheat", 100, 28)
	order := suite.placeOrder(product.ID, 40)

	_, err := suite.orders.ConfirmOrder(order.ID, other.ID)
	assert.ErrorIs(suite.T(), err, ErrNotOwner)
}

func (suite *OrderServiceTestSuite) TestRejectForfeitsStockByDefault() {
	product := suite.createProduct("Organic Wheat", 100, 28)
	order := suite.placeOrder(product.ID, 40)

	suite.Require().NoError(suite.orders.RejectOrder(order.ID, suite.farmer.ID))

	_, err := suite.orders.GetOrder(order.ID)
	assert.ErrorIs(suite.T(), err, ErrOrderNotFound)

	updated, err := suite.catalog.GetProduct(product.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 60, updated.Quantity)
}

func (suite *OrderServiceTestSuite) TestRejectRestocksWhenEnabled() {
	orders := NewOrderService(suite.db, suite.catalog, true)
	product := suite.createProduct("Organic Wheat", 100, 28)
	order := suite.placeOrder(product.ID, 40)

	suite.Require().NoError(orders.RejectOrder(order.ID, suite.farmer.ID))

	updated, err := suite.catalog.GetProduct(product.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 100, updated.Quantity)
}

func (suite *OrderServiceTestSuite) TestRejectRestockResurrectsRemovedListing() {
	orders := NewOrderService(suite.db, suite.catalog, true)
	product := suite.createProduct("Green Peas", 10, 35)
	order := suite.placeOrder(product.ID, 10)

	_, err := suite.catalog.GetProduct(product.ID)
	suite.Require().ErrorIs(err, ErrProductNotFound)

	suite.Require().NoError(orders.RejectOrder(order.ID, suite.farmer.ID))

	updated, err := suite.catalog.GetProduct(product.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 10, updated.Quantity)
}

func (suite *OrderServiceTestSuite) TestRejectConfirmedOrderFails() {
	product := suite.createProduct("Organic Wheat", 100, 28)
	order := suite.placeOrder(product.ID, 40)

	_, err := suite.orders.ConfirmOrder(order.ID, suite.farmer.ID)
	suite.Require().NoError(err)

	err = suite.orders.RejectOrder(order.ID, suite.farmer.ID)
	assert.ErrorIs(suite.T(), err, ErrInvalidTransition)
}

func (suite *OrderServiceTestSuite) TestOrdersForFarmerAndBuyer() {
	product := suite.createProduct("Organic Wheat", 100, 28)
	first := suite.placeOrder(product.ID, 10)
	second := suite.placeOrder(product.ID, 20)

	farmerOrders, err := suite.orders.OrdersForFarmer(suite.farmer.ID)
	suite.Require().NoError(err)
	suite.Require().Len(farmerOrders, 2)
	assert.Equal(suite.T(), first.ID, farmerOrders[0].ID)
	assert.Equal(suite.T(), second.ID, farmerOrders[1].ID)

	buyerOrders, err := suite.orders.OrdersForBuyer(suite.vendor.ID)
	suite.Require().NoError(err)
	assert.Len(suite.T(), buyerOrders, 2)

	otherOrders, err := suite.orders.OrdersForBuyer(suite.farmer.ID)
	suite.Require().NoError(err)
	assert.Empty(suite.T(), otherOrders)
}

func (suite *OrderServiceTestSuite) TestFarmerDashboardCountsDeliveredRevenueOnly() {
	product := suite.createProduct("Organic Wheat", 200, 28)

	delivered := suite.placeOrder(product.ID, 40)
	_, err := suite.orders.ConfirmOrder(delivered.ID, suite.farmer.ID)
	suite.Require().NoError(err)
	_, err = suite.orders.MarkDelivered(delivered.ID, suite.farmer.ID)
	suite.Require().NoError(err)

	suite.placeOrder(product.ID, 10) // still pending

	stats, err := suite.orders.FarmerDashboard(suite.farmer.ID)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), int64(1), stats.ProductCount)
	assert.Equal(suite.T(), int64(1), stats.PendingOrders)
	assert.Equal(suite.T(), float64(1120), stats.Revenue)
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
