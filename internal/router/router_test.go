// internal/router/router_test.go
package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/agriconnect/agriconnect-backend/internal/config"
	"github.com/agriconnect/agriconnect-backend/internal/database"
	"github.com/agriconnect/agriconnect-backend/internal/i18n"
)

type RouterTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine

	requestCount int
	farmerToken  string
	vendorToken  string
}

func (suite *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(suite.T(), err)
	sqlDB, err := db.DB()
	require.NoError(suite.T(), err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(suite.T(), database.RunMigrations(db))
	require.NoError(suite.T(), database.SeedInitialData(db, true))
	require.NoError(suite.T(), i18n.Initialize("../i18n/locales"))

	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  24,
			RefreshTokenTTL: 168,
		},
		Marketplace: config.MarketplaceConfig{
			SeedSampleData: true,
		},
		Weather: config.WeatherConfig{
			DefaultCity:    "Delhi",
			TimeoutSeconds: 1,
		},
	}

	suite.db = db
	suite.router = Initialize(db, cfg)

	suite.farmerToken = suite.login("farmer", "farmer123")
	suite.vendorToken = suite.login("vendor", "vendor123")
}

func (suite *RouterTestSuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	// Spread requests over distinct client addresses so the per-IP rate
	// limiters never throttle the suite.
	suite.requestCount++
	req.RemoteAddr = fmt.Sprintf("203.0.113.%d:52000", suite.requestCount%250+1)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (suite *RouterTestSuite) login(username, password string) string {
	w := suite.request("POST", "/v1/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())

	resp := suite.decode(w)
	data := resp["data"].(map[string]interface{})
	return data["token"].(string)
}

func (suite *RouterTestSuite) findProduct(name string) map[string]interface{} {
	w := suite.request("GET", "/v1/products?limit=100", "", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	resp := suite.decode(w)
	for _, raw := range resp["data"].([]interface{}) {
		product := raw.(map[string]interface{})
		if product["name"] == name {
			return product
		}
	}
	suite.T().Fatalf("seeded product %q not found", name)
	return nil
}

func (suite *RouterTestSuite) TestHealthCheck() {
	w := suite.request("GET", "/health", "", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *RouterTestSuite) TestLoginRejectsBadCredentials() {
	w := suite.request("POST", "/v1/auth/login", "", gin.H{
		"username": "farmer",
		"password": "wrong",
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *RouterTestSuite) TestBrowseCatalogIsPublic() {
	w := suite.request("GET", "/v1/products?category=grains", "", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	resp := suite.decode(w)
	assert.True(suite.T(), resp["success"].(bool))
	assert.NotEmpty(suite.T(), resp["data"])
}

func (suite *RouterTestSuite) TestCreateProductRequiresFarmerRole() {
	payload := gin.H{
		"name":     "Red Onions",
		"category": "vegetables",
		"quantity": 80,
		"price":    15,
		"location": "nashik",
	}

	w := suite.request("POST", "/v1/products", "", payload)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = suite.request("POST", "/v1/products", suite.vendorToken, payload)
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	w = suite.request("POST", "/v1/products", suite.farmerToken, payload)
	assert.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
}

func (suite *RouterTestSuite) TestOrderLifecycle() {
	product := suite.findProduct("Organic Wheat")

	w := suite.request("POST", "/v1/orders", suite.vendorToken, gin.H{
		"product_id": product["id"],
		"quantity":   40,
		"address":    "12 Market Road, Ludhiana",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	resp := suite.decode(w)
	order := resp["data"].(map[string]interface{})["order"].(map[string]interface{})
	assert.Equal(suite.T(), "pending", order["status"])
	assert.Equal(suite.T(), float64(1120), order["total"])

	orderID := order["id"].(string)

	// Only the selling farmer may confirm.
	w = suite.request("POST", "/v1/orders/"+orderID+"/confirm", suite.vendorToken, nil)
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	w = suite.request("POST", "/v1/orders/"+orderID+"/confirm", suite.farmerToken, nil)
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())

	w = suite.request("POST", "/v1/orders/"+orderID+"/deliver", suite.farmerToken, nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	// A delivered order cannot be rejected.
	w = suite.request("POST", "/v1/orders/"+orderID+"/reject", suite.farmerToken, nil)
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *RouterTestSuite) TestOversellReturnsConflict() {
	product := suite.findProduct("Turmeric Powder")

	w := suite.request("POST", "/v1/orders", suite.vendorToken, gin.H{
		"product_id": product["id"],
		"quantity":   100000,
		"address":    "12 Market Road, Ludhiana",
	})
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *RouterTestSuite) TestAdvisoryServesDemoReport() {
	w := suite.request("GET", "/v1/advisory?city=Pune", "", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	resp := suite.decode(w)
	advisory := resp["data"].(map[string]interface{})["advisory"].(map[string]interface{})
	weather := advisory["weather"].(map[string]interface{})
	assert.Equal(suite.T(), "Pune", weather["city"])
	assert.Equal(suite.T(), true, weather["demo"])
	assert.NotEmpty(suite.T(), advisory["crops"])
}

func (suite *RouterTestSuite) TestExpertChatFlow() {
	w := suite.request("GET", "/v1/experts", "", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("POST", "/v1/experts/dr_sharma/sessions", suite.farmerToken, nil)
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	resp := suite.decode(w)
	data := resp["data"].(map[string]interface{})
	sessionID := data["session"].(map[string]interface{})["id"].(string)
	assert.NotEmpty(suite.T(), data["greeting"].(map[string]interface{})["body"])

	w = suite.request("POST", "/v1/chat/sessions/"+sessionID+"/messages", suite.farmerToken, gin.H{
		"message": "How do I start organic farming?",
	})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())

	resp = suite.decode(w)
	reply := resp["data"].(map[string]interface{})["reply"].(map[string]interface{})
	assert.Equal(suite.T(), "expert", reply["sender"])

	// Another user cannot read the session.
	w = suite.request("GET", "/v1/chat/sessions/"+sessionID, suite.vendorToken, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RouterTestSuite) TestFarmerDashboard() {
	w := suite.request("GET", "/v1/dashboard/farmer", suite.farmerToken, nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	resp := suite.decode(w)
	stats := resp["data"].(map[string]interface{})["stats"].(map[string]interface{})
	assert.Contains(suite.T(), stats, "product_count")
	assert.Contains(suite.T(), stats, "pending_orders")
	assert.Contains(suite.T(), stats, "revenue")
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
