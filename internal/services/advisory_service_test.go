// internal/services/advisory_service_test.go
package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriconnect/agriconnect-backend/internal/config"
)

func TestRecommendCrops(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		humidity int
		first    string
	}{
		{"warm and humid favors rice", 28, 65, "Rice"},
		{"moderate favors wheat", 22, 45, "Wheat"},
		{"cool favors barley", 18, 30, "Barley"},
		{"extreme heat falls back to millets", 42, 20, "Millets"},
		{"cold falls back to millets", 5, 90, "Millets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crops := RecommendCrops(tt.temp, tt.humidity)
			require.Len(t, crops, 3)
			assert.Equal(t, tt.first, crops[0].Name)
		})
	}
}

func TestGetAdvisoryWithoutAPIKeyServesDemo(t *testing.T) {
	svc := NewAdvisoryService(config.WeatherConfig{
		DefaultCity:    "Delhi",
		TimeoutSeconds: 1,
	})

	advisory, err := svc.GetAdvisory(context.Background(), "")
	require.NoError(t, err)

	assert.True(t, advisory.Weather.Demo)
	assert.Equal(t, "Delhi", advisory.Weather.City)
	assert.Equal(t, float64(28), advisory.Weather.Temperature)
	assert.Equal(t, 65, advisory.Weather.Humidity)
	require.NotEmpty(t, advisory.Crops)
	assert.Equal(t, "Rice", advisory.Crops[0].Name)
}

func TestGetAdvisoryUsesRequestedCity(t *testing.T) {
	svc := NewAdvisoryService(config.WeatherConfig{
		DefaultCity:    "Delhi",
		TimeoutSeconds: 1,
	})

	advisory, err := svc.GetAdvisory(context.Background(), "Amritsar")
	require.NoError(t, err)
	assert.Equal(t, "Amritsar", advisory.Weather.City)
}

func TestGetAdvisoryFetchesLiveWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Jaipur", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Jaipur",
			"main": {"temp": 22.5, "feels_like": 23.1, "humidity": 45, "pressure": 1008},
			"weather": [{"main": "Clear"}],
			"wind": {"speed": 4.2}
		}`))
	}))
	defer server.Close()

	svc := NewAdvisoryService(config.WeatherConfig{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		DefaultCity:    "Delhi",
		TimeoutSeconds: 2,
	})

	advisory, err := svc.GetAdvisory(context.Background(), "Jaipur")
	require.NoError(t, err)

	assert.False(t, advisory.Weather.Demo)
	assert.Equal(t, "Jaipur", advisory.Weather.City)
	assert.Equal(t, 22.5, advisory.Weather.Temperature)
	assert.Equal(t, "Clear", advisory.Weather.Condition)
	require.NotEmpty(t, advisory.Crops)
	assert.Equal(t, "Wheat", advisory.Crops[0].Name)
}

func TestGetAdvisoryFallsBackToDemoOnProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewAdvisoryService(config.WeatherConfig{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		DefaultCity:    "Delhi",
		TimeoutSeconds: 2,
	})

	advisory, err := svc.GetAdvisory(context.Background(), "Jaipur")
	require.NoError(t, err)
	assert.True(t, advisory.Weather.Demo)
	assert.Equal(t, "Jaipur", advisory.Weather.City)
}
