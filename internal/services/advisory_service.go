// internal/services/advisory_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/agriconnect/agriconnect-backend/internal/config"
)

// AdvisoryService turns current weather for a region into crop suggestions.
// Without an API key (or when the weather provider is unreachable) it serves
// a canned demo report so the advisory stays usable offline.
type AdvisoryService struct {
	cfg    config.WeatherConfig
	client *http.Client
}

type WeatherReport struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
	Condition   string  `json:"condition"`
	Demo        bool    `json:"demo,omitempty"`
}

type CropRecommendation struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type Advisory struct {
	Weather WeatherReport        `json:"weather"`
	Crops   []CropRecommendation `json:"crops"`
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func NewAdvisoryService(cfg config.WeatherConfig) *AdvisoryService {
	return &AdvisoryService{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

func (s *AdvisoryService) GetAdvisory(ctx context.Context, city string) (*Advisory, error) {
	if city == "" {
		city = s.cfg.DefaultCity
	}

	if s.cfg.APIKey == "" {
		report := demoWeather(city)
		return &Advisory{
			Weather: report,
			Crops:   RecommendCrops(report.Temperature, report.Humidity),
		}, nil
	}

	report, err := s.fetchWeather(ctx, city)
	if err != nil {
		logrus.WithError(err).WithField("city", city).Warn("Weather fetch failed, serving demo advisory")
		demo := demoWeather(city)
		return &Advisory{
			Weather: demo,
			Crops:   RecommendCrops(demo.Temperature, demo.Humidity),
		}, nil
	}

	return &Advisory{
		Weather: *report,
		Crops:   RecommendCrops(report.Temperature, report.Humidity),
	}, nil
}

func (s *AdvisoryService) fetchWeather(ctx context.Context, city string) (*WeatherReport, error) {
	endpoint := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		s.cfg.BaseURL, url.QueryEscape(city), url.QueryEscape(s.cfg.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	condition := ""
	if len(payload.Weather) > 0 {
		condition = payload.Weather[0].Main
	}

	return &WeatherReport{
		City:        payload.Name,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		Pressure:    payload.Main.Pressure,
		WindSpeed:   payload.Wind.Speed,
		Condition:   condition,
	}, nil
}

// RecommendCrops maps temperature and humidity bands to crop suggestions.
func RecommendCrops(temp float64, humidity int) []CropRecommendation {
	switch {
	case temp >= 25 && temp <= 35 && humidity >= 50 && humidity <= 80:
		return []CropRecommendation{
			{Name: "Rice", Reason: "Perfect temperature and humidity for paddy cultivation"},
			{Name: "Cotton", Reason: "Ideal warm and humid conditions"},
			{Name: "Sugarcane", Reason: "Excellent climate for sugarcane growth"},
		}
	case temp >= 20 && temp <= 30 && humidity >= 40 && humidity <= 70:
		return []CropRecommendation{
			{Name: "Wheat", Reason: "Moderate temperature suitable for wheat"},
			{Name: "Maize", Reason: "Good conditions for corn cultivation"},
			{Name: "Vegetables", Reason: "Suitable for various vegetables"},
		}
	case temp >= 15 && temp <= 25:
		return []CropRecommendation{
			{Name: "Barley", Reason: "Cool weather ideal for barley"},
			{Name: "Potato", Reason: "Perfect temperature for tuber crops"},
			{Name: "Peas", Reason: "Excellent for legume cultivation"},
		}
	default:
		return []CropRecommendation{
			{Name: "Millets", Reason: "Hardy crops for varying conditions"},
			{Name: "Pulses", Reason: "Adaptable to different climates"},
			{Name: "Groundnut", Reason: "Versatile crop for different conditions"},
		}
	}
}

func demoWeather(city string) WeatherReport {
	return WeatherReport{
		City:        city,
		Temperature: 28,
		FeelsLike:   30,
		Humidity:    65,
		Pressure:    1013,
		WindSpeed:   3.5,
		Condition:   "Partly Cloudy",
		Demo:        true,
	}
}
