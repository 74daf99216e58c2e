package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/skycast/frontend/internal/domain"
	"github.com/skycast/frontend/pkg/utils"
)

const (
	// DefaultBaseURL is the OpenWeatherMap current weather endpoint
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

	// RequestTimeout bounds the single outbound call; there is no retry.
	RequestTimeout = 6 * time.Second
)

// WeatherService looks up current conditions for a city
type WeatherService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewWeatherService creates a new weather service. The API key is read-only
// for the lifetime of the service; an empty key is accepted and the provider
// will reject requests at call time.
func NewWeatherService(apiKey, baseURL string) *WeatherService {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &WeatherService{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

// OpenWeatherResponse represents the OpenWeatherMap API response.
// Every field is optional; error responses only carry cod and message.
type OpenWeatherResponse struct {
	Name *string `json:"name"`
	Sys  *struct {
		Country *string `json:"country"`
	} `json:"sys"`
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description *string `json:"description"`
		Icon        *string `json:"icon"`
	} `json:"weather"`
	Message *string `json:"message"`
}

// Lookup fetches current weather for city.
//
// Errors are ErrEmptyInput (no request made), *domain.NetworkError or
// *domain.ProviderError.
func (s *WeatherService) Lookup(ctx context.Context, city string) (domain.WeatherView, error) {
	city = utils.CleanCity(city)
	if city == "" {
		return domain.WeatherView{}, domain.ErrEmptyInput
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.requestURL(city), nil)
	if err != nil {
		return domain.WeatherView{}, fmt.Errorf("weather: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.WeatherView{}, &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	// A body that cannot be decoded is treated as a transport failure,
	// whatever the status.
	var owResp OpenWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&owResp); err != nil {
		return domain.WeatherView{}, &domain.NetworkError{Err: fmt.Errorf("decode response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		provErr := &domain.ProviderError{StatusCode: resp.StatusCode}
		if owResp.Message != nil {
			provErr.Message = *owResp.Message
		}
		return domain.WeatherView{}, provErr
	}

	return owResp.toView(), nil
}

func (s *WeatherService) requestURL(city string) string {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")
	return s.baseURL + "?" + params.Encode()
}

// toView maps the provider payload, leaving absent fields empty
func (r OpenWeatherResponse) toView() domain.WeatherView {
	var view domain.WeatherView

	if r.Name != nil {
		view.City = *r.Name
	}
	if r.Sys != nil && r.Sys.Country != nil {
		view.Country = *r.Sys.Country
	}
	if r.Main != nil {
		view.Temperature = r.Main.Temp
		view.FeelsLike = r.Main.FeelsLike
		view.Humidity = r.Main.Humidity
	}
	if len(r.Weather) > 0 {
		if d := r.Weather[0].Description; d != nil {
			view.Description = utils.TitleCase(*d)
		}
		if i := r.Weather[0].Icon; i != nil {
			view.Icon = *i
		}
	}

	return view
}
