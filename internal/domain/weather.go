package domain

import (
	"fmt"
	"net/url"
)

// WeatherView is the display-ready result of a single city lookup.
// Optional provider fields are nil (or empty) when the provider omits them.
type WeatherView struct {
	City        string   `json:"city"`
	Country     string   `json:"country,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	FeelsLike   *float64 `json:"feels_like,omitempty"`
	Humidity    *int     `json:"humidity,omitempty"`
	Description string   `json:"description"`
	Icon        string   `json:"icon,omitempty"`
}

// Location joins city and country for headings, e.g. "Paris, FR".
func (w WeatherView) Location() string {
	switch {
	case w.City != "" && w.Country != "":
		return w.City + ", " + w.Country
	case w.City != "":
		return w.City
	default:
		return w.Country
	}
}

// TemperatureText formats the temperature in °C, or "n/a" when absent
func (w WeatherView) TemperatureText() string {
	return formatCelsius(w.Temperature)
}

// FeelsLikeText formats the apparent temperature in °C, or "n/a" when absent
func (w WeatherView) FeelsLikeText() string {
	return formatCelsius(w.FeelsLike)
}

// HumidityText formats relative humidity, or "n/a" when absent
func (w WeatherView) HumidityText() string {
	if w.Humidity == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d%%", *w.Humidity)
}

// IconURL returns the provider image for the condition icon, or "" when there is none.
func (w WeatherView) IconURL() string {
	if w.Icon == "" {
		return ""
	}
	return "https://openweathermap.org/img/wn/" + url.PathEscape(w.Icon) + "@2x.png"
}

func formatCelsius(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%g °C", *v)
}
