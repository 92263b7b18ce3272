// Package weather fetches marine-relevant forecasts from Open-Meteo for
// known ports and derives operational insights for the laytime desk.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"sofdesk/internal/config"
	"sofdesk/internal/ports"
)

// Current is the present-moment observation at the port.
type Current struct {
	TemperatureC     float64 `json:"temperature_c"`
	HumidityPercent  float64 `json:"humidity_percent"`
	WindSpeedKmh     float64 `json:"wind_speed_kmh"`
	WindDirectionDeg float64 `json:"wind_direction_deg"`
	PrecipitationMm  float64 `json:"precipitation_mm"`
	Description      string  `json:"description"`
}

// ForecastDay is one day of the outlook.
type ForecastDay struct {
	Date            string  `json:"date"`
	Weekday         string  `json:"weekday"`
	TempMaxC        float64 `json:"temp_max_c"`
	TempMinC        float64 `json:"temp_min_c"`
	PrecipitationMm float64 `json:"precipitation_mm"`
	WindMaxKmh      float64 `json:"wind_max_kmh"`
}

// Report is the full weather answer for one port.
type Report struct {
	Port            string        `json:"port"`
	Current         Current       `json:"current"`
	Forecast        []ForecastDay `json:"forecast"`
	Insights        []string      `json:"insights"`
	Recommendations []string      `json:"recommendations"`
}

// Client queries Open-Meteo and caches reports per port.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *gocache.Cache
	ttl     time.Duration
}

// NewClient builds a weather client from config. Reports are cached per
// port for the configured TTL so repeated chat lookups stay cheap.
func NewClient(cfg config.WeatherConfig) *Client {
	ttl := time.Duration(cfg.CacheTTLMins) * time.Minute
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		cache:   gocache.New(ttl, 2*ttl),
		ttl:     ttl,
	}
}

// openMeteoResponse mirrors the fields of the Open-Meteo forecast API
// that the report uses.
type openMeteoResponse struct {
	Current struct {
		Temperature2m      float64 `json:"temperature_2m"`
		RelativeHumidity2m float64 `json:"relative_humidity_2m"`
		WindSpeed10m       float64 `json:"wind_speed_10m"`
		WindDirection10m   float64 `json:"wind_direction_10m"`
		Precipitation      float64 `json:"precipitation"`
		WeatherCode        int     `json:"weather_code"`
	} `json:"current"`
	Daily struct {
		Time             []string  `json:"time"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
		WindSpeed10mMax  []float64 `json:"wind_speed_10m_max"`
	} `json:"daily"`
}

// ForPort resolves the port, fetches (or serves from cache) the current
// conditions and a three-day outlook, and attaches maritime insights.
func (c *Client) ForPort(ctx context.Context, portName string) (*Report, error) {
	p, err := ports.Lookup(portName)
	if err != nil {
		return nil, err
	}

	if cached, ok := c.cache.Get(p.UNLocode); ok {
		return cached.(*Report), nil
	}

	raw, err := c.fetch(ctx, p.Coordinates)
	if err != nil {
		return nil, fmt.Errorf("fetching weather for %s: %w", p.Name, err)
	}

	report := buildReport(p.Name, raw)
	c.cache.Set(p.UNLocode, report, c.ttl)
	log.Printf("weather.ForPort: fetched report for %s (code %s)", p.Name, p.UNLocode)
	return report, nil
}

func (c *Client) fetch(ctx context.Context, coords ports.Coordinates) (*openMeteoResponse, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%g", coords.Lat))
	q.Set("longitude", fmt.Sprintf("%g", coords.Lon))
	q.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,wind_direction_10m,precipitation,weather_code")
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,wind_speed_10m_max")
	q.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling open-meteo: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open-meteo error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed openMeteoResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	return &parsed, nil
}

func buildReport(portName string, raw *openMeteoResponse) *Report {
	current := Current{
		TemperatureC:     raw.Current.Temperature2m,
		HumidityPercent:  raw.Current.RelativeHumidity2m,
		WindSpeedKmh:     raw.Current.WindSpeed10m,
		WindDirectionDeg: raw.Current.WindDirection10m,
		PrecipitationMm:  raw.Current.Precipitation,
		Description:      DescribeCode(raw.Current.WeatherCode),
	}

	days := len(raw.Daily.Time)
	if days > 3 {
		days = 3
	}
	forecast := make([]ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		day := ForecastDay{Date: raw.Daily.Time[i]}
		if t, err := time.Parse("2006-01-02", raw.Daily.Time[i]); err == nil {
			day.Weekday = t.Weekday().String()
		}
		if i < len(raw.Daily.Temperature2mMax) {
			day.TempMaxC = raw.Daily.Temperature2mMax[i]
		}
		if i < len(raw.Daily.Temperature2mMin) {
			day.TempMinC = raw.Daily.Temperature2mMin[i]
		}
		if i < len(raw.Daily.PrecipitationSum) {
			day.PrecipitationMm = raw.Daily.PrecipitationSum[i]
		}
		if i < len(raw.Daily.WindSpeed10mMax) {
			day.WindMaxKmh = raw.Daily.WindSpeed10mMax[i]
		}
		forecast = append(forecast, day)
	}

	return &Report{
		Port:            portName,
		Current:         current,
		Forecast:        forecast,
		Insights:        maritimeInsights(current),
		Recommendations: standingRecommendations(),
	}
}

// maritimeInsights flags conditions that affect cargo operations.
func maritimeInsights(c Current) []string {
	insights := []string{}
	switch {
	case c.WindSpeedKmh > 25:
		insights = append(insights,
			"High winds may impact cargo operations",
			"Consider crane and gear safety limits before working cargo")
	case c.WindSpeedKmh > 15:
		insights = append(insights, "Moderate winds; monitor conditions during cargo operations")
	}
	if c.PrecipitationMm > 5 {
		insights = append(insights,
			"Significant precipitation may delay cargo operations",
			"Consider weather working days in laytime calculations")
	}
	if strings.Contains(strings.ToLower(c.Description), "fog") {
		insights = append(insights,
			"Reduced visibility; vessel movements may be restricted",
			"Pilotage and berthing windows may shift")
	}
	return insights
}

func standingRecommendations() []string {
	return []string{
		"Check local port authority weather reports",
		"Monitor marine weather broadcasts",
		"Document weather-related delays",
		"Consider seasonal weather patterns",
	}
}
