package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sofdesk/internal/config"
	"sofdesk/internal/domain"
)

const sampleForecast = `{
	"current": {
		"temperature_2m": 28.5,
		"relative_humidity_2m": 78,
		"wind_speed_10m": 18.2,
		"wind_direction_10m": 220,
		"precipitation": 0.0,
		"weather_code": 2
	},
	"daily": {
		"time": ["2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04"],
		"temperature_2m_max": [31.0, 30.5, 29.8, 30.1],
		"temperature_2m_min": [25.2, 25.0, 24.7, 24.9],
		"precipitation_sum": [0.0, 2.4, 12.8, 0.3],
		"wind_speed_10m_max": [22.0, 19.5, 28.0, 20.0]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.WeatherConfig{
		BaseURL:      srv.URL,
		TimeoutSecs:  5,
		CacheTTLMins: 15,
	}), srv
}

func TestForPort(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1.2905", q.Get("latitude"))
		assert.Equal(t, "auto", q.Get("timezone"))
		assert.Contains(t, q.Get("current"), "weather_code")
		_, _ = w.Write([]byte(sampleForecast))
	})

	report, err := client.ForPort(context.Background(), "Singapore")
	require.NoError(t, err)

	assert.Equal(t, "Singapore", report.Port)
	assert.Equal(t, 28.5, report.Current.TemperatureC)
	assert.Equal(t, "Partly cloudy", report.Current.Description)
	// Outlook is capped at three days.
	require.Len(t, report.Forecast, 3)
	assert.Equal(t, "Friday", report.Forecast[0].Weekday)
	assert.Equal(t, 31.0, report.Forecast[0].TempMaxC)
	assert.Equal(t, []string{
		"Check local port authority weather reports",
		"Monitor marine weather broadcasts",
		"Document weather-related delays",
		"Consider seasonal weather patterns",
	}, report.Recommendations)
}

func TestForPortCaches(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(sampleForecast))
	})

	_, err := client.ForPort(context.Background(), "Rotterdam")
	require.NoError(t, err)
	_, err = client.ForPort(context.Background(), "NLRTM")
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
}

func TestForPortUnknownPort(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for unknown port")
	})

	_, err := client.ForPort(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, domain.ErrUnknownPort)
}

func TestForPortUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := client.ForPort(context.Background(), "Hamburg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestDescribeCode(t *testing.T) {
	assert.Equal(t, "Clear sky", DescribeCode(0))
	assert.Equal(t, "Thunderstorm", DescribeCode(95))
	assert.Equal(t, "Unknown weather (code: 42)", DescribeCode(42))
}

func TestMaritimeInsightsHighWind(t *testing.T) {
	insights := maritimeInsights(Current{WindSpeedKmh: 30})
	require.Len(t, insights, 2)
	assert.Contains(t, insights[0], "High winds")
}

func TestMaritimeInsightsModerateWind(t *testing.T) {
	insights := maritimeInsights(Current{WindSpeedKmh: 18})
	require.Len(t, insights, 1)
	assert.Contains(t, insights[0], "Moderate winds")
}

func TestMaritimeInsightsRainAndFog(t *testing.T) {
	insights := maritimeInsights(Current{
		WindSpeedKmh:    10,
		PrecipitationMm: 8,
		Description:     "Foggy",
	})
	require.Len(t, insights, 4)
	assert.Contains(t, insights[1], "weather working days")
	assert.Contains(t, insights[2], "visibility")
}

func TestMaritimeInsightsCalm(t *testing.T) {
	assert.Empty(t, maritimeInsights(Current{WindSpeedKmh: 5}))
}
