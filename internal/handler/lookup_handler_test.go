package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sofdesk/internal/carbon"
	"sofdesk/internal/config"
	"sofdesk/internal/handler"
	"sofdesk/internal/navigation"
	"sofdesk/internal/ports"
	"sofdesk/internal/weather"
)

const lookupForecast = `{
	"current": {
		"temperature_2m": 18.5,
		"relative_humidity_2m": 70,
		"wind_speed_10m": 20.0,
		"wind_direction_10m": 240,
		"precipitation": 1.2,
		"weather_code": 3
	},
	"daily": {
		"time": ["2024-03-01", "2024-03-02"],
		"temperature_2m_max": [20.0, 21.0],
		"temperature_2m_min": [14.0, 15.0],
		"precipitation_sum": [0.4, 2.1],
		"wind_speed_10m_max": [28.0, 22.0]
	}
}`

func newLookupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(lookupForecast))
	}))
	t.Cleanup(srv.Close)

	h := handler.NewLookupHandler(weather.NewClient(config.WeatherConfig{BaseURL: srv.URL}))
	r := gin.New()
	r.GET("/ports", h.ListPortsByCategory)
	r.GET("/ports/:identifier", h.GetPort)
	r.GET("/weather/:port", h.GetWeather)
	r.POST("/navigation/route", h.EstimateRoute)
	r.POST("/carbon/estimate", h.EstimateCarbon)
	r.GET("/checklists", h.ListChecklistStages)
	r.GET("/checklists/:stage", h.GetChecklist)
	return r
}

func TestGetPortByCode(t *testing.T) {
	rec := get(newLookupRouter(t), "/ports/SGSIN")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var p ports.Port
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "Singapore", p.Name)
}

func TestGetPortUnknown(t *testing.T) {
	rec := get(newLookupRouter(t), "/ports/Atlantis")

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "UNKNOWN_PORT", env.Error.Code)
}

func TestListPortsByCategory(t *testing.T) {
	rec := get(newLookupRouter(t), "/ports?category=lng")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var list []ports.Port
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 4)
}

func TestListPortsMissingCategory(t *testing.T) {
	rec := get(newLookupRouter(t), "/ports")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetWeatherEndpoint(t *testing.T) {
	rec := get(newLookupRouter(t), "/weather/Rotterdam")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var rep weather.Report
	require.NoError(t, json.Unmarshal(env.Data, &rep))
	assert.Equal(t, "Rotterdam", rep.Port)
	assert.Equal(t, 18.5, rep.Current.TemperatureC)
}

func TestEstimateRouteEndpoint(t *testing.T) {
	rec := postJSON(newLookupRouter(t), "/navigation/route", handler.RouteRequest{
		From:       "Singapore",
		To:         "Rotterdam",
		VesselType: "container",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var est navigation.RouteEstimate
	require.NoError(t, json.Unmarshal(env.Data, &est))
	assert.Equal(t, "oceanic", est.Classification)
	assert.Equal(t, 20.0, est.BasePassage.SpeedKnots)
}

func TestEstimateRouteUnknownPort(t *testing.T) {
	rec := postJSON(newLookupRouter(t), "/navigation/route", handler.RouteRequest{
		From: "Singapore",
		To:   "Atlantis",
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEstimateCarbonEndpoint(t *testing.T) {
	rec := postJSON(newLookupRouter(t), "/carbon/estimate", handler.CarbonRequest{
		VesselType: "bulk",
		FuelType:   "vlsfo",
		VoyageDays: 10,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var est carbon.Estimate
	require.NoError(t, json.Unmarshal(env.Data, &est))
	assert.Equal(t, 350.0, est.FuelTons)
	assert.Equal(t, 1089.9, est.CO2Tons)
}

func TestEstimateCarbonUnknownFuel(t *testing.T) {
	rec := postJSON(newLookupRouter(t), "/carbon/estimate", handler.CarbonRequest{
		VesselType: "bulk",
		FuelType:   "coal",
		VoyageDays: 10,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetChecklistEndpoint(t *testing.T) {
	rec := get(newLookupRouter(t), "/checklists/pre-fixture")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, string(env.Data), "pre_fixture")
	assert.Contains(t, string(env.Data), "charter party")
}

func TestGetChecklistUnknownStage(t *testing.T) {
	rec := get(newLookupRouter(t), "/checklists/docking")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "UNKNOWN_STAGE", env.Error.Code)
}

func TestListChecklistStages(t *testing.T) {
	rec := get(newLookupRouter(t), "/checklists")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.JSONEq(t, `["pre_fixture","on_voyage","post_voyage"]`, string(env.Data))
}
