package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateVoyageBulkVLSFO(t *testing.T) {
	est, err := EstimateVoyage("bulk", "vlsfo", 10)
	require.NoError(t, err)

	assert.Equal(t, 35.0, est.FuelConsumptionTPD)
	assert.Equal(t, 350.0, est.FuelTons)
	assert.Equal(t, 1089900.0, est.CO2Kg)
	assert.Equal(t, 1089.9, est.CO2Tons)
}

func TestEstimateVoyageLNGCarrier(t *testing.T) {
	est, err := EstimateVoyage("LNG", "LNG", 5)
	require.NoError(t, err)

	assert.Equal(t, 300.0, est.FuelTons)
	assert.Equal(t, 825000.0, est.CO2Kg)
	assert.Equal(t, 825.0, est.CO2Tons)
}

func TestEstimateVoyageUnknownVesselFallsBack(t *testing.T) {
	est, err := EstimateVoyage("hovercraft", "mgo", 2)
	require.NoError(t, err)
	assert.Equal(t, "general", est.VesselType)
	assert.Equal(t, 60.0, est.FuelTons)
	assert.Equal(t, 192360.0, est.CO2Kg)
}

func TestEstimateVoyageUnknownFuel(t *testing.T) {
	_, err := EstimateVoyage("bulk", "coal", 3)
	assert.Error(t, err)
}

func TestEstimateVoyageNegativeDays(t *testing.T) {
	_, err := EstimateVoyage("bulk", "hfo", -1)
	assert.Error(t, err)
}

func TestEstimateVoyageZeroDays(t *testing.T) {
	est, err := EstimateVoyage("tanker", "hfo", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, est.FuelTons)
	assert.Equal(t, 0.0, est.CO2Tons)
}
