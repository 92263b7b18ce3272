package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sofdesk/internal/domain"
	"sofdesk/internal/ports"
)

func TestHaversineZeroDistance(t *testing.T) {
	p := ports.Coordinates{Lat: 1.2905, Lon: 103.8520}
	assert.InDelta(t, 0.0, Haversine(p, p, 3440.065), 1e-9)
}

func TestDistanceSingaporeMumbai(t *testing.T) {
	sin, err := ports.Position("SGSIN")
	require.NoError(t, err)
	bom, err := ports.Position("INBOM")
	require.NoError(t, err)

	d := DistanceBetween(sin, bom)
	// Great-circle Singapore-Mumbai is about 2100 nm.
	assert.InDelta(t, 2100, d.NauticalMiles, 100)
	assert.InDelta(t, d.NauticalMiles*1.852, d.Kilometers, d.Kilometers*0.01)
	assert.Greater(t, d.Kilometers, d.Miles)
	assert.Greater(t, d.Miles, d.NauticalMiles)
}

func TestSpeedFor(t *testing.T) {
	assert.Equal(t, 20.0, SpeedFor("container"))
	assert.Equal(t, 12.0, SpeedFor("BULK"))
	assert.Equal(t, 18.0, SpeedFor("lng"))
	assert.Equal(t, 12.0, SpeedFor("submarine"))
}

func TestEstimateRoute(t *testing.T) {
	est, err := EstimateRoute("Singapore", "Rotterdam", "container")
	require.NoError(t, err)

	assert.Equal(t, "Singapore", est.From)
	assert.Equal(t, "Rotterdam", est.To)
	assert.Equal(t, 20.0, est.BasePassage.SpeedKnots)
	assert.InDelta(t, est.Distance.NauticalMiles/20, est.BasePassage.Hours, 0.1)
	assert.Equal(t, "oceanic", est.Classification)
	assert.NotEmpty(t, est.Considerations)

	// Base speed is excluded from the alternatives.
	require.Len(t, est.Alternatives, 3)
	for _, alt := range est.Alternatives {
		assert.NotEqual(t, est.BasePassage.SpeedKnots, alt.SpeedKnots)
	}
}

func TestEstimateRouteCoastal(t *testing.T) {
	est, err := EstimateRoute("Rotterdam", "Antwerp", "bulk")
	require.NoError(t, err)
	assert.Equal(t, "coastal", est.Classification)
	assert.Less(t, est.Distance.NauticalMiles, 1000.0)
	// Bulk speed is not in the alternative list, so all four appear.
	assert.Len(t, est.Alternatives, 4)
}

func TestEstimateRouteUnknownPort(t *testing.T) {
	_, err := EstimateRoute("Atlantis", "Rotterdam", "bulk")
	assert.ErrorIs(t, err, domain.ErrUnknownPort)

	_, err = EstimateRoute("Rotterdam", "Atlantis", "bulk")
	assert.ErrorIs(t, err, domain.ErrUnknownPort)
}
