// Package navigation computes great-circle distances and passage time
// estimates between ports. All functions are pure; positions come from
// the ports directory.
package navigation

import (
	"fmt"
	"math"
	"strings"

	"sofdesk/internal/ports"
)

// Earth radii per supported distance unit.
const (
	earthRadiusNM = 3440.065
	earthRadiusKM = 6371.0
	earthRadiusMI = 3959.0
)

// typicalSpeedKnots holds service speeds by vessel type.
var typicalSpeedKnots = map[string]float64{
	"container": 20,
	"bulk":      12,
	"tanker":    14,
	"lng":       18,
	"lpg":       16,
	"general":   12,
}

// alternativeSpeeds are the extra speeds quoted alongside the base ETA.
var alternativeSpeeds = []float64{10, 15, 20, 25}

// Distance holds one leg's length in all three units.
type Distance struct {
	NauticalMiles float64 `json:"nautical_miles"`
	Kilometers    float64 `json:"kilometers"`
	Miles         float64 `json:"miles"`
}

// Passage is one speed/time estimate.
type Passage struct {
	SpeedKnots float64 `json:"speed_knots"`
	Hours      float64 `json:"hours"`
	Days       float64 `json:"days"`
}

// RouteEstimate is the full answer for an origin/destination pair.
type RouteEstimate struct {
	From           string    `json:"from"`
	To             string    `json:"to"`
	VesselType     string    `json:"vessel_type"`
	Distance       Distance  `json:"distance"`
	BasePassage    Passage   `json:"base_passage"`
	Alternatives   []Passage `json:"alternatives"`
	Classification string    `json:"classification"`
	Considerations []string  `json:"considerations"`
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }

func round2(x float64) float64 { return math.Round(x*100) / 100 }

// Haversine returns the great-circle distance between two positions
// for the given sphere radius.
func Haversine(a, b ports.Coordinates, radius float64) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return radius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceBetween measures the leg between two positions in all units,
// rounded to one decimal.
func DistanceBetween(a, b ports.Coordinates) Distance {
	return Distance{
		NauticalMiles: round1(Haversine(a, b, earthRadiusNM)),
		Kilometers:    round1(Haversine(a, b, earthRadiusKM)),
		Miles:         round1(Haversine(a, b, earthRadiusMI)),
	}
}

// SpeedFor returns the service speed for a vessel type, defaulting to
// the general cargo speed for unknown types.
func SpeedFor(vesselType string) float64 {
	if s, ok := typicalSpeedKnots[strings.ToLower(vesselType)]; ok {
		return s
	}
	return typicalSpeedKnots["general"]
}

func passageAt(distanceNM, speedKnots float64) Passage {
	hours := distanceNM / speedKnots
	return Passage{
		SpeedKnots: speedKnots,
		Hours:      round1(hours),
		Days:       round2(hours / 24),
	}
}

// EstimateRoute resolves both ports and produces distance, base ETA at
// the vessel type's service speed, and alternative ETAs.
func EstimateRoute(from, to, vesselType string) (RouteEstimate, error) {
	origin, err := ports.Lookup(from)
	if err != nil {
		return RouteEstimate{}, fmt.Errorf("resolving origin %q: %w", from, err)
	}
	dest, err := ports.Lookup(to)
	if err != nil {
		return RouteEstimate{}, fmt.Errorf("resolving destination %q: %w", to, err)
	}

	dist := DistanceBetween(origin.Coordinates, dest.Coordinates)
	baseSpeed := SpeedFor(vesselType)

	alts := make([]Passage, 0, len(alternativeSpeeds))
	for _, s := range alternativeSpeeds {
		if s == baseSpeed {
			continue
		}
		alts = append(alts, passageAt(dist.NauticalMiles, s))
	}

	classification, considerations := classifyRoute(dist.NauticalMiles)

	return RouteEstimate{
		From:           origin.Name,
		To:             dest.Name,
		VesselType:     strings.ToLower(vesselType),
		Distance:       dist,
		BasePassage:    passageAt(dist.NauticalMiles, baseSpeed),
		Alternatives:   alts,
		Classification: classification,
		Considerations: considerations,
	}, nil
}

func classifyRoute(distanceNM float64) (string, []string) {
	if distanceNM < 1000 {
		return "coastal", []string{
			"Short sea passage, weather windows less critical",
			"Verify bunkers sufficient without intermediate call",
			"Coastal traffic separation schemes may apply",
		}
	}
	return "oceanic", []string{
		"Ocean passage, monitor long-range weather routing",
		"Plan bunker calls and canal transits where applicable",
		"Allow weather margin in laytime and ETA commitments",
	}
}
