// Package carbon estimates voyage fuel burn and CO2 emissions from
// vessel type, fuel grade, and passage time.
package carbon

import (
	"fmt"
	"math"
	"strings"
)

// emissionFactorKgPerTon maps fuel grade to kg CO2 emitted per ton burned.
var emissionFactorKgPerTon = map[string]float64{
	"hfo":   3114,
	"vlsfo": 3114,
	"mgo":   3206,
	"lng":   2750,
}

// consumptionTonsPerDay maps vessel type to typical fuel consumption.
var consumptionTonsPerDay = map[string]float64{
	"container": 50,
	"bulk":      35,
	"tanker":    40,
	"lng":       60,
	"general":   30,
}

// Estimate is the computed footprint for one passage.
type Estimate struct {
	VesselType         string  `json:"vessel_type"`
	FuelType           string  `json:"fuel_type"`
	VoyageDays         float64 `json:"voyage_days"`
	FuelConsumptionTPD float64 `json:"fuel_consumption_tons_per_day"`
	FuelTons           float64 `json:"fuel_tons"`
	CO2Kg              float64 `json:"co2_kg"`
	CO2Tons            float64 `json:"co2_tons"`
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }

// Estimate computes fuel burn and emissions for a passage. Unknown
// vessel types fall back to general cargo consumption; unknown fuel
// grades are an error because the factor dominates the result.
func EstimateVoyage(vesselType, fuelType string, voyageDays float64) (Estimate, error) {
	if voyageDays < 0 {
		return Estimate{}, fmt.Errorf("voyage days must be non-negative, got %v", voyageDays)
	}
	fuel := strings.ToLower(fuelType)
	factor, ok := emissionFactorKgPerTon[fuel]
	if !ok {
		return Estimate{}, fmt.Errorf("unknown fuel type %q", fuelType)
	}
	vessel := strings.ToLower(vesselType)
	sfc, ok := consumptionTonsPerDay[vessel]
	if !ok {
		vessel = "general"
		sfc = consumptionTonsPerDay[vessel]
	}

	fuelTons := round2(sfc * voyageDays)
	co2Kg := round2(factor * fuelTons)
	return Estimate{
		VesselType:         vessel,
		FuelType:           fuel,
		VoyageDays:         voyageDays,
		FuelConsumptionTPD: sfc,
		FuelTons:           fuelTons,
		CO2Kg:              co2Kg,
		CO2Tons:            round2(co2Kg / 1000),
	}, nil
}
