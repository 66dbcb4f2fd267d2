package demand

import (
	"math"

	"github.com/ChicagoDave/watersizer/pkg/presets"
	"github.com/ChicagoDave/watersizer/pkg/spec"
)

// CategoryDemand is the projected daily demand of one livestock category.
type CategoryDemand struct {
	Category       string  `json:"category"`
	InitialCount   int     `json:"initial_count"`
	ProjectedCount int     `json:"projected_count"`
	RatePerHead    float64 `json:"rate_per_head"` // L/day
	DemandL        float64 `json:"demand_l"`
}

// Projection is the demand at the end of the design horizon.
type Projection struct {
	GrowthFactor      float64          `json:"growth_factor"`
	FuturePopulation  int              `json:"future_population"`
	HumanDemandL      float64          `json:"human_demand_l"`
	LivestockDemandL  float64          `json:"livestock_demand_l"`
	TotalDailyDemandL float64          `json:"total_daily_demand_l"`
	Livestock         []CategoryDemand `json:"livestock"`
}

// GrowthFactor returns the compound growth factor (1 + r/100)^years.
func GrowthFactor(ratePercent float64, years int) float64 {
	return math.Pow(1+ratePercent/100, float64(years))
}

// Project applies compound growth to the population and to every livestock
// category and sums the daily consumption.
func Project(d spec.Demographics, rates presets.Livestock) Projection {
	factor := GrowthFactor(d.GrowthRate, d.Years)
	futurePop := int(math.Ceil(float64(d.InitialPopulation) * factor))
	human := float64(futurePop) * d.ConsumptionPerCapita

	// Herds grow with the human population.
	categories := []struct {
		name  string
		count int
		rate  float64
	}{
		{"horses", d.Livestock.Horses, rates.Horses},
		{"dairy_cattle", d.Livestock.DairyCattle, rates.DairyCattle},
		{"beef_cattle", d.Livestock.BeefCattle, rates.BeefCattle},
		{"pigs", d.Livestock.Pigs, rates.Pigs},
		{"sheep", d.Livestock.Sheep, rates.Sheep},
		{"goats", d.Livestock.Goats, rates.Goats},
		{"birds", d.Livestock.Birds, rates.Birds},
	}

	breakdown := make([]CategoryDemand, 0, len(categories))
	livestock := 0.0
	for _, c := range categories {
		projected := int(math.Ceil(float64(c.count) * factor))
		demand := float64(projected) * c.rate
		livestock += demand
		breakdown = append(breakdown, CategoryDemand{
			Category:       c.name,
			InitialCount:   c.count,
			ProjectedCount: projected,
			RatePerHead:    c.rate,
			DemandL:        demand,
		})
	}

	return Projection{
		GrowthFactor:      factor,
		FuturePopulation:  futurePop,
		HumanDemandL:      human,
		LivestockDemandL:  livestock,
		TotalDailyDemandL: human + livestock,
		Livestock:         breakdown,
	}
}
