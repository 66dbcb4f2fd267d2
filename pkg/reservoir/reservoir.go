package reservoir

import "github.com/ChicagoDave/watersizer/pkg/presets"

// Volumes are the required storage components, all in litres.
type Volumes struct {
	Consumption float64 `json:"volume_consumption"`
	Fire        float64 `json:"volume_fire"`
	Emergency   float64 `json:"volume_emergency"`
	Equilibrium float64 `json:"volume_equilibrium"`
	Total       float64 `json:"volume_total"`
}

// FireVolume returns the fire reserve in litres for a policy.
func FireVolume(p presets.ReservoirPolicy) float64 {
	return p.FireFlowLPS * p.FireDurationHours * 3600
}

// Size derives the reservoir volumes from the total daily demand.
// Consumption covers one full day of demand.
func Size(totalDailyDemandL float64, p presets.ReservoirPolicy) Volumes {
	v := Volumes{
		Consumption: totalDailyDemandL,
		Fire:        FireVolume(p),
		Emergency:   totalDailyDemandL * p.EmergencyFraction,
		Equilibrium: totalDailyDemandL * p.EquilibriumFraction,
	}
	v.Total = v.Consumption + v.Fire + v.Emergency + v.Equilibrium
	return v
}
