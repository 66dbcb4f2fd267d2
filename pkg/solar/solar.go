package solar

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/watersizer/pkg/presets"
	"github.com/ChicagoDave/watersizer/pkg/spec"
)

// JoulesPerKWh converts hydraulic work to energy.
const JoulesPerKWh = 3.6e6

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthName returns the short name of a 0-based month index.
func MonthName(idx int) string {
	if idx < 0 || idx >= len(monthNames) {
		return "?"
	}
	return monthNames[idx]
}

// Sizing is the PV array sized against the critical month.
type Sizing struct {
	Location             string      `json:"location"`
	Irradiation          [12]float64 `json:"irradiation"`
	CriticalMonthIndex   int         `json:"critical_month_index"`
	SelectedIrradiation  float64     `json:"selected_irradiation"`
	HydraulicEnergyKWh   float64     `json:"hydraulic_energy_kwh"`
	HydraulicPowerKW     float64     `json:"hydraulic_power_kw"` // 24 h average
	DailyEnergyKWh       float64     `json:"daily_energy_kwh"`
	RequiredSolarPowerKW float64     `json:"required_solar_power_kw"`
	NumberOfPanels       int         `json:"number_of_panels"`

	Warnings []string `json:"warnings"`
}

// CriticalMonth returns the index and value of the lowest irradiation.
// Ties resolve to the earliest month.
func CriticalMonth(series [12]float64) (int, float64) {
	idx := 0
	for i := 1; i < len(series); i++ {
		if series[i] < series[idx] {
			idx = i
		}
	}
	return idx, series[idx]
}

// SelectIrradiation returns the manual series for the manual location or an
// unknown name, otherwise the named location's profile.
func SelectIrradiation(s spec.Solar, p *presets.Presets) [12]float64 {
	if s.Location != spec.ManualLocation {
		if series, ok := p.Irradiation(s.Location); ok {
			return series
		}
	}
	return s.ManualIrradiation
}

// HydraulicEnergy returns the daily hydraulic energy (kWh) to lift
// dailyDemandL litres through manometricHead metres.
func HydraulicEnergy(dailyDemandL, manometricHead, specificWeight float64) float64 {
	return dailyDemandL / 1000 * specificWeight * manometricHead / JoulesPerKWh
}

// Size sizes the PV array so the pump meets daily demand in the worst month.
func Size(manometricHead, totalDailyDemandL float64, s spec.Solar, p *presets.Presets) Sizing {
	hydraulic := HydraulicEnergy(totalDailyDemandL, manometricHead, p.Physics.SpecificWeightWater)
	daily := hydraulic / s.PumpEfficiency

	series := SelectIrradiation(s, p)
	month, minIrr := CriticalMonth(series)

	// Peak sun hours of the critical month carry the whole daily load.
	powerKW := daily / (s.SystemEfficiency * minIrr)
	panels, warnings := panelCount(powerKW, s.PanelPowerW)

	return Sizing{
		Location:             s.Location,
		Irradiation:          series,
		CriticalMonthIndex:   month,
		SelectedIrradiation:  minIrr,
		HydraulicEnergyKWh:   hydraulic,
		HydraulicPowerKW:     hydraulic / 24,
		DailyEnergyKWh:       daily,
		RequiredSolarPowerKW: powerKW,
		NumberOfPanels:       panels,
		Warnings:             warnings,
	}
}

// panelCount rounds the array up to whole panels. A non-finite or negative
// quotient yields zero panels and a warning; the power figure itself is left
// untouched.
func panelCount(powerKW, panelW float64) (int, []string) {
	n := math.Ceil(powerKW * 1000 / panelW)
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0, []string{fmt.Sprintf("panel count undefined for %v kWp with %v W panels", powerKW, panelW)}
	}
	return int(n), []string{}
}
