package engine

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/watersizer/pkg/solar"
	"github.com/shopspring/decimal"
)

// finite reports whether v can be held by a decimal; NaN and Inf from
// inadmissible inputs are printed as-is.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// fixed renders v with a fixed number of decimals, rounding half away
// from zero.
func fixed(v float64, places int32) string {
	if !finite(v) {
		return fmt.Sprint(v)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// plain renders v in its shortest exact decimal form.
func plain(v float64) string {
	if !finite(v) {
		return fmt.Sprint(v)
	}
	return decimal.NewFromFloat(v).String()
}

func percent(fraction float64) string {
	if !finite(fraction) {
		return fmt.Sprint(fraction)
	}
	return decimal.NewFromFloat(fraction).Mul(decimal.NewFromInt(100)).String()
}

func m3(litres float64, places int32) string {
	if !finite(litres) {
		return fmt.Sprint(litres / 1000)
	}
	return decimal.NewFromFloat(litres).Div(decimal.NewFromInt(1000)).StringFixed(places)
}

// Justify renders the line-oriented technical report for a result. It reads
// only the result record, so it can be regenerated at any time.
func Justify(r Result) []string {
	h := r.Hydraulics
	pv := r.Solar
	v := r.Reservoir

	return []string{
		"--- TECHNICAL SIZING REPORT ---",
		"1. DEMAND AND VOLUMES:",
		fmt.Sprintf("   Future population: %d inhabitants (growth factor %s)", r.FuturePopulation, fixed(r.Demand.GrowthFactor, 4)),
		fmt.Sprintf("   Total daily demand: %s L/day", fixed(r.TotalDailyDemandL, 1)),
		fmt.Sprintf("   Consumption volume (1 day): %s m³", m3(v.Consumption, 1)),
		fmt.Sprintf("   Fire reserve (%sh @ %sL/s): %s m³", plain(r.Policy.FireDurationHours), plain(r.Policy.FireFlowLPS), m3(v.Fire, 1)),
		fmt.Sprintf("   Emergency volume (%s%%): %s m³", percent(r.Policy.EmergencyFraction), m3(v.Emergency, 1)),
		fmt.Sprintf("   Equilibrium volume (%s%%): %s m³", percent(r.Policy.EquilibriumFraction), m3(v.Equilibrium, 1)),
		fmt.Sprintf("   TOTAL REQUIRED CAPACITY: %s m³", m3(v.Total, 2)),
		"2. HYDRAULICS AND BERNOULLI:",
		fmt.Sprintf("   Design flow: %s L/s, velocity %s m/s", fixed(h.DesignFlowLPS, 3), fixed(h.Velocity, 2)),
		fmt.Sprintf("   Re = %s (%s), f = %s", fixed(h.Reynolds, 0), h.Regime, fixed(h.FrictionFactor, 4)),
		fmt.Sprintf("   Hman = %sm (geo) + %sm (losses) = %s m", plain(r.GeometricHeight), fixed(h.TotalHeadLoss, 2), fixed(h.ManometricHead, 2)),
		"3. SOLAR ENERGY (CRITICAL MONTH):",
		fmt.Sprintf("   Location: %s", pv.Location),
		fmt.Sprintf("   Critical month: %s with %s kWh/m²/day", solar.MonthName(pv.CriticalMonthIndex), plain(pv.SelectedIrradiation)),
		fmt.Sprintf("   Required energy (Wd): %s kWh/day", fixed(pv.DailyEnergyKWh, 2)),
		fmt.Sprintf("   PV power: %s kWp (%d panels)", fixed(pv.RequiredSolarPowerKW, 2), pv.NumberOfPanels),
	}
}
