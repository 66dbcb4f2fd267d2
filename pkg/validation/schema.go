package validation

import (
	"fmt"

	"github.com/ChicagoDave/watersizer/pkg/presets"
	"github.com/ChicagoDave/watersizer/pkg/spec"
)

// ValidateSchema checks a scheme before it is handed to the engine. The
// engine itself never rejects input, so anything that would produce NaN or
// meaningless sizing is caught here.
func ValidateSchema(s *spec.Scheme, p *presets.Presets) *Report {
	r := NewReport()

	validateDemographics(s, r)
	validateHydraulics(s, p, r)
	validateSolar(s, p, r)
	validateNetwork(s, r)

	return r
}

func requirePositive(r *Report, path string, v float64) {
	if v <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be greater than 0", path),
			SpecPath:    path,
			ActualValue: v,
			Expected:    "> 0",
		})
	}
}

func requireNonNegative(r *Report, path string, v float64) {
	if v < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be non-negative", path),
			SpecPath:    path,
			ActualValue: v,
			Expected:    ">= 0",
		})
	}
}

func requireFraction(r *Report, path string, v float64) {
	if v <= 0 || v > 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s %.2f must be in (0, 1]", path, v),
			SpecPath:    path,
			ActualValue: v,
			Expected:    "0 < value <= 1",
		})
	}
}

func validateDemographics(s *spec.Scheme, r *Report) {
	d := s.Demographics
	requireNonNegative(r, "demographics.initial_population", float64(d.InitialPopulation))
	requireNonNegative(r, "demographics.years", float64(d.Years))
	requireNonNegative(r, "demographics.consumption_per_capita", d.ConsumptionPerCapita)

	if d.GrowthRate < 0 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("negative growth rate %.2f%% projects a shrinking population", d.GrowthRate),
			SpecPath:    "demographics.growth_rate",
			ActualValue: d.GrowthRate,
			Expected:    ">= 0",
		})
	}

	herd := map[string]int{
		"horses":       d.Livestock.Horses,
		"dairy_cattle": d.Livestock.DairyCattle,
		"beef_cattle":  d.Livestock.BeefCattle,
		"pigs":         d.Livestock.Pigs,
		"sheep":        d.Livestock.Sheep,
		"goats":        d.Livestock.Goats,
		"birds":        d.Livestock.Birds,
	}
	for name, count := range herd {
		requireNonNegative(r, "demographics.livestock."+name, float64(count))
	}

	if d.InitialPopulation == 0 && d.Livestock == (spec.Livestock{}) {
		r.AddWarning(Result{
			Level:    LevelSchema,
			Message:  "no population or livestock: daily demand will be zero",
			SpecPath: "demographics",
		})
	}
}

func validateHydraulics(s *spec.Scheme, p *presets.Presets, r *Report) {
	h := s.Hydraulics
	requirePositive(r, "hydraulics.k1", h.K1)
	requirePositive(r, "hydraulics.k2", h.K2)
	requirePositive(r, "hydraulics.pipe_length", h.PipeLength)
	requirePositive(r, "hydraulics.pipe_diameter_mm", h.PipeDiameterMM)
	requireNonNegative(r, "hydraulics.roughness", h.Roughness)

	if h.PumpOperatingHours <= 0 || h.PumpOperatingHours > 24 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("pump_operating_hours %.1f is outside valid range (0-24h]", h.PumpOperatingHours),
			SpecPath:    "hydraulics.pump_operating_hours",
			ActualValue: h.PumpOperatingHours,
			Expected:    "0 < hours <= 24",
		})
	}

	if _, ok := p.Roughness(h.Material); !ok && h.Roughness <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown pipe material %q and no explicit roughness", h.Material),
			SpecPath:    "hydraulics.material",
			ActualValue: h.Material,
			Suggestions: []string{
				"Use one of PVC, PEAD, ConcreteSmooth, ConcreteRough, Steel, Iron",
				"Set hydraulics.roughness in mm",
			},
		})
	}

	if h.Temperature < 0 || h.Temperature > 40 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("water temperature %.1f°C is outside the viscosity fit range (0-40°C)", h.Temperature),
			SpecPath:    "hydraulics.temperature",
			ActualValue: h.Temperature,
			Expected:    "0-40",
		})
	}

	f := h.Fittings
	for name, count := range map[string]int{
		"tees":         f.Tees,
		"elbows_90":    f.Elbows90,
		"elbows_45":    f.Elbows45,
		"valves":       f.Valves,
		"check_valves": f.CheckValves,
		"reducers":     f.Reducers,
	} {
		requireNonNegative(r, "hydraulics.fittings."+name, float64(count))
	}
}

func validateSolar(s *spec.Scheme, p *presets.Presets, r *Report) {
	sol := s.Solar
	requireFraction(r, "solar.system_efficiency", sol.SystemEfficiency)
	requireFraction(r, "solar.pump_efficiency", sol.PumpEfficiency)
	requirePositive(r, "solar.panel_power_w", sol.PanelPowerW)

	manual := sol.Location == spec.ManualLocation
	if !manual {
		if _, ok := p.Irradiation(sol.Location); !ok {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("unknown location %q: the manual irradiation series will be used", sol.Location),
				SpecPath:    "solar.location",
				ActualValue: sol.Location,
				Suggestions: []string{fmt.Sprintf("Known locations: %v", p.LocationNames())},
			})
			manual = true
		}
	}

	if manual {
		for i, v := range sol.ManualIrradiation {
			if v <= 0 {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("manual_irradiation[%d] must be greater than 0", i),
					SpecPath:    fmt.Sprintf("solar.manual_irradiation[%d]", i),
					ActualValue: v,
					Expected:    "> 0 kWh/m²/day",
				})
			}
		}
	}
}

func validateNetwork(s *spec.Scheme, r *Report) {
	seen := make(map[string]int, len(s.Network.Segments))
	for i, seg := range s.Network.Segments {
		base := fmt.Sprintf("network.segments[%d]", i)
		requirePositive(r, base+".length", seg.Length)
		requirePositive(r, base+".diameter", seg.Diameter)
		requireNonNegative(r, base+".accessories_k", seg.AccessoriesK)
		requireNonNegative(r, base+".flow", seg.Flow)

		if seg.ID == "" {
			continue
		}
		if prev, dup := seen[seg.ID]; dup {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("segment id %q is used by segments %d and %d", seg.ID, prev, i),
				SpecPath:    base + ".id",
				ActualValue: seg.ID,
			})
		}
		seen[seg.ID] = i
	}
}
