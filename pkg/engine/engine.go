package engine

import (
	"github.com/ChicagoDave/watersizer/pkg/demand"
	"github.com/ChicagoDave/watersizer/pkg/hydraulics"
	"github.com/ChicagoDave/watersizer/pkg/presets"
	"github.com/ChicagoDave/watersizer/pkg/reservoir"
	"github.com/ChicagoDave/watersizer/pkg/solar"
	"github.com/ChicagoDave/watersizer/pkg/spec"
)

// Result bundles every sized quantity of one calculation pass.
type Result struct {
	FuturePopulation  int     `json:"future_population"`
	TotalDailyDemandL float64 `json:"total_daily_demand_l"`
	GeometricHeight   float64 `json:"geometric_height"`

	Demand     demand.Projection       `json:"demand"`
	Reservoir  reservoir.Volumes       `json:"reservoir"`
	Policy     presets.ReservoirPolicy `json:"reservoir_policy"`
	Hydraulics hydraulics.Analysis     `json:"hydraulics"`
	Solar      solar.Sizing            `json:"solar"`

	Warnings      []string `json:"warnings"`
	Justification []string `json:"justification"`
}

// CalculateSystem runs demand, reservoir, hydraulics and solar sizing in
// sequence. Each stage only consumes earlier outputs. A nil p uses
// presets.Default().
func CalculateSystem(d spec.Demographics, h spec.Hydraulics, s spec.Solar, p *presets.Presets) Result {
	if p == nil {
		p = presets.Default()
	}

	// 1. Demand
	proj := demand.Project(d, p.Livestock)

	// 2. Storage
	vols := reservoir.Size(proj.TotalDailyDemandL, p.Reservoir)

	// 3. Main pipe
	hyd := hydraulics.Analyze(h, proj.TotalDailyDemandL, p)

	// 4. PV array
	pv := solar.Size(hyd.ManometricHead, proj.TotalDailyDemandL, s, p)

	res := Result{
		FuturePopulation:  proj.FuturePopulation,
		TotalDailyDemandL: proj.TotalDailyDemandL,
		GeometricHeight:   h.GeometricHeight,
		Demand:            proj,
		Reservoir:         vols,
		Policy:            p.Reservoir,
		Hydraulics:        hyd,
		Solar:             pv,
		Warnings:          append(append([]string{}, hyd.Warnings...), pv.Warnings...),
	}
	res.Justification = Justify(res)
	return res
}

// Calculate runs CalculateSystem on a loaded scheme.
func Calculate(s *spec.Scheme, p *presets.Presets) Result {
	return CalculateSystem(s.Demographics, s.Hydraulics, s.Solar, p)
}
