package hydraulics

import (
	"fmt"

	"github.com/ChicagoDave/watersizer/pkg/presets"
	"github.com/ChicagoDave/watersizer/pkg/spec"
)

// SecondsPerDay converts a daily volume into an average flow.
const SecondsPerDay = 86400.0

// Analysis is the hydraulic state of the main pipe at design flow.
type Analysis struct {
	DesignFlowLPS       float64 `json:"design_flow_lps"`
	DesignFlowM3S       float64 `json:"design_flow_m3s"`
	DiameterM           float64 `json:"diameter_m"`
	RoughnessMM         float64 `json:"roughness_mm"`
	Velocity            float64 `json:"velocity"`
	Viscosity           float64 `json:"viscosity"`
	Reynolds            float64 `json:"reynolds"`
	Regime              Regime  `json:"flow_regime"`
	FrictionFactor      float64 `json:"friction_factor"`
	HeadLossDistributed float64 `json:"head_loss_distributed"`
	HeadLossLocalized   float64 `json:"head_loss_localized"`
	TotalHeadLoss       float64 `json:"total_head_loss"`
	ManometricHead      float64 `json:"manometric_head"`
	KTotal              float64 `json:"k_total"`

	Warnings []string `json:"warnings"`
}

// DesignFlow returns the peak design flow (L/s) for an average daily demand.
func DesignFlow(k1, k2, totalDailyDemandL float64) float64 {
	return k1 * k2 * totalDailyDemandL / SecondsPerDay
}

// FittingsK sums the loss coefficients of the fittings plus one exit loss,
// which is always present at the discharge.
func FittingsK(f spec.Fittings, k presets.FittingK) float64 {
	return float64(f.Tees)*k.Tee +
		float64(f.Elbows90)*k.Elbow90 +
		float64(f.Elbows45)*k.Elbow45 +
		float64(f.Valves)*k.GateValve +
		float64(f.CheckValves)*k.CheckValve +
		float64(f.Reducers)*k.Reducer +
		k.Exit
}

// ResolveRoughness returns the explicit roughness when set, otherwise the
// material's table value (zero for an unknown material).
func ResolveRoughness(h spec.Hydraulics, p *presets.Presets) float64 {
	if h.Roughness > 0 {
		return h.Roughness
	}
	r, _ := p.Roughness(h.Material)
	return r
}

// Analyze sizes the main pipe for totalDailyDemandL and returns losses and
// the manometric head the source must supply.
func Analyze(h spec.Hydraulics, totalDailyDemandL float64, p *presets.Presets) Analysis {
	flowLPS := DesignFlow(h.K1, h.K2, totalDailyDemandL)
	flowM3S := flowLPS / 1000

	pipe := Pipe{
		LengthM:     h.PipeLength,
		DiameterM:   h.PipeDiameterMM / 1000,
		RoughnessMM: ResolveRoughness(h, p),
		KTotal:      FittingsK(h.Fittings, p.Fittings),
	}
	nu := Viscosity(h.Temperature)
	losses := pipe.Evaluate(flowM3S, nu, p.Physics.Gravity)

	return Analysis{
		DesignFlowLPS:       flowLPS,
		DesignFlowM3S:       flowM3S,
		DiameterM:           pipe.DiameterM,
		RoughnessMM:         pipe.RoughnessMM,
		Velocity:            losses.Velocity,
		Viscosity:           nu,
		Reynolds:            losses.Reynolds,
		Regime:              losses.Regime,
		FrictionFactor:      losses.FrictionFactor,
		HeadLossDistributed: losses.Distributed,
		HeadLossLocalized:   losses.Localized,
		TotalHeadLoss:       losses.Total,
		ManometricHead:      h.GeometricHeight + losses.Total,
		KTotal:              pipe.KTotal,
		Warnings:            velocityWarnings(losses.Velocity, p.Velocity),
	}
}

func velocityWarnings(v float64, band presets.VelocityBand) []string {
	warnings := []string{}
	if !band.Outside(v) {
		return warnings
	}
	if v > band.Max {
		warnings = append(warnings, fmt.Sprintf("excessive velocity %.2f m/s (> %.1f m/s)", v, band.Max))
	}
	if v > 0 && v < band.Min {
		warnings = append(warnings, fmt.Sprintf("velocity too low %.2f m/s (< %.1f m/s)", v, band.Min))
	}
	return warnings
}
