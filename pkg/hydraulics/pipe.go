package hydraulics

import "math"

// Regime classifies flow by Reynolds number.
type Regime string

const (
	Laminar      Regime = "Laminar"
	Transitional Regime = "Transitional"
	Turbulent    Regime = "Turbulent"
)

const (
	// LaminarLimit is the Reynolds number below which flow is laminar.
	LaminarLimit = 2000.0
	// TurbulentLimit is the Reynolds number at which flow becomes turbulent.
	TurbulentLimit = 4000.0
	// DefaultFrictionFactor is used when there is no flow (Re = 0).
	DefaultFrictionFactor = 0.02
)

// Viscosity returns the kinematic viscosity of water (m²/s) at tempC.
func Viscosity(tempC float64) float64 {
	return 1.78e-6 / (1 + 0.0337*tempC + 0.000221*tempC*tempC)
}

// Area returns the internal cross-section (m²) for a diameter in metres.
func Area(diameterM float64) float64 {
	return math.Pi * diameterM * diameterM / 4
}

// Velocity returns the mean velocity (m/s) of flowM3s through a pipe.
func Velocity(flowM3s, diameterM float64) float64 {
	return flowM3s / Area(diameterM)
}

// Reynolds returns the Reynolds number.
func Reynolds(velocity, diameterM, viscosity float64) float64 {
	return velocity * diameterM / viscosity
}

// ClassifyRegime maps a Reynolds number to a flow regime.
func ClassifyRegime(re float64) Regime {
	switch {
	case re < LaminarLimit:
		return Laminar
	case re < TurbulentLimit:
		return Transitional
	default:
		return Turbulent
	}
}

// FrictionFactor returns the Darcy friction factor: Hagen-Poiseuille below
// the laminar limit, Swamee-Jain above it. Anything else (no flow) yields
// DefaultFrictionFactor.
func FrictionFactor(re, roughnessMM, diameterM float64) float64 {
	switch {
	case re > 0 && re < LaminarLimit:
		return 64 / re
	case re > 0:
		relativeRoughness := (roughnessMM / 1000) / diameterM
		l := math.Log10(relativeRoughness/3.7 + 5.74/math.Pow(re, 0.9))
		return 0.25 / (l * l)
	default:
		return DefaultFrictionFactor
	}
}

// VelocityHead returns v²/2g in metres.
func VelocityHead(velocity, gravity float64) float64 {
	return velocity * velocity / (2 * gravity)
}

// Pipe is a single straight reach with its accessories.
type Pipe struct {
	LengthM     float64
	DiameterM   float64
	RoughnessMM float64
	// KTotal is the summed localized loss coefficient of the reach.
	KTotal float64
}

// Losses is the hydraulic state of a pipe at one flow.
type Losses struct {
	Velocity       float64 `json:"velocity"`
	Reynolds       float64 `json:"reynolds"`
	Regime         Regime  `json:"regime"`
	FrictionFactor float64 `json:"friction_factor"`
	Distributed    float64 `json:"head_loss_distributed"`
	Localized      float64 `json:"head_loss_localized"`
	Total          float64 `json:"head_loss_total"`
}

// Evaluate computes velocity, regime, friction factor and head losses for
// flowM3s through the pipe.
func (p Pipe) Evaluate(flowM3s, viscosity, gravity float64) Losses {
	v := Velocity(flowM3s, p.DiameterM)
	re := Reynolds(v, p.DiameterM, viscosity)
	f := FrictionFactor(re, p.RoughnessMM, p.DiameterM)

	vh := VelocityHead(v, gravity)
	hf := f * (p.LengthM / p.DiameterM) * vh // Darcy-Weisbach
	hl := p.KTotal * vh

	return Losses{
		Velocity:       v,
		Reynolds:       re,
		Regime:         ClassifyRegime(re),
		FrictionFactor: f,
		Distributed:    hf,
		Localized:      hl,
		Total:          hf + hl,
	}
}
