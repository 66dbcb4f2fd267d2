package network

import (
	"github.com/ChicagoDave/watersizer/pkg/hydraulics"
	"github.com/ChicagoDave/watersizer/pkg/presets"
	"github.com/ChicagoDave/watersizer/pkg/spec"
)

// SegmentResult is the state of one segment after the pass.
type SegmentResult struct {
	ID             string            `json:"id"`
	HeadLoss       float64           `json:"head_loss"`
	Velocity       float64           `json:"velocity"`
	Reynolds       float64           `json:"reynolds"`
	Regime         hydraulics.Regime `json:"regime"`
	FrictionFactor float64           `json:"friction_factor"`
	PressureStart  float64           `json:"pressure_start"`
	PressureEnd    float64           `json:"pressure_end"`
}

// Result is the pressure profile along the network.
type Result struct {
	Segments      []SegmentResult `json:"segments"`
	FinalPressure float64         `json:"final_pressure"`
}

// state is the fold accumulator: the running head and the trace so far.
type state struct {
	head  float64
	trace []SegmentResult
}

func fold[T, A any](xs []T, acc A, f func(A, T) A) A {
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// Simulate walks the segments in order, carrying the pressure head from the
// end of each segment into the next. All segments share one roughness and
// water temperature. An empty list returns initialHead and an empty trace.
func Simulate(segments []spec.NetworkSegment, initialHead, temperature, roughness float64) Result {
	return simulate(segments, initialHead, temperature, roughness, presets.Gravity)
}

// SimulateWith is Simulate using the physical constants of p.
func SimulateWith(segments []spec.NetworkSegment, initialHead, temperature, roughness float64, p *presets.Presets) Result {
	return simulate(segments, initialHead, temperature, roughness, p.Physics.Gravity)
}

func simulate(segments []spec.NetworkSegment, initialHead, temperature, roughness, gravity float64) Result {
	nu := hydraulics.Viscosity(temperature)

	step := func(acc state, seg spec.NetworkSegment) state {
		pipe := hydraulics.Pipe{
			LengthM:     seg.Length,
			DiameterM:   seg.Diameter / 1000,
			RoughnessMM: roughness,
			KTotal:      seg.AccessoriesK,
		}
		losses := pipe.Evaluate(seg.Flow/1000, nu, gravity)

		// Head balance without a pump: a rise costs potential head.
		end := acc.head - seg.ElevationChange - losses.Total

		acc.trace = append(acc.trace, SegmentResult{
			ID:             seg.ID,
			HeadLoss:       losses.Total,
			Velocity:       losses.Velocity,
			Reynolds:       losses.Reynolds,
			Regime:         losses.Regime,
			FrictionFactor: losses.FrictionFactor,
			PressureStart:  acc.head,
			PressureEnd:    end,
		})
		acc.head = end
		return acc
	}

	final := fold(segments, state{head: initialHead, trace: make([]SegmentResult, 0, len(segments))}, step)

	return Result{
		Segments:      final.trace,
		FinalPressure: final.head,
	}
}
