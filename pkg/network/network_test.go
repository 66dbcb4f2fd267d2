package network

import (
	"math"
	"testing"

	"github.com/ChicagoDave/watersizer/pkg/presets"
	"github.com/ChicagoDave/watersizer/pkg/spec"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestSimulateEmpty(t *testing.T) {
	res := Simulate(nil, 40, 20, 0.05)
	if res.FinalPressure != 40 {
		t.Errorf("FinalPressure = %v, want 40", res.FinalPressure)
	}
	if len(res.Segments) != 0 {
		t.Errorf("expected empty trace, got %d segments", len(res.Segments))
	}
}

func TestSimulateSingleSegment(t *testing.T) {
	segs := []spec.NetworkSegment{
		{ID: "1", Length: 100, Diameter: 50, ElevationChange: 0, AccessoriesK: 1.0, Flow: 1.0},
	}
	res := Simulate(segs, 40, 20, 0.05)

	if len(res.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(res.Segments))
	}
	seg := res.Segments[0]
	if seg.PressureStart != 40 {
		t.Errorf("PressureStart = %v, want 40", seg.PressureStart)
	}
	if seg.PressureEnd >= seg.PressureStart {
		t.Errorf("PressureEnd %v should be below PressureStart %v", seg.PressureEnd, seg.PressureStart)
	}
	if !approxEqual(seg.HeadLoss, 0.725222, 1e-5) {
		t.Errorf("HeadLoss = %v, want ~0.725222", seg.HeadLoss)
	}
	if !approxEqual(seg.Velocity, 0.509296, 1e-5) {
		t.Errorf("Velocity = %v, want ~0.509296", seg.Velocity)
	}
	if res.FinalPressure != seg.PressureEnd {
		t.Errorf("FinalPressure = %v, want last PressureEnd %v", res.FinalPressure, seg.PressureEnd)
	}
}

func TestSimulateChainsSegments(t *testing.T) {
	segs := []spec.NetworkSegment{
		{ID: "a", Length: 100, Diameter: 50, ElevationChange: 0, AccessoriesK: 1.0, Flow: 1.0},
		{ID: "b", Length: 250, Diameter: 40, ElevationChange: -5, AccessoriesK: 0.6, Flow: 0.8},
		{ID: "c", Length: 180, Diameter: 32, ElevationChange: 3, AccessoriesK: 0.4, Flow: 0.5},
	}
	res := Simulate(segs, 40, 20, 0.05)

	if len(res.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(res.Segments))
	}
	for i := 1; i < len(res.Segments); i++ {
		if res.Segments[i].PressureStart != res.Segments[i-1].PressureEnd {
			t.Errorf("segment %d starts at %v, previous ended at %v", i, res.Segments[i].PressureStart, res.Segments[i-1].PressureEnd)
		}
	}
	for i, seg := range res.Segments {
		want := seg.PressureStart - segs[i].ElevationChange - seg.HeadLoss
		if seg.PressureEnd != want {
			t.Errorf("segment %s: PressureEnd = %v, want %v", seg.ID, seg.PressureEnd, want)
		}
		if seg.ID != segs[i].ID {
			t.Errorf("segment %d id = %q, want %q", i, seg.ID, segs[i].ID)
		}
	}
	if res.FinalPressure != res.Segments[2].PressureEnd {
		t.Errorf("FinalPressure = %v, want %v", res.FinalPressure, res.Segments[2].PressureEnd)
	}
}

func TestSimulateDownhillGainsHead(t *testing.T) {
	segs := []spec.NetworkSegment{{ID: "1", Length: 10, Diameter: 110, ElevationChange: -20, Flow: 0.1}}
	res := Simulate(segs, 10, 20, 0.05)
	if res.FinalPressure <= 10 {
		t.Errorf("downhill segment should gain head, got %v", res.FinalPressure)
	}
}

func TestSimulateZeroFlowSegment(t *testing.T) {
	segs := []spec.NetworkSegment{{ID: "1", Length: 100, Diameter: 50, ElevationChange: 2, AccessoriesK: 1}}
	res := Simulate(segs, 40, 20, 0.05)

	seg := res.Segments[0]
	if seg.HeadLoss != 0 || seg.FrictionFactor != 0.02 {
		t.Errorf("zero flow: loss=%v f=%v, want 0 and 0.02", seg.HeadLoss, seg.FrictionFactor)
	}
	if res.FinalPressure != 38 {
		t.Errorf("FinalPressure = %v, want 38", res.FinalPressure)
	}
}

func TestSimulateDoesNotMutateInput(t *testing.T) {
	segs := []spec.NetworkSegment{{ID: "1", Length: 100, Diameter: 50, AccessoriesK: 1, Flow: 1}}
	before := segs[0]
	Simulate(segs, 40, 20, 0.05)
	if segs[0] != before {
		t.Error("Simulate modified its input")
	}
}

func TestSimulateIdempotent(t *testing.T) {
	segs := []spec.NetworkSegment{
		{ID: "1", Length: 100, Diameter: 50, AccessoriesK: 1, Flow: 1},
		{ID: "2", Length: 60, Diameter: 25, ElevationChange: 4, Flow: 0.3},
	}
	a := Simulate(segs, 35, 18, 0.1)
	b := Simulate(segs, 35, 18, 0.1)
	if a.FinalPressure != b.FinalPressure {
		t.Errorf("repeated runs differ: %v vs %v", a.FinalPressure, b.FinalPressure)
	}
	for i := range a.Segments {
		if a.Segments[i] != b.Segments[i] {
			t.Errorf("segment %d differs between runs", i)
		}
	}
}

func TestCheck(t *testing.T) {
	res := Result{
		Segments: []SegmentResult{
			{ID: "1", PressureStart: 12, PressureEnd: 4},
			{ID: "2", PressureStart: 4, PressureEnd: -1.5},
		},
		FinalPressure: -1.5,
	}
	r := Check(res, DefaultMinResidualPressure)

	if r.Valid {
		t.Error("negative pressure should invalidate the report")
	}
	if len(r.Errors) != 1 {
		t.Errorf("expected 1 error, got %d", len(r.Errors))
	}
	if len(r.Warnings) != 1 {
		t.Errorf("expected 1 low-pressure warning, got %d", len(r.Warnings))
	}
}

func TestCheckHealthyNetwork(t *testing.T) {
	res := Simulate([]spec.NetworkSegment{{ID: "1", Length: 100, Diameter: 50, AccessoriesK: 1, Flow: 1}}, 40, 20, 0.05)
	r := Check(res, DefaultMinResidualPressure)
	if !r.Valid || len(r.Warnings) != 0 {
		t.Errorf("expected clean report, got %s", r.Summary)
	}

	if r := Check(Simulate(nil, 2, 20, 0.05), DefaultMinResidualPressure); len(r.Warnings) != 0 {
		t.Error("an empty network has no exit pressure to check")
	}
}

func TestSimulateWithPresetGravity(t *testing.T) {
	segs := []spec.NetworkSegment{{ID: "1", Length: 100, Diameter: 50, AccessoriesK: 1, Flow: 1}}

	p := presets.Default()
	if got, want := SimulateWith(segs, 40, 20, 0.05, p), Simulate(segs, 40, 20, 0.05); got.FinalPressure != want.FinalPressure {
		t.Errorf("default presets: %v, want %v", got.FinalPressure, want.FinalPressure)
	}

	p.Physics.Gravity = presets.Gravity / 2
	res := SimulateWith(segs, 40, 20, 0.05, p)
	if !approxEqual(res.Segments[0].HeadLoss, 2*0.725222, 1e-5) {
		t.Errorf("HeadLoss = %v, want ~%v with halved gravity", res.Segments[0].HeadLoss, 2*0.725222)
	}
}
