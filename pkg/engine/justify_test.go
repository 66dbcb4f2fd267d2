package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ChicagoDave/watersizer/pkg/spec"
)

func TestJustifyRegenerates(t *testing.T) {
	res := Calculate(spec.Default(), nil)
	if !reflect.DeepEqual(Justify(res), res.Justification) {
		t.Error("Justify(result) should reproduce the stored transcript")
	}
}

func TestJustifyDefaultScheme(t *testing.T) {
	lines := Calculate(spec.Default(), nil).Justification
	text := strings.Join(lines, "\n")

	if lines[0] != "--- TECHNICAL SIZING REPORT ---" {
		t.Errorf("header = %q", lines[0])
	}
	for _, want := range []string{
		"1. DEMAND AND VOLUMES:",
		"2. HYDRAULICS AND BERNOULLI:",
		"3. SOLAR ENERGY (CRITICAL MONTH):",
		"   Future population: 1611 inhabitants",
		"   Total daily demand: 28775.0 L/day",
		"   Fire reserve (2h @ 5L/s): 36.0 m³",
		"   Emergency volume (25%): 7.2 m³",
		"   Equilibrium volume (30%): 8.6 m³",
		"   Re = 15115 (Turbulent), f = 0.0298",
		"   Hman = 40m (geo) + 2.87m (losses) = 42.87 m",
		"   Critical month: Jun with 3.9 kWh/m²/day",
		"   PV power: 1.73 kWp (4 panels)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("transcript missing %q", want)
		}
	}
}

func TestFixedRoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		v      float64
		places int32
		want   string
	}{
		{2.5, 0, "3"},
		{1.005, 1, "1.0"},
		{42.86634, 2, "42.87"},
		{0, 2, "0.00"},
		{-1.25, 1, "-1.3"},
	}
	for _, tt := range tests {
		if got := fixed(tt.v, tt.places); got != tt.want {
			t.Errorf("fixed(%v, %d) = %s, want %s", tt.v, tt.places, got, tt.want)
		}
	}
}
