package demand

import (
	"math"
	"testing"

	"github.com/ChicagoDave/watersizer/pkg/presets"
	"github.com/ChicagoDave/watersizer/pkg/spec"
)

func TestProjectDefaultVillage(t *testing.T) {
	p := Project(spec.Default().Demographics, presets.Default().Livestock)

	if math.Abs(p.GrowthFactor-1.63862) > 1e-4 {
		t.Errorf("GrowthFactor = %v, want ~1.63862", p.GrowthFactor)
	}
	if p.FuturePopulation != 1611 {
		t.Errorf("FuturePopulation = %d, want 1611", p.FuturePopulation)
	}
	if p.HumanDemandL != 24165 {
		t.Errorf("HumanDemandL = %v, want 24165", p.HumanDemandL)
	}
	if math.Abs(p.LivestockDemandL-4610) > 1e-9 {
		t.Errorf("LivestockDemandL = %v, want 4610", p.LivestockDemandL)
	}
	if math.Abs(p.TotalDailyDemandL-28775) > 1e-9 {
		t.Errorf("TotalDailyDemandL = %v, want 28775", p.TotalDailyDemandL)
	}
	if len(p.Livestock) != 7 {
		t.Fatalf("expected 7 livestock categories, got %d", len(p.Livestock))
	}
}

func TestProjectLivestockUsesSameGrowthFactor(t *testing.T) {
	d := spec.Demographics{
		InitialPopulation: 100,
		GrowthRate:        100,
		Years:             1,
		Livestock:         spec.Livestock{Horses: 10, Birds: 5},
	}
	p := Project(d, presets.Default().Livestock)

	if p.FuturePopulation != 200 {
		t.Errorf("FuturePopulation = %d, want 200", p.FuturePopulation)
	}
	for _, c := range p.Livestock {
		switch c.Category {
		case "horses":
			if c.ProjectedCount != 20 {
				t.Errorf("horses projected = %d, want 20", c.ProjectedCount)
			}
			if c.DemandL != 20*presets.ConsHorse {
				t.Errorf("horses demand = %v, want %v", c.DemandL, 20*presets.ConsHorse)
			}
		case "birds":
			if c.ProjectedCount != 10 {
				t.Errorf("birds projected = %d, want 10", c.ProjectedCount)
			}
		}
	}
}

func TestProjectZeroInputs(t *testing.T) {
	p := Project(spec.Demographics{}, presets.Default().Livestock)
	if p.GrowthFactor != 1 {
		t.Errorf("GrowthFactor = %v, want 1", p.GrowthFactor)
	}
	if p.FuturePopulation != 0 || p.TotalDailyDemandL != 0 {
		t.Errorf("expected zero demand, got pop=%d demand=%v", p.FuturePopulation, p.TotalDailyDemandL)
	}
}

func TestProjectZeroYearsKeepsPopulation(t *testing.T) {
	d := spec.Demographics{InitialPopulation: 983, GrowthRate: 2.5, Years: 0, ConsumptionPerCapita: 15}
	p := Project(d, presets.Default().Livestock)
	if p.FuturePopulation != 983 {
		t.Errorf("FuturePopulation = %d, want 983", p.FuturePopulation)
	}
	if p.HumanDemandL != 983*15 {
		t.Errorf("HumanDemandL = %v, want %v", p.HumanDemandL, 983*15)
	}
}

func TestFuturePopulationMonotonic(t *testing.T) {
	rates := presets.Default().Livestock
	prev := 0
	for years := 0; years <= 30; years++ {
		d := spec.Demographics{InitialPopulation: 500, GrowthRate: 3, Years: years}
		pop := Project(d, rates).FuturePopulation
		if pop < 500 {
			t.Fatalf("years=%d: population %d below initial 500", years, pop)
		}
		if pop < prev {
			t.Fatalf("years=%d: population %d decreased from %d", years, pop, prev)
		}
		prev = pop
	}

	prev = 0
	for _, rate := range []float64{0, 0.5, 1, 2.5, 5, 10} {
		d := spec.Demographics{InitialPopulation: 500, GrowthRate: rate, Years: 15}
		pop := Project(d, rates).FuturePopulation
		if pop < prev {
			t.Fatalf("rate=%v: population %d decreased from %d", rate, pop, prev)
		}
		prev = pop
	}
}

func TestProjectCustomRates(t *testing.T) {
	d := spec.Demographics{Livestock: spec.Livestock{Goats: 4}}
	rates := presets.Livestock{Goats: 7.5}
	p := Project(d, rates)
	if p.TotalDailyDemandL != 30 {
		t.Errorf("TotalDailyDemandL = %v, want 30", p.TotalDailyDemandL)
	}
}
