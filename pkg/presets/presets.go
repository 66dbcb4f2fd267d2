package presets

import (
	"fmt"
	"os"
	"sort"

	"github.com/ChicagoDave/watersizer/pkg/spec"
	"gopkg.in/yaml.v3"
)

// Livestock holds per-head daily consumption in L/day.
type Livestock struct {
	Horses      float64 `yaml:"horses" json:"horses"`
	DairyCattle float64 `yaml:"dairy_cattle" json:"dairy_cattle"`
	BeefCattle  float64 `yaml:"beef_cattle" json:"beef_cattle"`
	Pigs        float64 `yaml:"pigs" json:"pigs"`
	Sheep       float64 `yaml:"sheep" json:"sheep"`
	Goats       float64 `yaml:"goats" json:"goats"`
	Birds       float64 `yaml:"birds" json:"birds"`
}

// FittingK holds localized loss coefficients per accessory.
type FittingK struct {
	Tee        float64 `yaml:"tee" json:"tee"`
	Elbow90    float64 `yaml:"elbow_90" json:"elbow_90"`
	Elbow45    float64 `yaml:"elbow_45" json:"elbow_45"`
	GateValve  float64 `yaml:"gate_valve" json:"gate_valve"`
	CheckValve float64 `yaml:"check_valve" json:"check_valve"`
	Reducer    float64 `yaml:"reducer" json:"reducer"`
	// Exit is added once per pipe for the discharge.
	Exit float64 `yaml:"exit" json:"exit"`
}

// ReservoirPolicy holds the fixed storage policy.
type ReservoirPolicy struct {
	FireFlowLPS         float64 `yaml:"fire_flow_lps" json:"fire_flow_lps"`
	FireDurationHours   float64 `yaml:"fire_duration_hours" json:"fire_duration_hours"`
	EmergencyFraction   float64 `yaml:"emergency_fraction" json:"emergency_fraction"`
	EquilibriumFraction float64 `yaml:"equilibrium_fraction" json:"equilibrium_fraction"`
}

// VelocityBand is the recommended design velocity range in m/s.
type VelocityBand struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Outside reports whether v falls outside the band. Zero velocity (no flow)
// is not flagged.
func (b VelocityBand) Outside(v float64) bool {
	return v > b.Max || (v > 0 && v < b.Min)
}

// Physics holds the physical constants used by the formulas.
type Physics struct {
	Gravity             float64 `yaml:"gravity" json:"gravity"`
	SpecificWeightWater float64 `yaml:"specific_weight_water" json:"specific_weight_water"`
}

// Presets is the configuration injected into every calculation.
type Presets struct {
	Livestock Livestock                 `yaml:"livestock" json:"livestock"`
	Fittings  FittingK                  `yaml:"fittings" json:"fittings"`
	Materials map[spec.Material]float64 `yaml:"materials" json:"materials"` // roughness, mm
	Locations map[string][12]float64    `yaml:"locations" json:"locations"` // kWh/m²/day, Jan-Dec
	Reservoir ReservoirPolicy           `yaml:"reservoir" json:"reservoir"`
	Velocity  VelocityBand              `yaml:"velocity" json:"velocity"`
	Physics   Physics                   `yaml:"physics" json:"physics"`
}

// Default returns the reference tables. Every call returns fresh maps.
func Default() *Presets {
	return &Presets{
		Livestock: Livestock{
			Horses:      ConsHorse,
			DairyCattle: ConsDairyCattle,
			BeefCattle:  ConsBeefCattle,
			Pigs:        ConsPig,
			Sheep:       ConsSheep,
			Goats:       ConsGoat,
			Birds:       ConsBird,
		},
		Fittings: FittingK{
			Tee:        KTeeDirect,
			Elbow90:    KElbow90,
			Elbow45:    KElbow45,
			GateValve:  KValveGate,
			CheckValve: KValveCheck,
			Reducer:    KReducer,
			Exit:       KExit,
		},
		Materials: map[spec.Material]float64{
			spec.MaterialPVC:            0.05,
			spec.MaterialPEAD:           0.0025,
			spec.MaterialConcreteSmooth: 0.025,
			spec.MaterialConcreteRough:  0.25,
			spec.MaterialSteel:          0.1,
			spec.MaterialIron:           0.15,
		},
		Locations: map[string][12]float64{
			"Maputo":   {6.5, 6.2, 5.6, 4.9, 4.3, 3.9, 4.0, 4.6, 5.3, 5.9, 6.3, 6.6},
			"Beira":    {6.2, 6.1, 5.8, 5.3, 4.7, 4.2, 4.3, 5.0, 5.8, 6.3, 6.4, 6.3},
			"Nampula":  {5.8, 5.9, 5.7, 5.6, 5.1, 4.6, 4.7, 5.4, 6.3, 6.8, 6.5, 5.9},
			"Tete":     {6.0, 6.1, 6.2, 5.8, 5.4, 4.9, 5.1, 5.8, 6.6, 7.0, 6.8, 6.2},
			"Lichinga": {5.0, 5.2, 5.3, 5.4, 5.2, 4.8, 5.0, 5.8, 6.5, 6.7, 6.0, 5.1},
		},
		Reservoir: ReservoirPolicy{
			FireFlowLPS:         FireFlowLPS,
			FireDurationHours:   FireDurationHours,
			EmergencyFraction:   EmergencyFraction,
			EquilibriumFraction: EquilibriumFraction,
		},
		Velocity: VelocityBand{Min: MinVelocity, Max: MaxVelocity},
		Physics: Physics{
			Gravity:             Gravity,
			SpecificWeightWater: SpecificWeightWater,
		},
	}
}

// Load reads a preset override file. Tables and fields missing from the
// file keep their default values; map entries are merged by key.
func Load(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets file: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing presets YAML: %w", err)
	}
	return p, nil
}

// Roughness returns the absolute roughness (mm) for a material and whether
// the material is known.
func (p *Presets) Roughness(m spec.Material) (float64, bool) {
	r, ok := p.Materials[m]
	return r, ok
}

// Irradiation returns the monthly profile for a named location.
func (p *Presets) Irradiation(location string) ([12]float64, bool) {
	series, ok := p.Locations[location]
	return series, ok
}

// LocationNames returns the named locations in sorted order.
func (p *Presets) LocationNames() []string {
	names := make([]string, 0, len(p.Locations))
	for name := range p.Locations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Marshal renders the presets as YAML.
func (p *Presets) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
