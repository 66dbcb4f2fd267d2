package spec

// Scheme is the top-level input document for one water-supply scheme.
type Scheme struct {
	SpecVersion  string       `yaml:"spec_version" json:"spec_version"`
	Name         string       `yaml:"name" json:"name"`
	Demographics Demographics `yaml:"demographics" json:"demographics"`
	Hydraulics   Hydraulics   `yaml:"hydraulics" json:"hydraulics"`
	Solar        Solar        `yaml:"solar" json:"solar"`
	Network      Network      `yaml:"network" json:"network"`
}

// Demographics describes the served population and livestock today.
type Demographics struct {
	InitialPopulation    int       `yaml:"initial_population" json:"initial_population"`
	GrowthRate           float64   `yaml:"growth_rate" json:"growth_rate"` // percent per year
	Years                int       `yaml:"years" json:"years"`
	ConsumptionPerCapita float64   `yaml:"consumption_per_capita" json:"consumption_per_capita"` // L/day
	Livestock            Livestock `yaml:"livestock" json:"livestock"`
}

// Livestock holds head counts per category.
type Livestock struct {
	Horses      int `yaml:"horses" json:"horses"`
	DairyCattle int `yaml:"dairy_cattle" json:"dairy_cattle"`
	BeefCattle  int `yaml:"beef_cattle" json:"beef_cattle"`
	Pigs        int `yaml:"pigs" json:"pigs"`
	Sheep       int `yaml:"sheep" json:"sheep"`
	Goats       int `yaml:"goats" json:"goats"`
	Birds       int `yaml:"birds" json:"birds"`
}

// Material selects a pipe material from the roughness table.
type Material string

const (
	MaterialPVC            Material = "PVC"
	MaterialPEAD           Material = "PEAD"
	MaterialConcreteSmooth Material = "ConcreteSmooth"
	MaterialConcreteRough  Material = "ConcreteRough"
	MaterialSteel          Material = "Steel"
	MaterialIron           Material = "Iron"
)

// Hydraulics describes the main rising main / supply pipe.
type Hydraulics struct {
	K1                 float64  `yaml:"k1" json:"k1"` // daily peak factor
	K2                 float64  `yaml:"k2" json:"k2"` // hourly peak factor
	PumpOperatingHours float64  `yaml:"pump_operating_hours" json:"pump_operating_hours"`
	PipeLength         float64  `yaml:"pipe_length" json:"pipe_length"`           // m
	PipeDiameterMM     float64  `yaml:"pipe_diameter_mm" json:"pipe_diameter_mm"` // mm
	Material           Material `yaml:"material" json:"material"`
	// Roughness overrides the material table when > 0 (mm).
	Roughness       float64  `yaml:"roughness" json:"roughness"`
	Temperature     float64  `yaml:"temperature" json:"temperature"`           // °C
	GeometricHeight float64  `yaml:"geometric_height" json:"geometric_height"` // m
	Fittings        Fittings `yaml:"fittings" json:"fittings"`
}

// Fittings holds counts of localized-loss accessories on the pipe.
type Fittings struct {
	Tees        int `yaml:"tees" json:"tees"`
	Elbows90    int `yaml:"elbows_90" json:"elbows_90"`
	Elbows45    int `yaml:"elbows_45" json:"elbows_45"`
	Valves      int `yaml:"valves" json:"valves"` // gate valves
	CheckValves int `yaml:"check_valves" json:"check_valves"`
	Reducers    int `yaml:"reducers" json:"reducers"`
}

// ManualLocation selects the manual irradiation series.
const ManualLocation = "Manual"

// Solar describes the photovoltaic pumping system.
type Solar struct {
	Location          string      `yaml:"location" json:"location"`
	ManualIrradiation [12]float64 `yaml:"manual_irradiation" json:"manual_irradiation"` // kWh/m²/day, Jan-Dec
	SystemEfficiency  float64     `yaml:"system_efficiency" json:"system_efficiency"`
	PumpEfficiency    float64     `yaml:"pump_efficiency" json:"pump_efficiency"`
	PanelPowerW       float64     `yaml:"panel_power_w" json:"panel_power_w"`
}

// Network describes a linear distribution profile fed from the reservoir.
type Network struct {
	// InitialHead seeds the simulation; nil means use the geometric height.
	InitialHead *float64         `yaml:"initial_head,omitempty" json:"initial_head,omitempty"`
	Segments    []NetworkSegment `yaml:"segments" json:"segments"`
}

// NetworkSegment is one pipe reach of the distribution profile.
type NetworkSegment struct {
	ID              string  `yaml:"id" json:"id"`
	Length          float64 `yaml:"length" json:"length"`                     // m
	Diameter        float64 `yaml:"diameter" json:"diameter"`                 // mm
	ElevationChange float64 `yaml:"elevation_change" json:"elevation_change"` // m, positive = uphill
	AccessoriesK    float64 `yaml:"accessories_k" json:"accessories_k"`
	Flow            float64 `yaml:"flow" json:"flow"` // L/s
}

// SeedHead returns the head the network simulation starts from.
func (s *Scheme) SeedHead() float64 {
	if s.Network.InitialHead != nil {
		return *s.Network.InitialHead
	}
	return s.Hydraulics.GeometricHeight
}
