package presets

// Reference values from the Mozambican rural supply design tables.
const (
	Gravity             = 9.81 // m/s²
	SpecificWeightWater = 9810 // N/m³

	// Livestock consumption, L/head/day.
	ConsHorse       = 25.0
	ConsDairyCattle = 35.0
	ConsBeefCattle  = 30.0
	ConsPig         = 13.0
	ConsSheep       = 20.0
	ConsGoat        = 20.0
	ConsBird        = 0.2

	// Reservoir policy.
	FireFlowLPS         = 5.0 // minimal fire flow
	FireDurationHours   = 2.0
	EmergencyFraction   = 0.25 // of daily demand
	EquilibriumFraction = 0.30 // of daily demand

	// Localized loss coefficients.
	KTeeDirect  = 0.60
	KElbow90    = 0.40
	KElbow45    = 0.20
	KValveGate  = 0.20
	KValveCheck = 2.50
	KReducer    = 0.15
	KExit       = 1.00

	// Recommended velocity band for the rising main, m/s.
	MinVelocity = 0.6
	MaxVelocity = 3.0
)
