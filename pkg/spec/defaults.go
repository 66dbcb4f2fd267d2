package spec

// Default returns the reference scheme: a village of 983 people with mixed
// livestock, a 1 km PVC rising main and a solar pump near Maputo.
func Default() *Scheme {
	return &Scheme{
		SpecVersion: "0.1.0",
		Name:        "default",
		Demographics: Demographics{
			InitialPopulation:    983,
			GrowthRate:           2.5,
			Years:                20,
			ConsumptionPerCapita: 15,
			Livestock: Livestock{
				Horses:      5,
				DairyCattle: 10,
				BeefCattle:  45,
				Pigs:        10,
				Sheep:       20,
				Goats:       20,
				Birds:       88,
			},
		},
		Hydraulics: Hydraulics{
			K1:                 1.2,
			K2:                 1.5,
			PumpOperatingHours: 6,
			PipeLength:         1000,
			PipeDiameterMM:     50,
			Material:           MaterialPVC,
			Roughness:          0.05,
			Temperature:        20,
			GeometricHeight:    40,
			Fittings: Fittings{
				Tees:     7,
				Elbows90: 3,
				Elbows45: 0,
				Valves:   2,
				Reducers: 8,
			},
		},
		Solar: Solar{
			Location:          "Maputo",
			ManualIrradiation: [12]float64{5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
			SystemEfficiency:  0.83,
			PumpEfficiency:    0.60,
			PanelPowerW:       450,
		},
		Network: Network{
			Segments: []NetworkSegment{
				{ID: "1", Length: 100, Diameter: 50, ElevationChange: 0, AccessoriesK: 1.0, Flow: 1.0},
			},
		},
	}
}
