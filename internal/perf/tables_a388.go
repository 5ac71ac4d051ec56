package perf

// A380-800 (GP7270) maximum takeoff N1. Only MTO is modeled for this type:
// whatever the plan says (FLEX or derate), the lookup uses the MTO sheet at
// actual OAT. Bleed and anti-ice corrections are not modeled (effectively
// packs ON, anti-ice OFF).

var a388TempAxis = []float64{
	-60, -10, -5, 0, 5, 10, 15, 20,
	25, 30, 35, 40, 45, 50, 55, 60,
}

var a388AltAxis = []float64{-2000, 0, 2000, 4000, 6000, 8000, 10000, 12000, 14000}

var a388Mto = &PerformanceTable{
	TempC: a388TempAxis,
	AltFt: a388AltAxis,
	Rows: map[float64][]float64{
		-60: {97.8, 97.6, 97.4, 97.2, 97.0, 96.7, 97.7, 98.1, 98.1},
		-10: {97.8, 97.6, 97.4, 97.2, 97.0, 96.7, 97.7, 98.1, 98.1},
		-5:  {97.8, 97.6, 97.4, 97.2, 97.0, 96.7, 97.7, 98.1, 98.1},
		0:   {97.8, 97.6, 97.4, 97.2, 97.0, 96.7, 97.7, 98.1, 97.4},
		5:   {97.8, 97.6, 97.4, 97.2, 97.0, 96.7, 97.7, 96.8, 96.9},
		10:  {97.8, 97.6, 97.4, 97.2, 97.0, 96.7, 96.6, 96.6, 97.0},
		15:  {97.8, 97.6, 97.4, 97.2, 97.0, 96.6, 96.2, 95.9, 95.4},
		20:  {97.8, 97.6, 97.4, 97.2, 97.0, 96.4, 96.2, 95.9, 95.4},
		25:  {97.8, 97.6, 97.4, 97.2, 97.0, 96.3, 96.0, 95.8, 95.2},
		30:  {97.8, 97.6, 97.3, 97.1, 96.9, 96.2, 96.0, 95.7, nan},
		35:  {97.8, 97.6, 97.4, 97.1, 96.9, 96.2, nan, nan, nan},
		40:  {97.7, 97.5, 97.3, 97.0, 96.8, nan, nan, nan, nan},
		45:  {97.8, 97.4, 97.2, 97.0, nan, nan, nan, nan, nan},
		50:  {97.7, 97.6, 97.3, nan, nan, nan, nan, nan, nan},
		55:  {97.7, nan, nan, nan, nan, nan, nan, nan, nan},
		60:  {nan, nan, nan, nan, nan, nan, nan, nan, nan},
	},
}

var a388Config = &AircraftConfig{
	Key:   KeyA388,
	Label: "A380-800",
	Derates: PerModeTables{
		Tables: map[ThrustMode]*PerformanceTable{
			FullRated: a388Mto,
		},
	},
	Slider:          SliderCalibration{N1AtZero: 17, N1AtFull: 111},
	FlexCapable:     false,
	AlwaysFullRated: true,
}
