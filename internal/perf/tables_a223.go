package perf

// A220-300 (PW1524G) takeoff N1 tables, transcribed from the published
// MAX/TO1/TO2 sheets. All three ratings share the same axes. nan cells are
// blank in the source sheets (not certified at that combination).

var a223TempAxis = []float64{
	-54, -50, -45, -40, -35, -30, -25, -20,
	-15, -10, -5, 0, 5, 10, 15, 20,
	25, 30, 35, 40, 45, 53,
}

var a223AltAxis = []float64{
	-2000, 0, 1000, 2000, 3000, 4000,
	6000, 8000, 10000, 12000, 14500,
}

var a223Max = &PerformanceTable{
	TempC: a223TempAxis,
	AltFt: a223AltAxis,
	Rows: map[float64][]float64{
		-54: {73.6, 75.9, 76.5, 77.2, 77.8, 78.4, 79.5, 80.6, 81.6, 82.6, 83.7},
		-50: {74.2, 76.6, 77.2, 77.9, 78.5, 79.1, 80.3, 81.3, 82.4, 83.3, 84.4},
		-45: {75.1, 77.4, 78.1, 78.7, 79.3, 79.9, 81.1, 82.2, 83.3, 84.3, 85.4},
		-40: {75.9, 78.2, 78.9, 79.6, 80.2, 80.8, 82.0, 83.1, 84.2, 85.2, 86.3},
		-35: {76.7, 79.1, 79.7, 80.4, 81.0, 81.7, 82.9, 84.0, 85.1, 86.1, 87.2},
		-30: {77.4, 79.9, 80.6, 81.2, 81.9, 82.5, 83.7, 84.9, 85.9, 86.9, 88.1},
		-25: {78.2, 80.7, 81.4, 82.1, 82.7, 83.3, 84.6, 85.7, 86.8, 87.8, 89.0},
		-20: {79.0, 81.5, 82.2, 82.9, 83.5, 84.2, 85.4, 86.6, 87.7, 88.7, 89.8},
		-15: {79.8, 82.3, 83.0, 83.7, 84.3, 85.0, 86.2, 87.4, 88.5, 89.5, 90.7},
		-10: {80.5, 83.1, 83.8, 84.5, 85.1, 85.7, 87.0, 88.2, 89.1, 90.2, 91.6},
		-5:  {81.3, 83.8, 84.6, 85.3, 85.9, 86.8, 87.9, 89.1, 90.2, 91.2, 92.4},
		0:   {82.0, 84.6, 85.3, 86.1, 86.7, 87.4, 88.7, 89.9, 91.0, 92.1, 93.3},
		5:   {82.8, 85.4, 86.1, 87.0, 87.5, 88.2, 89.5, 90.7, 91.8, 92.9, 93.3},
		10:  {83.5, 86.2, 86.9, 87.6, 88.3, 89.0, 90.3, 91.5, 92.6, 92.8, 92.7},
		15:  {84.3, 86.9, 87.7, 88.4, 89.1, 89.8, 91.1, 92.3, 92.0, 91.9, 92.0},
		20:  {85.0, 87.7, 88.4, 89.2, 89.9, 90.5, 91.5, 91.2, 91.0, 90.9, 91.0},
		25:  {85.7, 88.4, 89.2, 89.9, 90.3, 90.3, 90.2, 90.1, 89.7, 89.7, 89.8},
		30:  {86.5, 89.2, 89.2, 89.2, 89.2, 89.2, 89.1, 88.9, 88.5, 88.5, 88.7},
		35:  {86.8, 88.0, 88.0, 88.0, 88.0, 87.9, 87.8, 87.6, 87.4, 87.4, 87.5},
		40:  {85.6, 86.8, 86.8, 86.8, 87.6, 86.7, 86.6, 86.4, 86.4, 86.6, 86.1},
		45:  {84.2, 85.5, 85.5, 85.5, 85.5, 85.4, 85.4, 85.4, 85.4, 85.4, nan},
		53:  {82.3, 83.6, 83.6, 83.4, 83.4, 83.4, 83.3, 83.2, nan, nan, nan},
	},
}

var a223To1 = &PerformanceTable{
	TempC: a223TempAxis,
	AltFt: a223AltAxis,
	Rows: map[float64][]float64{
		-54: {70.8, 73.1, 73.7, 74.3, 74.9, 75.6, 76.6, 77.6, 78.5, 79.5, 80.5},
		-50: {71.4, 73.7, 74.3, 75.0, 75.6, 76.2, 77.3, 78.3, 79.2, 80.2, 81.2},
		-45: {72.3, 74.5, 75.2, 75.9, 76.5, 77.1, 78.2, 79.2, 80.1, 81.1, 82.1},
		-40: {73.6, 76.1, 76.8, 77.3, 77.8, 78.4, 79.6, 80.6, 81.2, 82.0, 83.0},
		-35: {73.6, 76.1, 76.7, 77.4, 78.0, 78.6, 79.8, 80.8, 81.2, 82.0, 83.0},
		-30: {74.3, 76.9, 77.6, 78.2, 78.9, 79.5, 80.7, 81.8, 82.2, 83.1, 84.0},
		-25: {75.3, 77.9, 78.4, 79.0, 79.8, 80.4, 81.6, 82.7, 83.1, 84.0, 84.9},
		-20: {76.6, 78.7, 79.4, 80.0, 81.1, 81.7, 82.9, 84.0, 84.2, 85.1, 86.0},
		-15: {76.9, 79.8, 80.6, 81.2, 81.8, 82.4, 83.7, 84.8, 85.2, 86.0, 86.9},
		-10: {77.5, 80.7, 81.4, 82.1, 82.8, 83.4, 84.6, 85.8, 86.1, 86.9, 87.8},
		-5:  {78.2, 81.7, 82.1, 82.8, 83.6, 84.4, 85.5, 86.8, 87.1, 87.9, 88.8},
		0:   {79.0, 82.7, 83.0, 83.8, 84.5, 85.3, 86.6, 87.8, 88.0, 88.9, 89.8},
		5:   {79.7, 82.9, 83.2, 83.9, 84.6, 85.2, 86.4, 87.7, 88.0, 88.8, 89.7},
		10:  {80.4, 83.6, 84.3, 85.0, 85.6, 86.3, 87.5, 88.8, 89.0, 89.9, 90.8},
		15:  {81.1, 84.7, 85.2, 85.9, 86.5, 87.2, 88.3, 89.6, 89.8, 90.7, 91.6},
		20:  {81.7, 85.4, 86.0, 86.7, 87.4, 88.0, 89.2, 90.4, 90.6, 91.4, 92.2},
		25:  {82.5, 85.9, 86.5, 86.6, 87.3, 87.8, 88.7, 89.3, 89.7, 89.8, 90.2},
		30:  {83.4, 85.8, 86.2, 86.0, 86.8, 87.4, 87.9, 88.9, 88.5, 88.7, 88.7},
		35:  {84.3, 83.3, 83.2, 83.2, 83.2, 83.2, 83.2, 83.2, 87.1, 87.1, 87.2},
		40:  {83.3, 82.2, 82.3, 82.2, 82.2, 82.1, 82.1, 82.0, 86.4, 86.6, 86.5},
		45:  {81.1, 81.3, 82.3, 82.2, 82.2, 81.8, 81.7, 81.4, 85.4, 85.6, nan},
		53:  {79.2, 80.5, 80.4, 80.3, 80.2, 80.1, 80.0, 79.6, nan, nan, nan},
	},
}

var a223To2 = &PerformanceTable{
	TempC: a223TempAxis,
	AltFt: a223AltAxis,
	Rows: map[float64][]float64{
		-54: {68.1, 70.3, 71.5, 72.1, 72.7, 73.7, 74.7, 75.6, 76.6, 77.6, 78.5},
		-50: {68.7, 70.9, 71.6, 72.2, 72.7, 73.7, 74.5, 76.3, 77.3, 78.2, 79.5},
		-45: {69.9, 72.1, 73.0, 73.4, 74.2, 74.9, 75.7, 76.3, 77.0, 78.1, 79.4},
		-40: {70.9, 73.2, 74.3, 74.9, 75.6, 76.7, 76.6, 77.8, 78.9, 79.7, 80.7},
		-35: {71.9, 73.2, 74.5, 75.1, 75.7, 76.6, 76.6, 77.8, 78.9, 79.8, 80.7},
		-30: {72.5, 73.8, 75.2, 75.9, 76.6, 77.6, 77.6, 78.7, 79.8, 80.7, 81.6},
		-25: {72.4, 74.8, 75.6, 76.7, 77.4, 78.4, 78.4, 79.4, 80.4, 81.4, 82.4},
		-20: {71.7, 75.2, 75.4, 76.9, 77.8, 79.0, 78.9, 79.7, 80.2, 81.3, 82.4},
		-15: {71.0, 76.2, 76.7, 77.6, 78.8, 80.1, 80.1, 81.2, 82.2, 82.9, 84.0},
		-10: {72.0, 77.6, 78.1, 79.0, 79.7, 81.2, 81.4, 82.5, 83.6, 84.2, 85.4},
		-5:  {73.0, 77.7, 79.0, 80.0, 80.9, 82.0, 82.6, 83.7, 84.8, 85.6, 86.2},
		0:   {75.2, 78.4, 79.7, 80.7, 81.4, 82.8, 83.6, 84.8, 85.8, 86.6, 87.2},
		5:   {77.8, 77.9, 79.1, 80.1, 80.8, 82.1, 83.0, 84.0, 85.2, 85.4, 87.0},
		10:  {79.8, 79.1, 80.2, 81.2, 81.7, 82.8, 83.6, 85.0, 86.2, 87.6, 86.7},
		15:  {82.1, 79.8, 80.4, 81.8, 82.3, 83.3, 84.0, 84.6, 86.4, 86.6, 86.4},
		20:  {84.7, 81.0, 81.4, 82.7, 83.2, 84.2, 85.4, 85.5, 85.4, 86.6, 86.6},
		25:  {87.2, 81.7, 82.7, 83.4, 83.7, 84.0, 84.5, 85.4, 85.4, 86.6, 86.0},
		30:  {89.2, 81.8, 82.7, 82.9, 82.7, 82.9, 83.3, 83.8, 85.0, 86.0, 86.0},
		35:  {90.8, 78.4, 78.8, 79.0, 79.3, 79.9, 80.6, 81.2, 82.0, 82.8, 83.0},
		40:  {92.0, 78.0, 78.4, 78.7, 78.8, 79.3, 79.7, 79.9, 80.9, 81.2, 81.6},
		45:  {77.0, 77.3, 77.7, 77.0, 77.6, 78.1, 78.7, 79.6, 78.1, 78.4, nan},
		53:  {75.7, 77.3, 77.1, 77.0, 76.9, 76.8, 76.8, 76.6, nan, nan, nan},
	},
}

var a223Config = &AircraftConfig{
	Key:   KeyA223,
	Label: "A220-300",
	Derates: PerModeTables{
		Tables: map[ThrustMode]*PerformanceTable{
			FullRated: a223Max,
			Derate1:   a223To1,
			Derate2:   a223To2,
		},
	},
	// Infinite Flight throttle calibration (assumed): slider 0 = 20% N1,
	// slider 100 = 101% N1.
	Slider:      SliderCalibration{N1AtZero: 20, N1AtFull: 101},
	FlexCapable: true,
}
