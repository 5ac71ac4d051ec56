package perf

// B777-200ER (GE90-94B) full-rated takeoff N1, packs ON, engine anti-ice
// ON or OFF, wing anti-ice OFF or AUTO. Only the non-derated sheet was
// published; TO1/TO2 scale the margin above idle by 0.9/0.8.

var b772TempAxis = []float64{
	-50, -40, -30, -20, -10,
	0, 5, 10, 15, 20,
	25, 30, 35, 40, 45, 50, 60,
}

var b772AltAxis = []float64{
	-2000, 0, 1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000,
}

var b772Max = &PerformanceTable{
	TempC: b772TempAxis,
	AltFt: b772AltAxis,
	Rows: map[float64][]float64{
		-50: {86.7, 88.9, 89.4, 89.9, 90.4, 90.9, 91.4, 92.0, 92.7, 93.1, 93.3},
		-40: {88.6, 90.9, 91.4, 91.9, 92.4, 92.9, 93.4, 94.0, 94.8, 95.1, 95.4},
		-30: {90.5, 92.8, 93.3, 93.9, 94.3, 94.8, 95.4, 96.0, 96.8, 97.1, 97.4},
		-20: {92.4, 94.7, 95.2, 95.8, 96.3, 96.8, 97.4, 97.9, 98.7, 99.1, 99.4},
		-10: {94.2, 96.5, 97.1, 97.7, 98.2, 99.7, 99.3, 99.9, 100.7, 101.1, 101.4},
		0:   {96.0, 98.3, 98.9, 99.5, 100.0, 100.5, 101.1, 101.7, 102.6, 103.0, 103.3},
		5:   {96.8, 99.2, 99.8, 100.4, 100.9, 101.4, 102.1, 102.7, 103.5, 103.9, 104.2},
		10:  {97.7, 100.1, 100.7, 101.3, 101.8, 102.4, 103.0, 103.6, 104.4, 104.8, 105.1},
		15:  {98.6, 101.0, 101.6, 102.2, 102.7, 103.3, 103.9, 104.5, 105.3, 105.6, 105.5},
		20:  {99.4, 101.9, 102.5, 103.1, 103.6, 104.1, 104.8, 105.0, 105.5, 105.3, 104.8},
		25:  {100.2, 102.7, 103.4, 104.0, 104.2, 104.3, 104.5, 104.6, 104.6, 104.2, 103.7},
		30:  {101.1, 103.6, 103.7, 103.6, 103.6, 103.7, 103.7, 103.7, 103.7, 103.3, 103.0},
		35:  {101.6, 103.1, 103.1, 103.1, 103.1, 103.2, 103.1, 103.2, 103.1, 102.7, 102.4},
		40:  {100.9, 102.6, 102.3, 102.5, 102.4, 102.5, 102.6, 102.5, 102.5, 102.0, 101.3},
		45:  {100.1, 101.4, 101.3, 101.3, 101.4, 101.3, 101.3, 101.3, 101.3, nan, nan},
		50:  {99.2, 99.9, 99.9, 99.8, 99.8, 99.9, nan, nan, nan, nan, nan},
		60:  {96.6, 96.9, 96.9, 96.9, nan, nan, nan, nan, nan, nan, nan},
	},
}

var b772Config = &AircraftConfig{
	Key:   KeyB772,
	Label: "B777-200ER",
	Derates: ScalingFromFullRated{
		Full:   b772Max,
		IdleN1: 20,
		Factors: map[ThrustMode]float64{
			Derate1: 0.9, // 10% thrust reduction
			Derate2: 0.8, // 20% thrust reduction
		},
	},
	Slider:      SliderCalibration{N1AtZero: 20, N1AtFull: 107},
	FlexCapable: true,
}
