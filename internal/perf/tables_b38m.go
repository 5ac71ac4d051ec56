package perf

// B737 MAX 8 (LEAP-1B27) full-rated takeoff N1, packs ON, engine anti-ice
// ON or OFF. Like the 777 only the non-derated sheet is carried; the fixed
// derates TO1/TO2 scale the margin above idle by 0.9/0.8.

var b38mTempAxis = []float64{
	-54, -40, -30, -20, -10,
	0, 5, 10, 15, 20,
	25, 30, 35, 40, 45, 50,
}

var b38mAltAxis = []float64{
	-2000, 0, 1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000,
}

var b38mMax = &PerformanceTable{
	TempC: b38mTempAxis,
	AltFt: b38mAltAxis,
	Rows: map[float64][]float64{
		-54: {83.1, 85.2, 85.7, 86.2, 86.7, 87.2, 87.8, 88.4, 89.0, 89.5},
		-40: {85.0, 87.1, 87.6, 88.1, 88.7, 89.2, 89.8, 90.4, 91.0, 91.5},
		-30: {86.4, 88.5, 89.0, 89.6, 90.1, 90.7, 91.2, 91.8, 92.4, 93.0},
		-20: {87.8, 89.9, 90.4, 91.0, 91.5, 92.1, 92.7, 93.3, 93.9, 94.5},
		-10: {89.1, 91.3, 91.8, 92.4, 92.9, 93.5, 94.1, 94.7, 95.3, 95.9},
		0:   {90.4, 92.6, 93.2, 93.8, 94.3, 94.9, 95.5, 96.1, 96.7, 97.3},
		5:   {91.1, 93.3, 93.9, 94.4, 95.0, 95.6, 96.2, 96.8, 97.4, 98.0},
		10:  {91.7, 94.0, 94.5, 95.1, 95.7, 96.3, 96.9, 97.5, 98.1, 98.7},
		15:  {92.4, 94.6, 95.2, 95.8, 96.4, 97.0, 97.6, 98.2, 98.8, 99.3},
		20:  {93.0, 95.3, 95.9, 96.5, 97.1, 97.7, 98.3, 98.9, 99.4, 99.2},
		25:  {93.6, 96.0, 96.6, 97.2, 97.8, 98.3, 98.9, 99.2, 99.0, 98.7},
		30:  {94.2, 96.6, 97.1, 97.5, 97.9, 98.1, 98.0, 97.8, 97.6, 97.3},
		35:  {94.0, 95.9, 95.9, 95.9, 95.8, 95.8, 95.7, 95.6, 95.4, 95.1},
		40:  {93.2, 94.8, 94.8, 94.7, 94.7, 94.6, 94.5, 94.4, nan, nan},
		45:  {92.1, 93.5, 93.5, 93.4, 93.4, 93.3, nan, nan, nan, nan},
		50:  {90.8, 92.1, 92.0, 92.0, nan, nan, nan, nan, nan, nan},
	},
}

var b38mConfig = &AircraftConfig{
	Key:   KeyB38M,
	Label: "B737 MAX 8",
	Derates: ScalingFromFullRated{
		Full:   b38mMax,
		IdleN1: 20,
		Factors: map[ThrustMode]float64{
			Derate1: 0.9,
			Derate2: 0.8,
		},
	},
	Slider:      SliderCalibration{N1AtZero: 20, N1AtFull: 101},
	FlexCapable: true,
}
