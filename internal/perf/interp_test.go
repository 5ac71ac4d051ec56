package perf

import (
	"math"
	"testing"
)

// small table shared by the interpolation scenarios
func testTable() *PerformanceTable {
	return &PerformanceTable{
		TempC: []float64{0, 10},
		AltFt: []float64{0, 1000},
		Rows: map[float64][]float64{
			0:  {80.0, 82.0},
			10: {83.0, 85.0},
		},
	}
}

func TestLocate(t *testing.T) {
	axis := []float64{-10, 0, 10, 20}

	tests := []struct {
		name   string
		x      float64
		i0, i1 int
		v0, v1 float64
	}{
		{"below range clamps to first", -50, 0, 0, -10, -10},
		{"at first element", -10, 0, 0, -10, -10},
		{"above range clamps to last", 99, 3, 3, 20, 20},
		{"at last element", 20, 3, 3, 20, 20},
		{"interior bracket", 5, 1, 2, 0, 10},
		{"interior grid point", 0, 1, 2, 0, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			i0, i1, v0, v1 := Locate(axis, tc.x)
			if i0 != tc.i0 || i1 != tc.i1 || v0 != tc.v0 || v1 != tc.v1 {
				t.Fatalf("Locate(%v) = (%d,%d,%v,%v), want (%d,%d,%v,%v)",
					tc.x, i0, i1, v0, v1, tc.i0, tc.i1, tc.v0, tc.v1)
			}
		})
	}
}

func TestInterp1(t *testing.T) {
	if got := Interp1(5, 0, 10, 80, 90); got != 85 {
		t.Errorf("midpoint: got %v, want 85", got)
	}
	// collapsed bracket must not divide by zero
	if got := Interp1(5, 5, 5, 80, 90); got != 80 {
		t.Errorf("collapsed bracket: got %v, want 80", got)
	}
	// exact endpoints ignore the far value even when it is NaN
	if got := Interp1(0, 0, 10, 80, nan); got != 80 {
		t.Errorf("exact lower endpoint with NaN neighbour: got %v, want 80", got)
	}
	if got := Interp1(10, 0, 10, nan, 90); got != 90 {
		t.Errorf("exact upper endpoint with NaN neighbour: got %v, want 90", got)
	}
}

func TestBilinearCenter(t *testing.T) {
	tbl := testTable()
	got := tbl.Bilinear(500, 5)
	want := (80.0 + 82.0 + 83.0 + 85.0) / 4
	if got != want {
		t.Fatalf("Bilinear(500, 5) = %v, want %v", got, want)
	}
}

func TestBilinearClampedAltitude(t *testing.T) {
	// altitude below the axis clamps to the first column; result is the
	// 1-D interpolation of 80 and 83 along temperature
	tbl := testTable()
	got := tbl.Bilinear(-500, 5)
	if got != 81.5 {
		t.Fatalf("Bilinear(-500, 5) = %v, want 81.5", got)
	}
}

func TestBilinearDegenerateBoth(t *testing.T) {
	tbl := testTable()
	if got := tbl.Bilinear(-100, -20); got != 80.0 {
		t.Fatalf("clamped on both axes: got %v, want corner 80.0", got)
	}
	if got := tbl.Bilinear(5000, 50); got != 85.0 {
		t.Fatalf("clamped high on both axes: got %v, want corner 85.0", got)
	}
}

func TestBilinearDegenerateTemperature(t *testing.T) {
	tbl := testTable()
	// temperature above range clamps to the 10°C row
	if got := tbl.Bilinear(500, 50); got != 84.0 {
		t.Fatalf("got %v, want 84.0", got)
	}
}

func TestBilinearWithinCornerBounds(t *testing.T) {
	// with monotone corners the interpolated value must stay inside
	// [min(corners), max(corners)]
	tbl := testTable()
	for _, alt := range []float64{100, 250, 500, 900} {
		for _, temp := range []float64{1, 3.3, 5, 9} {
			v := tbl.Bilinear(alt, temp)
			if v < 80.0 || v > 85.0 {
				t.Errorf("Bilinear(%v, %v) = %v outside corner bounds [80, 85]", alt, temp, v)
			}
		}
	}
}

func TestBilinearAllCornersUndefined(t *testing.T) {
	tbl := &PerformanceTable{
		TempC: []float64{0, 10},
		AltFt: []float64{0, 1000},
		Rows: map[float64][]float64{
			0:  {nan, nan},
			10: {nan, nan},
		},
	}

	queries := []struct {
		name      string
		alt, temp float64
	}{
		{"interior point", 500, 5},
		{"grid lines on undefined cells", 0, 0},
		{"clamped corner", -500, -10},
	}
	for _, q := range queries {
		t.Run(q.name, func(t *testing.T) {
			if got := tbl.Bilinear(q.alt, q.temp); !math.IsNaN(got) {
				t.Fatalf("Bilinear(%v, %v) = %v, want NaN", q.alt, q.temp, got)
			}
		})
	}
}

func TestBilinearPartialUndefinedPoisons(t *testing.T) {
	// one uncertified corner with nonzero weight contaminates the result
	tbl := &PerformanceTable{
		TempC: []float64{0, 10},
		AltFt: []float64{0, 1000},
		Rows: map[float64][]float64{
			0:  {80.0, 82.0},
			10: {83.0, nan},
		},
	}
	if got := tbl.Bilinear(500, 5); !math.IsNaN(got) {
		t.Fatalf("interior query through NaN corner = %v, want NaN", got)
	}
	// but the defined grid points of the same table still read exactly
	if got := tbl.Bilinear(0, 10); got != 83.0 {
		t.Fatalf("on-grid defined cell next to NaN = %v, want 83.0", got)
	}
}
