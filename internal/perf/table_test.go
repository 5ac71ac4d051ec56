package perf

import (
	"math"
	"testing"
)

func TestValidateCatchesBadTables(t *testing.T) {
	tests := []struct {
		name string
		tbl  *PerformanceTable
	}{
		{"empty axis", &PerformanceTable{TempC: nil, AltFt: []float64{0}, Rows: map[float64][]float64{}}},
		{"non-increasing temperature axis", &PerformanceTable{
			TempC: []float64{0, 0},
			AltFt: []float64{0},
			Rows:  map[float64][]float64{0: {1}},
		}},
		{"non-increasing altitude axis", &PerformanceTable{
			TempC: []float64{0},
			AltFt: []float64{1000, 500},
			Rows:  map[float64][]float64{0: {1, 2}},
		}},
		{"missing row", &PerformanceTable{
			TempC: []float64{0, 10},
			AltFt: []float64{0},
			Rows:  map[float64][]float64{0: {1}},
		}},
		{"short row", &PerformanceTable{
			TempC: []float64{0},
			AltFt: []float64{0, 1000},
			Rows:  map[float64][]float64{0: {1}},
		}},
		{"orphan row", &PerformanceTable{
			TempC: []float64{0},
			AltFt: []float64{0},
			Rows:  map[float64][]float64{0: {1}, 10: {2}},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.tbl.Validate(); err == nil {
				t.Fatalf("Validate accepted a broken table")
			}
		})
	}
}

func TestRegistryTablesValid(t *testing.T) {
	for key, cfg := range registry {
		for _, tbl := range cfg.tables() {
			if err := tbl.Validate(); err != nil {
				t.Errorf("%s: %v", key, err)
			}
		}
	}
}

// Querying any table exactly at a grid point must return that cell, for
// every defined cell, and NaN for every uncertified cell.
func TestExactGridLookup(t *testing.T) {
	for key, cfg := range registry {
		for _, tbl := range cfg.tables() {
			for _, temp := range tbl.TempC {
				row := tbl.Rows[temp]
				for ci, alt := range tbl.AltFt {
					got := tbl.Bilinear(alt, temp)
					want := row[ci]
					if math.IsNaN(want) {
						if !math.IsNaN(got) {
							t.Errorf("%s (%v°C, %vft): got %v, want NaN", key, temp, alt, got)
						}
						continue
					}
					if got != want {
						t.Errorf("%s (%v°C, %vft): got %v, want %v", key, temp, alt, got, want)
					}
				}
			}
		}
	}
}
