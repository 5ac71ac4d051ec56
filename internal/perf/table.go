package perf

import (
	"fmt"
	"math"
)

// nan marks table cells where no certified N1 value exists (blank cells in
// the published performance sheets). It flows through the interpolation
// arithmetic untouched, so any query that leans on an uncertified cell
// comes out as NaN rather than a made-up number.
var nan = math.NaN()

// IsUndefined reports whether an N1 or slider value is the
// "outside certified envelope" sentinel.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// PerformanceTable is one certified takeoff N1 table for a single aircraft
// and thrust rating. Rows are keyed by the temperature axis value and hold
// one N1 percent per pressure-altitude column, in column order.
//
// Tables are built once from literal data at startup and never mutated.
type PerformanceTable struct {
	TempC []float64             // row axis, °C, strictly increasing
	AltFt []float64             // column axis, feet, strictly increasing
	Rows  map[float64][]float64 // temp -> N1 percent per AltFt column
}

// Validate checks the table invariants: both axes strictly increasing,
// every axis temperature has exactly one row, every row has one value per
// altitude column, and no orphan rows.
func (t *PerformanceTable) Validate() error {
	if len(t.TempC) == 0 || len(t.AltFt) == 0 {
		return fmt.Errorf("performance table has an empty axis")
	}
	for i := 1; i < len(t.TempC); i++ {
		if t.TempC[i] <= t.TempC[i-1] {
			return fmt.Errorf("temperature axis not strictly increasing at index %d (%.1f after %.1f)",
				i, t.TempC[i], t.TempC[i-1])
		}
	}
	for i := 1; i < len(t.AltFt); i++ {
		if t.AltFt[i] <= t.AltFt[i-1] {
			return fmt.Errorf("altitude axis not strictly increasing at index %d (%.0f after %.0f)",
				i, t.AltFt[i], t.AltFt[i-1])
		}
	}
	for _, temp := range t.TempC {
		row, ok := t.Rows[temp]
		if !ok {
			return fmt.Errorf("missing row for %.1f°C", temp)
		}
		if len(row) != len(t.AltFt) {
			return fmt.Errorf("row %.1f°C has %d cells, want %d", temp, len(row), len(t.AltFt))
		}
	}
	if len(t.Rows) != len(t.TempC) {
		return fmt.Errorf("table has %d rows for %d axis temperatures", len(t.Rows), len(t.TempC))
	}
	return nil
}
