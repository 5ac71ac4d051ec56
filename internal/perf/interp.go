package perf

import "sort"

// Interp1 is plain 1-D linear interpolation between (x0,y0) and (x1,y1).
// A collapsed bracket (x1 == x0) returns y0, which also guards the
// divide-by-zero when a degenerate bracket reaches this far. Queries that
// sit exactly on an endpoint return that endpoint's value directly, so an
// uncertified neighbour with zero interpolation weight cannot poison an
// on-grid lookup.
func Interp1(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 || x == x0 {
		return y0
	}
	if x == x1 {
		return y1
	}
	t := (x - x0) / (x1 - x0)
	return y0 + (y1-y0)*t
}

// Locate finds the bracketing pair for x in a sorted axis and returns
// (i0, i1, axis[i0], axis[i1]) with axis[i0] <= x <= axis[i1].
// Outside the axis it clamps to a degenerate bracket (i0 == i1) at the
// nearest endpoint; callers treat that as "use the single value".
func Locate(axis []float64, x float64) (i0, i1 int, v0, v1 float64) {
	if x <= axis[0] {
		return 0, 0, axis[0], axis[0]
	}
	last := len(axis) - 1
	if x >= axis[last] {
		return last, last, axis[last], axis[last]
	}
	// first axis element strictly greater than x
	i1 = sort.Search(len(axis), func(i int) bool { return axis[i] > x })
	i0 = i1 - 1
	return i0, i1, axis[i0], axis[i1]
}

// Bilinear interpolates the table at (pressure altitude ft, OAT °C).
//
// The four corner cells may include NaN where the source sheet is blank.
// Only the all-four-NaN case is checked explicitly; a partially uncertified
// neighbourhood contaminates the arithmetic and the result comes out NaN on
// its own. The evaluation order is fixed: altitude first at each bracketing
// temperature, then temperature between the two intermediates.
func (t *PerformanceTable) Bilinear(altFt, tempC float64) float64 {
	_, _, t0, t1 := Locate(t.TempC, tempC)
	c0, c1, a0, a1 := Locate(t.AltFt, altFt)

	q11 := t.Rows[t0][c0]
	q21 := t.Rows[t0][c1]
	q12 := t.Rows[t1][c0]
	q22 := t.Rows[t1][c1]

	if IsUndefined(q11) && IsUndefined(q21) && IsUndefined(q12) && IsUndefined(q22) {
		return nan
	}

	// degenerate bracket cases
	if t1 == t0 && a1 == a0 {
		return q11
	}
	if t1 == t0 {
		return Interp1(altFt, a0, a1, q11, q21)
	}
	if a1 == a0 {
		return Interp1(tempC, t0, t1, q11, q12)
	}

	fAtT0 := Interp1(altFt, a0, a1, q11, q21)
	fAtT1 := Interp1(altFt, a0, a1, q12, q22)
	return Interp1(tempC, t0, t1, fAtT0, fAtT1)
}
