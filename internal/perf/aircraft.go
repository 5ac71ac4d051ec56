package perf

// ThrustMode identifies the requested takeoff thrust rating.
type ThrustMode int

const (
	FullRated ThrustMode = iota // MAX / TO
	Derate1                     // TO1 / D-TO1
	Derate2                     // TO2 / D-TO2
	AssumedTemp                 // FLEX: full rated evaluated at the selected temperature
)

func (m ThrustMode) String() string {
	switch m {
	case FullRated:
		return "MAX"
	case Derate1:
		return "TO1"
	case Derate2:
		return "TO2"
	case AssumedTemp:
		return "FLEX"
	}
	return "UNKNOWN"
}

// DeratePolicy is how an aircraft produces a derated N1. Airbus published
// separate TO1/TO2 sheets for the A220, so that type carries a table per
// mode; the Boeing types only have the full-rated sheet and scale the
// margin above idle instead.
type DeratePolicy interface {
	// n1 computes the N1 percent for the given mode at the query point.
	// mode is never AssumedTemp here: the dispatch facade resolves FLEX to
	// a full-rated lookup before the policy is consulted.
	n1(mode ThrustMode, altFt, tempC float64) (float64, bool)
}

// PerModeTables selects an independently published table per thrust mode.
type PerModeTables struct {
	Tables map[ThrustMode]*PerformanceTable
}

func (p PerModeTables) n1(mode ThrustMode, altFt, tempC float64) (float64, bool) {
	tbl, ok := p.Tables[mode]
	if !ok {
		return nan, false
	}
	return tbl.Bilinear(altFt, tempC), true
}

// ScalingFromFullRated derives TO1/TO2 from the full-rated table by scaling
// the thrust margin above idle:
//
//	derated = idle + (full - idle) * factor
//
// which keeps the reduction proportional at low-margin (cold, low altitude)
// conditions instead of subtracting a flat percentage. An uncertified
// full-rated lookup stays uncertified.
type ScalingFromFullRated struct {
	Full    *PerformanceTable
	IdleN1  float64
	Factors map[ThrustMode]float64
}

func (p ScalingFromFullRated) n1(mode ThrustMode, altFt, tempC float64) (float64, bool) {
	base := p.Full.Bilinear(altFt, tempC)
	if mode == FullRated {
		return base, true
	}
	factor, ok := p.Factors[mode]
	if !ok {
		return nan, false
	}
	if IsUndefined(base) {
		return base, true
	}
	return p.IdleN1 + (base-p.IdleN1)*factor, true
}

// SliderCalibration is the per-aircraft affine map from N1 percent to the
// Infinite Flight throttle slider position. The endpoints are modeling
// assumptions per airframe, not certified data, which is why they live on
// the aircraft config rather than in one global constant.
type SliderCalibration struct {
	N1AtZero float64 // N1 when the slider sits at 0%
	N1AtFull float64 // N1 when the slider sits at 100%
}

// SliderPercent maps an N1 percent onto the 0..100 slider range, clamping
// N1 into the calibrated span first. NaN in, NaN out.
func (c SliderCalibration) SliderPercent(n1 float64) float64 {
	if IsUndefined(n1) {
		return nan
	}
	clamped := n1
	if clamped < c.N1AtZero {
		clamped = c.N1AtZero
	}
	if clamped > c.N1AtFull {
		clamped = c.N1AtFull
	}
	slider := (clamped - c.N1AtZero) / (c.N1AtFull - c.N1AtZero) * 100.0
	if slider < 0 {
		slider = 0
	}
	if slider > 100 {
		slider = 100
	}
	return slider
}

// AircraftConfig bundles everything the engine needs for one airframe.
type AircraftConfig struct {
	Key   string // registry key, e.g. "B772"
	Label string // display name, e.g. "B777-200ER"

	Derates DeratePolicy
	Slider  SliderCalibration

	// FlexCapable gates the assumed-temperature substitution; aircraft
	// without it compute FLEX requests as full rated at actual OAT.
	FlexCapable bool

	// AlwaysFullRated forces every request to the full-rated table no
	// matter what the caller asked for (A380: only MTO is modeled).
	AlwaysFullRated bool
}
