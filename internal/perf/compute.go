package perf

// Request is one takeoff N1 computation. AssumedTempC is only consulted
// when Mode is AssumedTemp; nil there falls back to a full-rated lookup at
// the actual OAT, matching how a missing SEL TEMP is treated upstream.
type Request struct {
	Aircraft      string
	PressureAltFt float64
	OATC          float64
	Mode          ThrustMode
	AssumedTempC  *float64
}

// Result carries the N1 percent and the matching slider position. Both are
// NaN when the query point falls outside the certified envelope; that is a
// valid terminal value, not an error, and callers must render it as
// "not available" rather than zero.
type Result struct {
	N1Percent     float64
	SliderPercent float64
}

// Compute resolves the aircraft, applies the FLEX substitution and the
// per-aircraft mode policy, interpolates N1 and maps it onto the slider.
// The two outputs are always produced together.
func Compute(req Request) (Result, error) {
	cfg, err := Aircraft(req.Aircraft)
	if err != nil {
		return Result{}, err
	}

	mode := req.Mode
	tempC := req.OATC

	// Aircraft for which only one certified rating is modeled ignore the
	// requested mode outright.
	if cfg.AlwaysFullRated {
		mode = FullRated
	}

	// FLEX is numerically a full-rated lookup at the selected temperature,
	// not a distinct table.
	if mode == AssumedTemp {
		if cfg.FlexCapable && req.AssumedTempC != nil {
			tempC = *req.AssumedTempC
		}
		mode = FullRated
	}

	n1, ok := cfg.Derates.n1(mode, req.PressureAltFt, tempC)
	if !ok {
		return Result{}, &ConfigError{Aircraft: cfg.Key, Mode: mode}
	}

	return Result{
		N1Percent:     n1,
		SliderPercent: cfg.Slider.SliderPercent(n1),
	}, nil
}
