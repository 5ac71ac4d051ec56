package simbrief

import (
	"strings"

	"github.com/curbz/niner-one/internal/perf"
)

// normalizeAircraftName maps a SimBrief aircraft descriptor to a registry
// key. Returns "" for airframes without performance tables.
func normalizeAircraftName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	switch {
	case strings.Contains(name, "737") && strings.Contains(name, "MAX"):
		return perf.KeyB38M
	case strings.Contains(name, "B38M"):
		return perf.KeyB38M
	case strings.Contains(name, "777-200"), strings.Contains(name, "B772"):
		return perf.KeyB772
	case strings.Contains(name, "A220-300"), strings.Contains(name, "A223"), strings.Contains(name, "BCS3"):
		return perf.KeyA223
	case strings.Contains(name, "A380-800"), strings.Contains(name, "A388"):
		return perf.KeyA388
	}
	return ""
}

// DetectAircraft inspects the OFP's aircraft descriptors in priority order
// and returns the matching registry key, or "" when none is supported.
func DetectAircraft(ofp *OFP) string {
	candidates := []string{
		ofp.Aircraft.Name,
		ofp.Aircraft.BaseType,
		ofp.Aircraft.ListType,
		ofp.Aircraft.ICAOCode,
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if key := normalizeAircraftName(c); key != "" {
			return key
		}
	}
	return ""
}

// DetectAircraftFromText scans a pasted OFP for a supported airframe.
func DetectAircraftFromText(text string) string {
	t := strings.ToUpper(text)
	switch {
	case strings.Contains(t, "B737 MAX 8"), strings.Contains(t, "737 MAX 8"), strings.Contains(t, "B38M"):
		return perf.KeyB38M
	case strings.Contains(t, "B777-200ER"), strings.Contains(t, "B772"):
		return perf.KeyB772
	case strings.Contains(t, "A380-800"), strings.Contains(t, "A388"):
		return perf.KeyA388
	case strings.Contains(t, "A220-300"), strings.Contains(t, "A223"), strings.Contains(t, "BCS3"):
		return perf.KeyA223
	}
	return ""
}

// NormalizeMode maps SimBrief's raw thrust setting strings (TO, D-TO1,
// D-TO2, FLEX 49, ...) onto the thrust mode enum. Anything unrecognized is
// full rated.
func NormalizeMode(raw string) perf.ThrustMode {
	t := strings.ToUpper(raw)
	switch {
	case strings.Contains(t, "FLEX"):
		return perf.AssumedTemp
	case strings.Contains(t, "TO2"):
		return perf.Derate2
	case strings.Contains(t, "TO1"):
		return perf.Derate1
	}
	return perf.FullRated
}

// IsFlexActive reports whether the plan uses an assumed temperature, either
// declared in the raw thrust string or implied by a selected temperature
// meaningfully above OAT. The 0.9 margin absorbs rounding in SimBrief's
// output.
func IsFlexActive(oatC float64, selTempC *float64, modeRaw string) bool {
	if strings.Contains(strings.ToUpper(modeRaw), "FLEX") {
		return true
	}
	return selTempC != nil && *selTempC > oatC+0.9
}
