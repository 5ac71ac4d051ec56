package perf

import (
	"fmt"
	"sort"
)

// Registry keys for the supported airframes.
const (
	KeyA223 = "A223" // A220-300
	KeyB772 = "B772" // B777-200ER
	KeyB38M = "B38M" // B737 MAX 8
	KeyA388 = "A388" // A380-800
)

// ConfigError means the caller asked for an aircraft or an aircraft/mode
// table combination the registry does not define. It is fatal to the
// request and never retried.
type ConfigError struct {
	Aircraft string
	Mode     ThrustMode
	Reason   string
}

func (e *ConfigError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("perf: %s", e.Reason)
	}
	return fmt.Sprintf("perf: no %s table configured for aircraft %q", e.Mode, e.Aircraft)
}

// registry is the closed aircraft-to-config mapping, resolved at package
// init. Unknown keys fail fast; there is no default aircraft.
var registry = map[string]*AircraftConfig{
	KeyA223: a223Config,
	KeyB772: b772Config,
	KeyB38M: b38mConfig,
	KeyA388: a388Config,
}

func init() {
	// Literal tables are hand-transcribed; catch a bad edit at startup
	// rather than as a silent misread during interpolation.
	for key, cfg := range registry {
		for _, tbl := range cfg.tables() {
			if err := tbl.Validate(); err != nil {
				panic(fmt.Sprintf("perf: invalid table for %s: %v", key, err))
			}
		}
	}
}

// tables lists every PerformanceTable a config owns, for validation.
func (c *AircraftConfig) tables() []*PerformanceTable {
	switch p := c.Derates.(type) {
	case PerModeTables:
		out := make([]*PerformanceTable, 0, len(p.Tables))
		for _, t := range p.Tables {
			out = append(out, t)
		}
		return out
	case ScalingFromFullRated:
		return []*PerformanceTable{p.Full}
	}
	return nil
}

// Aircraft resolves a registry key to its configuration.
func Aircraft(key string) (*AircraftConfig, error) {
	cfg, ok := registry[key]
	if !ok {
		return nil, &ConfigError{Aircraft: key, Reason: fmt.Sprintf("unsupported aircraft %q", key)}
	}
	return cfg, nil
}

// SupportedAircraft returns the registry keys in stable order.
func SupportedAircraft() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
