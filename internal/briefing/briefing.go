// Package briefing glues the parsed SimBrief takeoff picture to the
// performance engine and assembles the record the CLI and the live server
// present.
package briefing

import (
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/curbz/niner-one/internal/perf"
	"github.com/curbz/niner-one/internal/simbrief"
)

// Takeoff is one computed takeoff briefing. N1 and slider are pointers
// because NaN has no JSON encoding: nil means the query point fell outside
// the certified envelope.
type Takeoff struct {
	Aircraft      string `json:"aircraft"`
	AircraftLabel string `json:"aircraft_label"`
	Airport       string `json:"airport"`
	Runway        string `json:"runway"`

	N1Percent     *float64 `json:"n1_percent"`
	SliderPercent *float64 `json:"if_slider_percent"`

	Flaps         string   `json:"flaps,omitempty"`
	ThrustModeRaw string   `json:"thrust_mode_raw"`
	ThrustMode    string   `json:"thrust_mode"`
	V1            *float64 `json:"v1,omitempty"`
	VR            *float64 `json:"vr,omitempty"`
	V2            *float64 `json:"v2,omitempty"`

	PacksOn    bool `json:"packs_on"`
	AntiIceOn  bool `json:"anti_ice_on"`
	FlexActive bool `json:"flex_active"`

	OATC          float64  `json:"oat_c"`
	PressureAltFt float64  `json:"pressure_alt_ft"`
	SelTempC      *float64 `json:"sel_temp_c,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Certified reports whether the briefing carries usable thrust numbers.
func (t *Takeoff) Certified() bool {
	return t.N1Percent != nil && t.SliderPercent != nil
}

// Build computes the takeoff briefing for the given aircraft key from the
// parsed takeoff info.
func Build(info *simbrief.TakeoffInfo, aircraftKey string) (*Takeoff, error) {
	cfg, err := perf.Aircraft(aircraftKey)
	if err != nil {
		return nil, err
	}

	mode := simbrief.NormalizeMode(info.ModeRaw)

	// flexActive is a display flag only: the temperature-margin heuristic
	// also trips on the max_temperature fallback, which is not a request
	// for reduced thrust. The actual assumed-temperature substitution
	// happens only when the plan's thrust setting itself says FLEX.
	flexActive := simbrief.IsFlexActive(info.OATC, info.SelTempC, info.ModeRaw)

	req := perf.Request{
		Aircraft:      aircraftKey,
		PressureAltFt: info.PressureAltFt,
		OATC:          info.OATC,
		Mode:          mode,
	}
	if mode == perf.AssumedTemp {
		req.AssumedTempC = info.SelTempC
	}

	res, err := perf.Compute(req)
	if err != nil {
		return nil, err
	}

	modeRaw := info.ModeRaw
	if modeRaw == "" {
		modeRaw = mode.String()
	}

	b := &Takeoff{
		Aircraft:      cfg.Key,
		AircraftLabel: cfg.Label,
		Airport:       info.Airport,
		Runway:        info.Runway,

		N1Percent:     finite(res.N1Percent),
		SliderPercent: finite(res.SliderPercent),

		Flaps:         info.Flaps,
		ThrustModeRaw: modeRaw,
		ThrustMode:    mode.String(),
		V1:            info.V1,
		VR:            info.VR,
		V2:            info.V2,

		PacksOn:    info.PacksOn,
		AntiIceOn:  info.AntiIce,
		FlexActive: flexActive,

		OATC:          info.OATC,
		PressureAltFt: info.PressureAltFt,
		SelTempC:      info.SelTempC,

		GeneratedAt: time.Now().UTC(),
	}

	if !b.Certified() {
		log.WithFields(log.Fields{
			"aircraft": cfg.Key,
			"alt_ft":   info.PressureAltFt,
			"oat_c":    info.OATC,
		}).Warn("takeoff conditions outside the certified envelope")
	}
	return b, nil
}

// finite converts a possibly-NaN value into its JSON-safe pointer form.
func finite(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
