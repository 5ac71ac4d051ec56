package simbrief

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SimBrief emits most numeric fields as JSON strings, and occasionally as
// real numbers depending on the endpoint. Number accepts both and records
// whether a usable value was present at all.
type Number struct {
	value float64
	ok    bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// tolerate junk like "N/A"; treat as absent
			return nil
		}
		n.value, n.ok = v, true
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	n.value, n.ok = v, true
	return nil
}

// Float returns the parsed value and whether one was present.
func (n Number) Float() (float64, bool) { return n.value, n.ok }

// FloatOr returns the parsed value or def when absent.
func (n Number) FloatOr(def float64) float64 {
	if n.ok {
		return n.value
	}
	return def
}

// Ptr returns the value as a pointer, nil when absent.
func (n Number) Ptr() *float64 {
	if !n.ok {
		return nil
	}
	v := n.value
	return &v
}

// --- OFP document ---

// OFP is the subset of the SimBrief flight plan document the app consumes.
type OFP struct {
	Aircraft AircraftInfo `json:"aircraft"`
	General  General      `json:"general"`
	Weather  Weather      `json:"weather"`
	Weights  Weights      `json:"weights"`
	Fuel     Fuel         `json:"fuel"`
	Times    Times        `json:"times"`
	TLR      *TLR         `json:"tlr"`
}

type AircraftInfo struct {
	Name     string `json:"name"`
	BaseType string `json:"base_type"`
	ListType string `json:"list_type"`
	ICAOCode string `json:"icao_code"`
}

type General struct {
	OrigICAO      string `json:"orig_icao"`
	Orig          string `json:"orig"`
	OrigName      string `json:"orig_name"`
	DestICAO      string `json:"dest_icao"`
	Dest          string `json:"dest"`
	DestName      string `json:"dest_name"`
	Route         string `json:"route"`
	InitialAlt    Number `json:"initial_altitude"`
	CruiseProfile string `json:"cruise_profile"`
}

type Weather struct {
	OrigMETAR string `json:"orig_metar"`
	DestMETAR string `json:"dest_metar"`
}

type Weights struct {
	ZFW   Number `json:"est_zfw"`
	TOW   Number `json:"est_tow"`
	Pax   Number `json:"pax_count"`
	Cargo Number `json:"cargo"`
}

type Fuel struct {
	Block Number `json:"plan_ramp"`
}

type Times struct {
	ETE Number `json:"est_time_enroute"`
}

// TLR is SimBrief's takeoff and landing report.
type TLR struct {
	Takeoff *TLRPhase `json:"takeoff"`
	Landing *TLRPhase `json:"landing"`
}

type TLRPhase struct {
	Conditions TLRConditions `json:"conditions"`
	Runways    []TLRRunway   `json:"runway"`
}

type TLRConditions struct {
	AirportICAO   string `json:"airport_icao"`
	PlannedRunway string `json:"planned_runway"`
	Temperature   Number `json:"temperature"`
	Altimeter     Number `json:"altimeter"`
	PlannedWeight Number `json:"planned_weight"`
}

type TLRRunway struct {
	Identifier      string `json:"identifier"`
	Elevation       Number `json:"elevation"`
	LengthTORA      Number `json:"length_tora"`
	LengthLDA       Number `json:"length_lda"`
	Length          Number `json:"length"`
	FlapSetting     string `json:"flap_setting"`
	ThrustSetting   string `json:"thrust_setting"`
	BleedSetting    string `json:"bleed_setting"`
	AntiIceSetting  string `json:"anti_ice_setting"`
	FlexTemperature Number `json:"flex_temperature"`
	MaxTemperature  Number `json:"max_temperature"`
	SpeedsV1        Number `json:"speeds_v1"`
	SpeedsVR        Number `json:"speeds_vr"`
	SpeedsV2        Number `json:"speeds_v2"`
}

// --- parsed takeoff info ---

// TakeoffInfo is the flattened takeoff picture the rest of the app works
// with, regardless of whether it came from the JSON TLR or the text OFP.
type TakeoffInfo struct {
	Airport string
	Runway  string

	OATC          float64
	QNHinHg       float64
	ElevationFt   float64
	PressureAltFt float64

	ModeRaw  string
	SelTempC *float64
	Bleeds   string
	PacksOn  bool
	AntiIce  bool
	Flaps    string

	V1, VR, V2 *float64

	PlannedTOWKg *float64
}

// PressureAltitude approximates pressure altitude from field elevation and
// the altimeter setting. One inch of mercury is close to 1000 ft near sea
// level.
func PressureAltitude(elevFt, qnhInHg float64) float64 {
	return elevFt + (29.92-qnhInHg)*1000.0
}

// ParseTakeoff extracts the takeoff picture from the OFP's TLR section.
// The planned runway is preferred; when it is missing from the runway list
// the first entry is used instead.
func ParseTakeoff(ofp *OFP) (*TakeoffInfo, error) {
	if ofp.TLR == nil || ofp.TLR.Takeoff == nil {
		return nil, fmt.Errorf("simbrief: OFP has no TLR takeoff section")
	}
	takeoff := ofp.TLR.Takeoff
	if len(takeoff.Runways) == 0 {
		return nil, fmt.Errorf("simbrief: TLR takeoff has no runway entries")
	}

	cond := takeoff.Conditions
	rwy := takeoff.Runways[0]
	if planned := strings.ToUpper(strings.TrimSpace(cond.PlannedRunway)); planned != "" {
		for _, r := range takeoff.Runways {
			if strings.ToUpper(r.Identifier) == planned {
				rwy = r
				break
			}
		}
	}

	info := &TakeoffInfo{
		Airport: strings.ToUpper(cond.AirportICAO),
		Runway:  rwy.Identifier,
		OATC:    cond.Temperature.FloatOr(15.0),
		QNHinHg: cond.Altimeter.FloatOr(29.92),

		ModeRaw: strings.TrimSpace(rwy.ThrustSetting),
		Bleeds:  strings.ToUpper(strings.TrimSpace(rwy.BleedSetting)),
		Flaps:   strings.TrimSpace(rwy.FlapSetting),

		V1: rwy.SpeedsV1.Ptr(),
		VR: rwy.SpeedsVR.Ptr(),
		V2: rwy.SpeedsV2.Ptr(),

		PlannedTOWKg: cond.PlannedWeight.Ptr(),
	}
	if info.Bleeds == "" {
		info.Bleeds = "AUTO"
	}
	info.PacksOn = info.Bleeds != "OFF"

	aice := strings.ToUpper(strings.TrimSpace(rwy.AntiIceSetting))
	info.AntiIce = aice != "" && aice != "OFF"

	info.ElevationFt = rwy.Elevation.FloatOr(0.0)
	info.PressureAltFt = PressureAltitude(info.ElevationFt, info.QNHinHg)

	// FLEX temperature; some airframes report it as max_temperature
	info.SelTempC = rwy.FlexTemperature.Ptr()
	if info.SelTempC == nil {
		info.SelTempC = rwy.MaxTemperature.Ptr()
	}

	return info, nil
}

// Overview is the flight-level summary shown next to the takeoff numbers.
type Overview struct {
	Origin          string
	OriginName      string
	Destination     string
	DestinationName string

	DepRunway         string
	DepRunwayLengthFt *float64
	ArrRunway         string
	ArrRunwayLengthFt *float64

	Route       string
	CruiseLevel string
	ETEMinutes  *float64
	BlockFuelKg *float64
	ZFWKg       *float64
	TOWKg       *float64
	Pax         *float64
	CargoKg     *float64

	OrigMETAR string
	DestMETAR string
}

// ParseOverview pulls the flight summary out of the OFP, falling back to
// the TLR sections where the general block is incomplete.
func ParseOverview(ofp *OFP) *Overview {
	ov := &Overview{
		Origin:          firstNonEmpty(ofp.General.OrigICAO, ofp.General.Orig),
		OriginName:      ofp.General.OrigName,
		Destination:     firstNonEmpty(ofp.General.DestICAO, ofp.General.Dest),
		DestinationName: ofp.General.DestName,
		Route:           ofp.General.Route,
		ZFWKg:           ofp.Weights.ZFW.Ptr(),
		TOWKg:           ofp.Weights.TOW.Ptr(),
		Pax:             ofp.Weights.Pax.Ptr(),
		CargoKg:         ofp.Weights.Cargo.Ptr(),
		BlockFuelKg:     ofp.Fuel.Block.Ptr(),
		OrigMETAR:       ofp.Weather.OrigMETAR,
		DestMETAR:       ofp.Weather.DestMETAR,
	}

	if ete, ok := ofp.Times.ETE.Float(); ok {
		minutes := ete / 60.0
		ov.ETEMinutes = &minutes
	}
	if alt, ok := ofp.General.InitialAlt.Float(); ok {
		ov.CruiseLevel = fmt.Sprintf("FL%03d", int(alt/100.0+0.5))
	}

	if ofp.TLR != nil {
		if t := ofp.TLR.Takeoff; t != nil {
			if ov.Origin == "" {
				ov.Origin = strings.ToUpper(t.Conditions.AirportICAO)
			}
			if rwy := pickRunway(t); rwy != nil {
				ov.DepRunway = rwy.Identifier
				if v, ok := rwy.LengthTORA.Float(); ok {
					ov.DepRunwayLengthFt = &v
				} else if v, ok := rwy.Length.Float(); ok {
					ov.DepRunwayLengthFt = &v
				}
			}
		}
		if l := ofp.TLR.Landing; l != nil {
			if ov.Destination == "" {
				ov.Destination = strings.ToUpper(l.Conditions.AirportICAO)
			}
			if rwy := pickRunway(l); rwy != nil {
				ov.ArrRunway = rwy.Identifier
				if v, ok := rwy.LengthLDA.Float(); ok {
					ov.ArrRunwayLengthFt = &v
				} else if v, ok := rwy.Length.Float(); ok {
					ov.ArrRunwayLengthFt = &v
				}
			}
		}
	}

	return ov
}

func pickRunway(phase *TLRPhase) *TLRRunway {
	if len(phase.Runways) == 0 {
		return nil
	}
	planned := strings.ToUpper(strings.TrimSpace(phase.Conditions.PlannedRunway))
	if planned != "" {
		for i := range phase.Runways {
			if strings.ToUpper(phase.Runways[i].Identifier) == planned {
				return &phase.Runways[i]
			}
		}
	}
	return &phase.Runways[0]
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
