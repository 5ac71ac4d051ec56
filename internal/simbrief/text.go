package simbrief

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Regexes for the text OFP's takeoff performance block, e.g.
//
//	APT EDDF/FRANKFURT MAIN
//	RWY 18/ TORA 4000M
//	OAT 23  QNH 29.92  ELEV 364
//	FLAPS 1+F  THRUST FLEX  SEL TEMP 49
//	BLEEDS ON  A/ICE OFF
//	V1 148 VR 152 V2 157
var (
	reAirport = regexp.MustCompile(`(?m)APT\s+([A-Z0-9]{4})/`)
	reRunway  = regexp.MustCompile(`(?m)RWY\s+([0-9A-Z]{2,3})/`)
	reOAT     = regexp.MustCompile(`(?m)OAT\s+(-?\d+)`)
	reQNH     = regexp.MustCompile(`(?m)QNH\s+(\d+\.\d+)`)
	reElev    = regexp.MustCompile(`(?m)ELEV\s+(-?\d+)`)
	reFlaps   = regexp.MustCompile(`(?m)FLAPS\s+([0-9A-Z\+]+)`)
	reThrust  = regexp.MustCompile(`(?m)THRUST\s+([A-Z0-9\-]+)`)
	reSelTemp = regexp.MustCompile(`(?m)SEL TEMP\s+(-?\d+)`)
	reBleeds  = regexp.MustCompile(`(?m)BLEEDS\s+([A-Z]+)`)
	reAntiIce = regexp.MustCompile(`(?m)A/ICE\s+([A-Z]+)`)
	reV1      = regexp.MustCompile(`(?m)V1\s+(\d+)`)
	reVR      = regexp.MustCompile(`(?m)VR\s+(\d+)`)
	reV2      = regexp.MustCompile(`(?m)V2\s+(\d+)`)
)

func findString(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func findFloat(re *regexp.Regexp, text string) *float64 {
	s := findString(re, text)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseTakeoffText is the fallback parser for a pasted text OFP. It never
// fails outright; fields it cannot find are left at their defaults, except
// that a block with neither airport nor thrust data is rejected.
func ParseTakeoffText(text string) (*TakeoffInfo, error) {
	info := &TakeoffInfo{
		Airport: findString(reAirport, text),
		Runway:  findString(reRunway, text),
		ModeRaw: findString(reThrust, text),
		Flaps:   findString(reFlaps, text),
		Bleeds:  findString(reBleeds, text),

		OATC:    15.0,
		QNHinHg: 29.92,

		SelTempC: findFloat(reSelTemp, text),
		V1:       findFloat(reV1, text),
		VR:       findFloat(reVR, text),
		V2:       findFloat(reV2, text),
	}
	if info.Airport == "" && info.ModeRaw == "" {
		return nil, fmt.Errorf("simbrief: no takeoff performance data found in text")
	}

	if v := findFloat(reOAT, text); v != nil {
		info.OATC = *v
	}
	if v := findFloat(reQNH, text); v != nil {
		info.QNHinHg = *v
	}
	if v := findFloat(reElev, text); v != nil {
		info.ElevationFt = *v
	}
	info.PressureAltFt = PressureAltitude(info.ElevationFt, info.QNHinHg)

	if info.Bleeds == "" {
		info.Bleeds = "AUTO"
	}
	info.PacksOn = strings.ToUpper(info.Bleeds) != "OFF"

	aice := strings.ToUpper(findString(reAntiIce, text))
	info.AntiIce = aice != "" && aice != "OFF"

	return info, nil
}
