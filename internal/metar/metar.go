// Package metar turns raw METAR strings into a short human summary for the
// briefing output. It is deliberately tolerant: SimBrief hands back whatever
// the reporting station published, and a partial decode beats none.
package metar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reStation  = regexp.MustCompile(`^[A-Z]{4}$`)
	reWind     = regexp.MustCompile(`^(\d{3}|VRB)(\d{2,3})(G(\d{2,3}))?KT$`)
	reVisSM    = regexp.MustCompile(`^(\d+)SM$`)
	reVisFrac  = regexp.MustCompile(`^(\d+/\d+)SM$`)
	reVisM     = regexp.MustCompile(`^(\d{4})$`)
	reCloud    = regexp.MustCompile(`^(FEW|SCT|BKN|OVC)(\d{3})`)
	reTempDew  = regexp.MustCompile(`^(M?\d{1,2})/(M?\d{1,2})$`)
	reAltInHg  = regexp.MustCompile(`^A(\d{4})$`)
	reAltHPa   = regexp.MustCompile(`^Q(\d{4})$`)
	reWeather  = regexp.MustCompile(`^(\+|-)?(RA|SN|TS|DZ|FG|BR|HZ|FU|SG|PL|GR|GS|IC|SA|DU|SQ|PO|FC|SS|DS)+$`)
)

var cloudLabels = map[string]string{
	"FEW": "Few",
	"SCT": "Scattered",
	"BKN": "Broken",
	"OVC": "Overcast",
}

// Decode summarizes a METAR, one fact per line. Station, wind, visibility,
// clouds, temperature/dewpoint, altimeter and weather codes are covered;
// the observation time is skipped on purpose. When nothing in the string
// parses the raw text is returned so the user still sees something.
func Decode(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "No METAR available"
	}

	tokens := strings.Fields(text)
	var parts []string

	if len(tokens) > 0 && reStation.MatchString(tokens[0]) {
		parts = append(parts, "Airport: "+tokens[0])
	}

	if line := decodeWind(tokens); line != "" {
		parts = append(parts, line)
	}
	if line := decodeVisibility(tokens); line != "" {
		parts = append(parts, line)
	}
	if line := decodeClouds(tokens); line != "" {
		parts = append(parts, line)
	}
	if line := decodeTempDew(tokens); line != "" {
		parts = append(parts, line)
	}
	if line := decodeAltimeter(tokens); line != "" {
		parts = append(parts, line)
	}
	if line := decodeWeather(tokens); line != "" {
		parts = append(parts, line)
	}

	if len(parts) == 0 {
		return "Decoded METAR unavailable\nRaw: " + raw
	}
	return strings.Join(parts, "\n")
}

func decodeWind(tokens []string) string {
	for _, tok := range tokens {
		m := reWind.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		base := m[1] + "°"
		if m[1] == "VRB" {
			base = "Variable"
		}
		if m[4] != "" {
			return fmt.Sprintf("Wind: %s at %s kt gusting %s kt", base, m[2], m[4])
		}
		return fmt.Sprintf("Wind: %s at %s kt", base, m[2])
	}
	return ""
}

func decodeVisibility(tokens []string) string {
	for _, tok := range tokens {
		if m := reVisSM.FindStringSubmatch(tok); m != nil {
			return "Visibility: " + m[1] + " sm"
		}
		if m := reVisFrac.FindStringSubmatch(tok); m != nil {
			return "Visibility: " + m[1] + " sm"
		}
		if m := reVisM.FindStringSubmatch(tok); m != nil {
			v, _ := strconv.Atoi(m[1])
			return fmt.Sprintf("Visibility: %d m", v)
		}
	}
	return ""
}

func decodeClouds(tokens []string) string {
	var layers []string
	for _, tok := range tokens {
		m := reCloud.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		hundreds, _ := strconv.Atoi(m[2])
		layers = append(layers, fmt.Sprintf("%s at %d ft", cloudLabels[m[1]], hundreds*100))
	}
	if len(layers) == 0 {
		return ""
	}
	return "Clouds: " + strings.Join(layers, ", ")
}

func decodeTempDew(tokens []string) string {
	for _, tok := range tokens {
		m := reTempDew.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		return fmt.Sprintf("Temp/Dew: %d°C / %d°C", parseTemp(m[1]), parseTemp(m[2]))
	}
	return ""
}

// parseTemp reads a METAR temperature group, M prefix meaning minus.
func parseTemp(s string) int {
	neg := strings.HasPrefix(s, "M")
	v, _ := strconv.Atoi(strings.TrimPrefix(s, "M"))
	if neg {
		return -v
	}
	return v
}

func decodeAltimeter(tokens []string) string {
	for _, tok := range tokens {
		if m := reAltInHg.FindStringSubmatch(tok); m != nil {
			v, _ := strconv.Atoi(m[1])
			return fmt.Sprintf("Altimeter: %.2f inHg", float64(v)/100)
		}
		if m := reAltHPa.FindStringSubmatch(tok); m != nil {
			return "Altimeter: " + m[1] + " hPa"
		}
	}
	return ""
}

func decodeWeather(tokens []string) string {
	var codes []string
	for _, tok := range tokens {
		if reWeather.MatchString(tok) {
			codes = append(codes, tok)
		}
	}
	if len(codes) == 0 {
		return ""
	}
	return "Weather: " + strings.Join(codes, ", ")
}
