package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/curbz/niner-one/internal/briefing"
)

var prt = message.NewPrinter(language.English)

// renderTakeoff prints the N1/slider result panel.
func renderTakeoff(to *briefing.Takeoff) {
	title := fmt.Sprintf("%s  %s RWY %s", to.AircraftLabel, to.Airport, to.Runway)

	var b strings.Builder
	if to.Certified() {
		b.WriteString(pterm.FgGreen.Sprintf("  N1         %6.1f %%\n", *to.N1Percent))
		b.WriteString(pterm.FgGreen.Sprintf("  IF slider  %6.1f %%\n", *to.SliderPercent))
	} else {
		b.WriteString(pterm.FgRed.Sprint("  N1         not available\n"))
		b.WriteString(pterm.FgRed.Sprint("  IF slider  not available\n"))
		b.WriteString("  conditions outside the certified envelope\n")
	}
	b.WriteString("\n")

	mode := to.ThrustMode
	if mode == "FLEX" && to.SelTempC != nil {
		mode = fmt.Sprintf("FLEX %.0f°C", *to.SelTempC)
	}
	fmt.Fprintf(&b, "  Thrust     %s (%s)\n", mode, to.ThrustModeRaw)
	if to.Flaps != "" {
		fmt.Fprintf(&b, "  Flaps      %s\n", to.Flaps)
	}
	fmt.Fprintf(&b, "  OAT        %.0f°C\n", to.OATC)
	fmt.Fprintf(&b, "  Press alt  %s ft\n", prt.Sprintf("%.0f", to.PressureAltFt))
	fmt.Fprintf(&b, "  Packs %s  A/ICE %s\n", onOff(to.PacksOn), onOff(to.AntiIceOn))

	if to.V1 != nil && to.VR != nil && to.V2 != nil {
		fmt.Fprintf(&b, "  V1 %.0f  VR %.0f  V2 %.0f\n", *to.V1, *to.VR, *to.V2)
	}

	pterm.DefaultBox.WithTitle(title).WithTitleTopLeft().Println(strings.TrimRight(b.String(), "\n"))
}

// renderOverview prints the flight summary and decoded weather.
func renderOverview(fl *briefing.Flight) {
	ov := fl.Overview
	if ov == nil {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s (%s) -> %s (%s)\n", ov.Origin, ov.OriginName, ov.Destination, ov.DestinationName)
	if ov.DepRunway != "" || ov.ArrRunway != "" {
		fmt.Fprintf(&b, "  RWY %s / %s\n", ov.DepRunway, ov.ArrRunway)
	}
	if ov.CruiseLevel != "" {
		fmt.Fprintf(&b, "  Cruise     %s\n", ov.CruiseLevel)
	}
	if ov.ETEMinutes != nil {
		fmt.Fprintf(&b, "  ETE        %dh%02dm\n", int(*ov.ETEMinutes)/60, int(*ov.ETEMinutes)%60)
	}
	if ov.TOWKg != nil {
		fmt.Fprintf(&b, "  TOW        %s kg\n", prt.Sprintf("%.0f", *ov.TOWKg))
	}
	if ov.ZFWKg != nil {
		fmt.Fprintf(&b, "  ZFW        %s kg\n", prt.Sprintf("%.0f", *ov.ZFWKg))
	}
	if ov.BlockFuelKg != nil {
		fmt.Fprintf(&b, "  Block fuel %s kg\n", prt.Sprintf("%.0f", *ov.BlockFuelKg))
	}
	if ov.Route != "" {
		fmt.Fprintf(&b, "  Route      %s\n", ov.Route)
	}
	pterm.DefaultBox.WithTitle("Flight").WithTitleTopLeft().Println(strings.TrimRight(b.String(), "\n"))

	if fl.OrigWeather != "" {
		pterm.DefaultBox.WithTitle("Departure weather").WithTitleTopLeft().Println(indent(fl.OrigWeather))
	}
	if fl.DestWeather != "" {
		pterm.DefaultBox.WithTitle("Destination weather").WithTitleTopLeft().Println(indent(fl.DestWeather))
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}
