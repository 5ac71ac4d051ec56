package briefing

import (
	"fmt"

	"github.com/curbz/niner-one/internal/metar"
	"github.com/curbz/niner-one/internal/simbrief"
)

// Flight is the full briefing document: the computed takeoff numbers plus
// the flight overview and decoded weather for both ends.
type Flight struct {
	Takeoff  *Takeoff           `json:"takeoff"`
	Overview *simbrief.Overview `json:"overview"`

	OrigWeather string `json:"orig_weather"`
	DestWeather string `json:"dest_weather"`
}

// BuildFlight assembles the complete briefing from a fetched OFP. The
// aircraftOverride, when non-empty, wins over detection; otherwise the
// airframe is detected from the OFP's aircraft descriptors.
func BuildFlight(ofp *simbrief.OFP, aircraftOverride string) (*Flight, error) {
	aircraft := aircraftOverride
	if aircraft == "" {
		aircraft = simbrief.DetectAircraft(ofp)
	}
	if aircraft == "" {
		return nil, fmt.Errorf("briefing: could not detect a supported aircraft from the OFP (name %q)",
			ofp.Aircraft.Name)
	}

	info, err := simbrief.ParseTakeoff(ofp)
	if err != nil {
		return nil, err
	}
	takeoff, err := Build(info, aircraft)
	if err != nil {
		return nil, err
	}

	overview := simbrief.ParseOverview(ofp)
	return &Flight{
		Takeoff:     takeoff,
		Overview:    overview,
		OrigWeather: metar.Decode(overview.OrigMETAR),
		DestWeather: metar.Decode(overview.DestMETAR),
	}, nil
}
