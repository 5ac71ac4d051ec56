package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"

	"github.com/curbz/niner-one/internal/briefing"
	"github.com/curbz/niner-one/internal/liveserver"
	"github.com/curbz/niner-one/internal/perf"
	"github.com/curbz/niner-one/internal/simbrief"
	"github.com/curbz/niner-one/pkg/util"
)

// Config is the YAML application configuration.
type Config struct {
	SimBrief struct {
		Username            string `yaml:"username"`
		PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
	} `yaml:"simbrief"`

	// Aircraft overrides detection when set, e.g. "B772".
	Aircraft string `yaml:"aircraft"`

	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	LogLevel string `yaml:"log_level"`
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	ofpPath := flag.String("ofp", "", "read the OFP JSON from a file instead of SimBrief")
	textPath := flag.String("text", "", "parse a pasted text OFP from a file instead of SimBrief")
	aircraft := flag.String("aircraft", "", "force the aircraft key (one of "+strings.Join(perf.SupportedAircraft(), ", ")+")")
	username := flag.String("username", "", "SimBrief username (overrides the config)")
	serve := flag.Bool("serve", false, "start the live server and keep polling SimBrief")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *username != "" {
		cfg.SimBrief.Username = *username
	}
	if *aircraft != "" {
		cfg.Aircraft = *aircraft
	}
	setupLogging(cfg.LogLevel)

	// text path: only the takeoff block is available, no overview
	if *textPath != "" {
		fl, err := flightFromText(*textPath, cfg.Aircraft)
		if err != nil {
			log.Fatal(err)
		}
		renderTakeoff(fl.Takeoff)
		return
	}

	fetch := fetcher(cfg, *ofpPath)
	fl, err := fetch(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	renderTakeoff(fl.Takeoff)
	renderOverview(fl)

	if !*serve {
		return
	}
	if *ofpPath != "" {
		log.Fatal("-serve needs a SimBrief username to poll, not a fixed -ofp file")
	}

	port := cfg.Server.Port
	if port == "" {
		port = "8765"
	}
	interval := time.Duration(cfg.SimBrief.PollIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 60 * time.Second
	}

	ls := liveserver.New()
	srv := ls.Start(port)
	ls.Publish(fl)
	pterm.Info.Printfln("live briefing at http://localhost:%s/api/v1/briefing (polling every %s)", port, interval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := fingerprint(fl)

	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
			return
		case <-ticker.C:
			next, err := fetch(ctx)
			if err != nil {
				log.WithError(err).Warn("poll failed, keeping last briefing")
				continue
			}
			fp := fingerprint(next)
			if fp == last {
				continue
			}
			last = fp
			log.Info("OFP changed, publishing new briefing")
			ls.Publish(next)
			renderTakeoff(next.Takeoff)
		}
	}
}

func loadConfig(path string) *Config {
	cfg, err := util.LoadConfig[Config](path)
	if err != nil {
		log.WithError(err).Warnf("no usable config at %s, relying on flags", path)
		return &Config{}
	}
	return cfg
}

func setupLogging(level string) {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("unknown log level %q, using info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// fetcher returns the OFP source: a file on disk or the SimBrief API.
func fetcher(cfg *Config, ofpPath string) func(context.Context) (*briefing.Flight, error) {
	if ofpPath != "" {
		return func(ctx context.Context) (*briefing.Flight, error) {
			data, err := os.ReadFile(ofpPath)
			if err != nil {
				return nil, err
			}
			ofp, err := simbrief.DecodeOFP(data)
			if err != nil {
				return nil, err
			}
			return briefing.BuildFlight(ofp, cfg.Aircraft)
		}
	}

	client := simbrief.NewClient()
	return func(ctx context.Context) (*briefing.Flight, error) {
		if cfg.SimBrief.Username == "" {
			return nil, fmt.Errorf("no SimBrief username configured (config file or -username)")
		}
		ofp, err := client.FetchOFP(ctx, cfg.SimBrief.Username)
		if err != nil {
			return nil, err
		}
		return briefing.BuildFlight(ofp, cfg.Aircraft)
	}
}

func flightFromText(path, aircraftOverride string) (*briefing.Flight, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := string(data)

	info, err := simbrief.ParseTakeoffText(text)
	if err != nil {
		return nil, err
	}
	aircraft := aircraftOverride
	if aircraft == "" {
		aircraft = simbrief.DetectAircraftFromText(text)
	}
	if aircraft == "" {
		return nil, fmt.Errorf("could not detect a supported aircraft in %s, use -aircraft", path)
	}

	to, err := briefing.Build(info, aircraft)
	if err != nil {
		return nil, err
	}
	return &briefing.Flight{Takeoff: to}, nil
}

// fingerprint serializes a briefing with the timestamp zeroed so two polls
// of the same plan compare equal.
func fingerprint(fl *briefing.Flight) string {
	clone := *fl
	if clone.Takeoff != nil {
		to := *clone.Takeoff
		to.GeneratedAt = time.Time{}
		clone.Takeoff = &to
	}
	data, err := json.Marshal(&clone)
	if err != nil {
		return ""
	}
	return string(data)
}
