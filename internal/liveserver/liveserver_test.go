package liveserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/curbz/niner-one/internal/briefing"
	"github.com/curbz/niner-one/internal/perf"
	"github.com/curbz/niner-one/internal/simbrief"
)

func testFlight(t *testing.T) *briefing.Flight {
	t.Helper()
	info := &simbrief.TakeoffInfo{
		Airport: "EDDF", Runway: "18",
		OATC: 23, QNHinHg: 29.92, PressureAltFt: 364,
		ModeRaw: "TO", PacksOn: true,
	}
	to, err := briefing.Build(info, perf.KeyB772)
	if err != nil {
		t.Fatal(err)
	}
	return &briefing.Flight{
		Takeoff:  to,
		Overview: &simbrief.Overview{Origin: "EDDF", Destination: "KJFK"},
	}
}

func TestBriefingEndpoint(t *testing.T) {
	s := New()
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/briefing")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("before first publish: HTTP %d, want 404", resp.StatusCode)
	}

	s.Publish(testFlight(t))

	resp, err = http.Get(srv.URL + "/api/v1/briefing")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("HTTP %d, want 200", resp.StatusCode)
	}

	var fl briefing.Flight
	if err := json.NewDecoder(resp.Body).Decode(&fl); err != nil {
		t.Fatal(err)
	}
	if fl.Takeoff == nil || fl.Takeoff.Airport != "EDDF" {
		t.Errorf("briefing round-trip lost data: %+v", fl.Takeoff)
	}
}

func TestLiveSubscriber(t *testing.T) {
	s := New()
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	s.Publish(testFlight(t))

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	// the current state arrives immediately on connect
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var fl briefing.Flight
	if err := conn.ReadJSON(&fl); err != nil {
		t.Fatal(err)
	}
	if fl.Overview == nil || fl.Overview.Destination != "KJFK" {
		t.Errorf("initial push incomplete: %+v", fl.Overview)
	}

	// a publish reaches the subscriber
	next := testFlight(t)
	next.Overview.Destination = "KLAX"
	s.Publish(next)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&fl); err != nil {
		t.Fatal(err)
	}
	if fl.Overview.Destination != "KLAX" {
		t.Errorf("update push: destination = %s, want KLAX", fl.Overview.Destination)
	}
}

func TestPublishSnapshotsDeeply(t *testing.T) {
	s := New()
	fl := testFlight(t)
	s.Publish(fl)

	// mutating the caller's copy after publish must not leak through
	fl.Overview.Destination = "MUTATED"
	*fl.Takeoff.N1Percent = 0

	got := s.Latest()
	if got.Overview.Destination != "KJFK" {
		t.Errorf("published overview mutated: %s", got.Overview.Destination)
	}
	if *got.Takeoff.N1Percent == 0 {
		t.Error("published takeoff mutated through shared pointer")
	}
}
