// Package liveserver exposes the latest computed briefing over HTTP and
// pushes updates to WebSocket subscribers whenever a new OFP poll changes
// the result.
package liveserver

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/mohae/deepcopy"
	log "github.com/sirupsen/logrus"

	"github.com/curbz/niner-one/internal/briefing"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Server holds the latest briefing and the set of live subscribers.
type Server struct {
	mu     sync.Mutex
	latest *briefing.Flight
	subs   map[*websocket.Conn]struct{}
}

func New() *Server {
	return &Server{subs: make(map[*websocket.Conn]struct{})}
}

// Start serves the API on the given port (e.g. "8765") and returns the
// *http.Server so the caller can shut it down when desired.
func (s *Server) Start(port string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/briefing", s.briefingHandler)
	mux.HandleFunc("/api/v1/live", s.liveHandler)

	srv := &http.Server{Addr: ":" + port, Handler: mux}
	go func() {
		log.WithField("addr", srv.Addr).Info("live server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("live server stopped")
		}
	}()
	return srv
}

// Handler returns the API routes for mounting on an existing mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/briefing", s.briefingHandler)
	mux.HandleFunc("/api/v1/live", s.liveHandler)
	return mux
}

// Publish stores a deep-copied snapshot of the briefing and pushes it to
// every subscriber. The copy means a later refresh can never mutate a
// briefing a subscriber is still serializing.
func (s *Server) Publish(fl *briefing.Flight) {
	snap := deepcopy.Copy(fl).(*briefing.Flight)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = snap

	for conn := range s.subs {
		if err := conn.WriteJSON(snap); err != nil {
			log.WithError(err).Debug("dropping live subscriber")
			conn.Close()
			delete(s.subs, conn)
		}
	}
}

// Latest returns the most recently published briefing, nil before the
// first publish.
func (s *Server) Latest() *briefing.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

func (s *Server) briefingHandler(w http.ResponseWriter, r *http.Request) {
	fl := s.Latest()
	if fl == nil {
		http.Error(w, "no briefing computed yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(fl); err != nil {
		log.WithError(err).Error("encoding briefing response")
	}
}

func (s *Server) liveHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("websocket upgrade failed")
		return
	}

	s.mu.Lock()
	s.subs[conn] = struct{}{}
	latest := s.latest
	// send the current state right away so a new subscriber does not wait
	// for the next poll
	if latest != nil {
		if err := conn.WriteJSON(latest); err != nil {
			conn.Close()
			delete(s.subs, conn)
			s.mu.Unlock()
			return
		}
	}
	n := len(s.subs)
	s.mu.Unlock()
	log.WithField("subscribers", n).Debug("live subscriber connected")

	// read loop purely to notice the close
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.mu.Lock()
				if _, ok := s.subs[conn]; ok {
					conn.Close()
					delete(s.subs, conn)
				}
				s.mu.Unlock()
				return
			}
		}
	}()
}
