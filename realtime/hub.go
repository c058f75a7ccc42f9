package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

const DefaultSendBuffer = 64

var log = logrus.WithField("prefix", "realtime")

// Hub keeps the set of connected sessions and fans every broadcast out to
// all of them. The session set is owned by the Run goroutine.
type Hub struct {
	sessions map[*Session]struct{}

	register   chan *Session
	unregister chan *Session
	broadcast  chan []byte
	done       chan struct{}

	upgrader   websocket.Upgrader
	sendBuffer int

	broadcasts tally.Counter
	dropped    tally.Counter
	connected  tally.Gauge
}

// NewHub creates a hub accepting websocket upgrades from the given origins.
// "*" allows every origin. Requests without an Origin header come from
// non-browser clients and are allowed.
func NewHub(origins []string, sendBuffer int, scope tally.Scope) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = DefaultSendBuffer
	}
	if scope == nil {
		scope = tally.NoopScope
	}
	scope = scope.SubScope("realtime")

	h := &Hub{
		sessions:   map[*Session]struct{}{},
		register:   make(chan *Session),
		unregister: make(chan *Session),
		broadcast:  make(chan []byte, sendBuffer),
		done:       make(chan struct{}),
		sendBuffer: sendBuffer,
		broadcasts: scope.Counter("broadcasts"),
		dropped:    scope.Counter("dropped_sessions"),
		connected:  scope.Gauge("sessions"),
	}

	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(origins, r.Header.Get("Origin"))
		},
	}

	return h
}

func originAllowed(origins []string, origin string) bool {
	if origin == "" {
		return true
	}
	for _, o := range origins {
		if o == "*" || strings.EqualFold(strings.TrimRight(o, "/"), strings.TrimRight(origin, "/")) {
			return true
		}
	}
	return false
}

// Run owns the session set until ctx is cancelled. All sessions are closed on return.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case s := <-h.register:
			h.sessions[s] = struct{}{}
			h.connected.Update(float64(len(h.sessions)))
			log.WithField("session", s.ID).Info("session connected")

		case s := <-h.unregister:
			if _, ok := h.sessions[s]; ok {
				h.remove(s)
				log.WithField("session", s.ID).Info("session disconnected")
			}

		case message := <-h.broadcast:
			for s := range h.sessions {
				select {
				case s.send <- message:
				default:
					// session is not draining its buffer
					h.remove(s)
					h.dropped.Inc(1)
					log.WithField("session", s.ID).Warn("dropped slow session")
				}
			}

		case <-ctx.Done():
			for s := range h.sessions {
				h.remove(s)
			}
			log.Info("hub stopped")
			return
		}
	}
}

func (h *Hub) remove(s *Session) {
	delete(h.sessions, s)
	close(s.send)
	h.connected.Update(float64(len(h.sessions)))
}

// Broadcast sends an event to every connected session. It never waits on
// a session; once the hub is stopped broadcasts are discarded.
func (h *Hub) Broadcast(event string, payload interface{}) {
	e, err := NewEvent(event, payload)
	if err != nil {
		log.WithError(err).WithField("event", event).Error("cannot encode event")
		return
	}

	message, err := json.Marshal(e)
	if err != nil {
		log.WithError(err).WithField("event", event).Error("cannot encode event")
		return
	}

	select {
	case h.broadcast <- message:
		h.broadcasts.Inc(1)
	case <-h.done:
	}
}

// ServeWS upgrades the connection and serves a session until the peer
// goes away. Events the peer sends are passed to handler one at a time.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, handler HandlerFunc) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	s := &Session{
		ID:   uuid.New().String(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, h.sendBuffer),
	}

	select {
	case h.register <- s:
	case <-h.done:
		conn.Close()
		return nil
	}

	go s.writePump()
	s.readPump(handler)
	return nil
}

// leave takes the session out of the hub unless the hub is already gone
func (h *Hub) leave(s *Session) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}
