package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/geoshield-inc/geoshield-api/realtime"
)

const (
	DefaultRetryInterval = 3 * time.Second

	// EventReload is reported to OnChange after every full reload
	EventReload = "reload"
)

var (
	ErrNotConnected = fmt.Errorf("not connected")

	log = logrus.WithField("prefix", "client")
)

// Session keeps a Cache in sync with a server. Every time the websocket
// is (re)established the cache is reloaded over REST, then events are
// merged as they arrive.
type Session struct {
	socketURL string
	api       API
	cache     *Cache
	dialer    *websocket.Dialer

	// RetryInterval is the wait between two connection attempts
	RetryInterval time.Duration

	// OnChange, when set, is called after a reload and after every event
	// that changed the cache
	OnChange func(event string)

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewSession creates a session against the server at serverURL. REST calls
// go to basePath on the same host, the websocket to /socket.
func NewSession(serverURL, basePath string, cache *Cache) (*Session, error) {
	socketURL, err := socketURL(serverURL)
	if err != nil {
		return nil, err
	}

	return &Session{
		socketURL:     socketURL,
		api:           NewAPI(strings.TrimRight(serverURL, "/") + basePath),
		cache:         cache,
		dialer:        websocket.DefaultDialer,
		RetryInterval: DefaultRetryInterval,
	}, nil
}

func socketURL(serverURL string) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme: %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/socket"

	return u.String(), nil
}

// Run connects and serves the session until ctx is cancelled, reconnecting
// whenever the connection drops
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := s.serve(ctx); err != nil {
			log.WithError(err).Warn("session interrupted")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.RetryInterval):
		}
	}
}

func (s *Session) serve(ctx context.Context) error {
	conn, _, err := s.dialer.DialContext(ctx, s.socketURL, nil)
	if err != nil {
		return err
	}
	defer s.disconnect(conn)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	if err := s.reload(); err != nil {
		return err
	}

	for {
		var e realtime.Event
		if err := conn.ReadJSON(&e); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		changed, err := s.cache.Apply(e)
		if err != nil {
			log.WithError(err).WithField("event", e.Name).Debug("ignored malformed event")
			continue
		}
		if changed {
			s.notify(e.Name)
		}
	}
}

func (s *Session) reload() error {
	requests, err := s.api.Requests()
	if err != nil {
		return err
	}
	users, err := s.api.Users()
	if err != nil {
		return err
	}
	zones, err := s.api.SafeZones()
	if err != nil {
		return err
	}

	s.cache.Reload(requests, users, zones)
	s.notify(EventReload)
	return nil
}

func (s *Session) disconnect(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	conn.Close()
}

func (s *Session) notify(event string) {
	if s.OnChange != nil {
		s.OnChange(event)
	}
}

// Send emits an event to the server on the current connection
func (s *Session) Send(name string, payload interface{}) error {
	e, err := realtime.NewEvent(name, payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return ErrNotConnected
	}
	return s.conn.WriteJSON(e)
}

// AcceptRequest asks the server to assign a pending request to a volunteer
func (s *Session) AcceptRequest(requestID, volunteerID, volunteerName string) error {
	return s.Send(realtime.EventAcceptRequest, realtime.AcceptRequest{
		RequestID:     requestID,
		VolunteerID:   volunteerID,
		VolunteerName: volunteerName,
	})
}

// CompleteRequest asks the server to fulfil an assigned request
func (s *Session) CompleteRequest(requestID, volunteerID string) error {
	return s.Send(realtime.EventCompleteRequest, realtime.CompleteRequest{
		RequestID:   requestID,
		VolunteerID: volunteerID,
	})
}
