package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"

	"github.com/geoshield-inc/geoshield-api/realtime"
	"github.com/geoshield-inc/geoshield-api/schema"
)

var clock = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type serverFixture struct {
	scope   tally.TestScope
	server  *httptest.Server
	inbound chan realtime.Event

	mu       sync.Mutex
	hub      *realtime.Hub
	cancel   context.CancelFunc
	requests []schema.HelpRequest
}

func newServerFixture(t *testing.T) *serverFixture {
	f := &serverFixture{
		scope:   tally.NewTestScope("", map[string]string{}),
		inbound: make(chan realtime.Event, 8),
		requests: []schema.HelpRequest{
			{ID: "req-1", Latitude: 43.25, Longitude: -79.86, Status: schema.HelpPending},
			{ID: "req-2", Status: schema.HelpPending},
		},
	}
	f.startHub()

	reply := func(v interface{}) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			b, _ := json.Marshal(v)
			_, _ = w.Write(b)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/requests", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		b, _ := json.Marshal(f.requests)
		f.mu.Unlock()
		_, _ = w.Write(b)
	})
	mux.HandleFunc("/api/users", reply([]schema.User{
		schema.NewUser("user-1", "1", "sam", "pw", schema.RoleUser, clock),
		schema.NewUser("staff-1", "2", "dispatch", "pw", schema.RoleStaff, clock),
	}))
	mux.HandleFunc("/api/safe-zones", reply([]schema.SafeZone{{ID: "sz1", Name: "Arena"}}))
	mux.HandleFunc("/socket", func(w http.ResponseWriter, r *http.Request) {
		f.Hub().ServeWS(w, r, func(_ *realtime.Session, e realtime.Event) {
			f.inbound <- e
		})
	})
	f.server = httptest.NewServer(mux)

	return f
}

func (f *serverFixture) startHub() {
	hub := realtime.NewHub(nil, 8, f.scope)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	f.mu.Lock()
	f.hub = hub
	f.cancel = cancel
	f.mu.Unlock()
}

// stopHub closes every connected session
func (f *serverFixture) stopHub() {
	f.mu.Lock()
	cancel := f.cancel
	f.mu.Unlock()
	cancel()
}

func (f *serverFixture) Hub() *realtime.Hub {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hub
}

func (f *serverFixture) addRequest(r schema.HelpRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r)
}

func (f *serverFixture) Close() {
	f.server.Close()
	f.stopHub()
}

func (f *serverFixture) waitForSessions(t *testing.T, n int) {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, g := range f.scope.Snapshot().Gauges() {
			if strings.HasSuffix(g.Name(), "sessions") && g.Value() == float64(n) {
				return
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("hub never reached %d sessions", n)
}

func waitFor(t *testing.T, changes <-chan string, event string) {
	timeout := time.After(2 * time.Second)
	for {
		select {
		case e := <-changes:
			if e == event {
				return
			}
		case <-timeout:
			t.Fatalf("no %s within timeout", event)
		}
	}
}

func startSession(t *testing.T, f *serverFixture) (*Session, *Cache, <-chan string, context.CancelFunc) {
	cache := NewCache()
	s, err := NewSession(f.server.URL, "/api", cache)
	require.NoError(t, err)

	changes := make(chan string, 16)
	s.OnChange = func(event string) { changes <- event }
	s.RetryInterval = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	go s.Run(ctx)

	waitFor(t, changes, EventReload)
	f.waitForSessions(t, 1)

	return s, cache, changes, cancel
}

func TestSessionReloadsOnConnect(t *testing.T) {
	f := newServerFixture(t)
	defer f.Close()

	_, cache, _, cancel := startSession(t, f)
	defer cancel()

	requests := cache.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "req-1", requests[0].ID)

	volunteers := cache.Volunteers()
	require.Len(t, volunteers, 1)
	assert.Equal(t, "user-1", volunteers[0].ID)

	assert.Len(t, cache.SafeZones(), 1)
}

func TestSessionReloadsAfterReconnect(t *testing.T) {
	f := newServerFixture(t)
	defer f.Close()

	_, cache, changes, cancel := startSession(t, f)
	defer cancel()

	f.stopHub()
	f.addRequest(schema.HelpRequest{ID: "req-3", Latitude: 43.3, Longitude: -79.9, Status: schema.HelpPending})
	f.startHub()

	// reloads served while the old hub was still shutting down may come first
	timeout := time.After(2 * time.Second)
	for {
		waitFor(t, changes, EventReload)
		if _, ok := cache.Request("req-3"); ok {
			break
		}
		select {
		case <-timeout:
			t.Fatal("request created while offline never showed up")
		default:
		}
	}

	f.waitForSessions(t, 1)
	assert.Len(t, cache.Requests(), 2)
}

func TestSessionMergesEvents(t *testing.T) {
	f := newServerFixture(t)
	defer f.Close()

	_, cache, changes, cancel := startSession(t, f)
	defer cancel()

	f.Hub().Broadcast(realtime.EventNewRequest, schema.HelpRequest{ID: "req-3", Latitude: 43.3, Longitude: -79.9, Status: schema.HelpPending})
	waitFor(t, changes, realtime.EventNewRequest)

	f.Hub().Broadcast(realtime.EventRequestUpdated, schema.HelpRequest{
		ID:                  "req-1",
		Latitude:            43.25,
		Longitude:           -79.86,
		Status:              schema.HelpAssigned,
		AssignedVolunteerID: "user-1",
	})
	waitFor(t, changes, realtime.EventRequestUpdated)

	assert.Len(t, cache.Requests(), 2)
	r, ok := cache.Request("req-1")
	assert.True(t, ok)
	assert.Equal(t, schema.HelpAssigned, r.Status)
}

func TestSessionSendsEvents(t *testing.T) {
	f := newServerFixture(t)
	defer f.Close()

	s, _, _, cancel := startSession(t, f)
	defer cancel()

	require.NoError(t, s.AcceptRequest("req-1", "user-1", "sam"))

	select {
	case e := <-f.inbound:
		assert.Equal(t, realtime.EventAcceptRequest, e.Name)

		var params realtime.AcceptRequest
		assert.NoError(t, e.Decode(&params))
		assert.Equal(t, "req-1", params.RequestID)
		assert.Equal(t, "sam", params.VolunteerName)
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the event")
	}
}

func TestSendWithoutConnection(t *testing.T) {
	s, err := NewSession("http://localhost:3001", "/api", NewCache())
	require.NoError(t, err)

	assert.Equal(t, ErrNotConnected, s.CompleteRequest("req-1", "user-1"))
}

func TestSocketURL(t *testing.T) {
	u, err := socketURL("http://localhost:3001")
	assert.NoError(t, err)
	assert.Equal(t, "ws://localhost:3001/socket", u)

	u, err = socketURL("https://geoshield.example.org/")
	assert.NoError(t, err)
	assert.Equal(t, "wss://geoshield.example.org/socket", u)

	_, err = socketURL("ftp://localhost")
	assert.Error(t, err)
}

func TestAPIErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := NewAPI(ts.URL + "/api").Requests()
	assert.Error(t, err)
}
