package client

import (
	"math"
	"sync"

	"github.com/geoshield-inc/geoshield-api/realtime"
	"github.com/geoshield-inc/geoshield-api/schema"
)

// Cache is the client side copy of requests, volunteers and safe zones.
// It is filled by a full reload and kept current by realtime events.
// Creation events only insert unknown ids, update events replace the
// whole entry of a known id.
type Cache struct {
	mu sync.RWMutex

	requests   []schema.HelpRequest
	volunteers []schema.User
	safeZones  []schema.SafeZone
}

func NewCache() *Cache {
	return &Cache{}
}

// Reload replaces every collection. Requests without a usable location
// and accounts that are not volunteers are left out.
func (c *Cache) Reload(requests []schema.HelpRequest, users []schema.User, safeZones []schema.SafeZone) {
	located := make([]schema.HelpRequest, 0, len(requests))
	for _, r := range requests {
		if validLocation(r.Latitude, r.Longitude) {
			located = append(located, r)
		}
	}

	volunteers := make([]schema.User, 0, len(users))
	for _, u := range users {
		if u.Role == schema.RoleUser {
			volunteers = append(volunteers, u)
		}
	}

	zones := make([]schema.SafeZone, len(safeZones))
	copy(zones, safeZones)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = located
	c.volunteers = volunteers
	c.safeZones = zones
}

// Apply merges one realtime event. It reports whether the cache changed.
// Events the cache does not track are ignored.
func (c *Cache) Apply(e realtime.Event) (bool, error) {
	switch e.Name {
	case realtime.EventNewRequest, realtime.EventRequestUpdated:
		var r schema.HelpRequest
		if err := e.Decode(&r); err != nil {
			return false, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()

		i := requestIndex(c.requests, r.ID)
		if e.Name == realtime.EventNewRequest {
			if i >= 0 {
				return false, nil
			}
			c.requests = append(c.requests, r)
			return true, nil
		}
		if i < 0 {
			return false, nil
		}
		c.requests[i] = r
		return true, nil

	case realtime.EventUserRegistered, realtime.EventUserUpdated:
		var u schema.User
		if err := e.Decode(&u); err != nil {
			return false, err
		}
		if u.Role != schema.RoleUser {
			return false, nil
		}

		c.mu.Lock()
		defer c.mu.Unlock()

		i := userIndex(c.volunteers, u.ID)
		if e.Name == realtime.EventUserRegistered {
			if i >= 0 {
				return false, nil
			}
			c.volunteers = append(c.volunteers, u)
			return true, nil
		}
		if i < 0 {
			return false, nil
		}
		c.volunteers[i] = u
		return true, nil

	case realtime.EventSafeZoneUpdated:
		var z schema.SafeZone
		if err := e.Decode(&z); err != nil {
			return false, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()

		for i := range c.safeZones {
			if c.safeZones[i].ID == z.ID {
				c.safeZones[i] = z
				return true, nil
			}
		}
		return false, nil
	}

	return false, nil
}

func (c *Cache) Requests() []schema.HelpRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()

	requests := make([]schema.HelpRequest, len(c.requests))
	copy(requests, c.requests)
	return requests
}

func (c *Cache) Volunteers() []schema.User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	volunteers := make([]schema.User, 0, len(c.volunteers))
	for _, u := range c.volunteers {
		volunteers = append(volunteers, u.Copy())
	}
	return volunteers
}

func (c *Cache) SafeZones() []schema.SafeZone {
	c.mu.RLock()
	defer c.mu.RUnlock()

	zones := make([]schema.SafeZone, 0, len(c.safeZones))
	for _, z := range c.safeZones {
		zones = append(zones, z.Copy())
	}
	return zones
}

// Request looks up a request by id
func (c *Cache) Request(id string) (schema.HelpRequest, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := requestIndex(c.requests, id); i >= 0 {
		return c.requests[i], true
	}
	return schema.HelpRequest{}, false
}

func requestIndex(requests []schema.HelpRequest, id string) int {
	for i := range requests {
		if requests[i].ID == id {
			return i
		}
	}
	return -1
}

func userIndex(users []schema.User, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}

// validLocation rejects coordinates outside the globe and the 0,0 point
// that an unset location decodes to
func validLocation(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	if lat == 0 && lng == 0 {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
