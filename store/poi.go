package store

import (
	"github.com/geoshield-inc/geoshield-api/schema"
)

// ListSafeZones returns every safe zone
func (s *MemoryStore) ListSafeZones() []schema.SafeZone {
	s.mu.RLock()
	defer s.mu.RUnlock()

	zones := make([]schema.SafeZone, 0, len(s.safeZones))
	for _, z := range s.safeZones {
		zones = append(zones, z.Copy())
	}
	return zones
}

// UpdateSafeZone merges a patch into a safe zone. Occupancy is not checked
// against capacity.
func (s *MemoryStore) UpdateSafeZone(id string, patch schema.SafeZonePatch) (*schema.SafeZone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.safeZones {
		if s.safeZones[i].ID != id {
			continue
		}

		patch.Apply(&s.safeZones[i])
		log.WithField("safe_zone", id).Debug("safe zone updated")

		z := s.safeZones[i].Copy()
		return &z, nil
	}

	return nil, ErrSafeZoneNotFound
}
