package store

import (
	"time"

	"github.com/geoshield-inc/geoshield-api/schema"
)

// Overview summarizes the current workload for coordinators
func (s *MemoryStore) Overview() schema.Overview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now().UTC()
	year, month, day := now.Date()

	var o schema.Overview
	var responseTime time.Duration
	assigned := 0

	for _, r := range s.requests {
		if r.Active() {
			o.ActiveRequests++
			switch r.Urgency {
			case schema.UrgencyUrgent:
				o.UrgentRequests++
			case schema.UrgencyHigh:
				o.HighRequests++
			}
		}

		if r.Status == schema.HelpFulfilled && r.CompletedAt != nil {
			y, m, d := r.CompletedAt.UTC().Date()
			if y == year && m == month && d == day {
				o.FulfilledToday++
			}
		}

		if r.Status == schema.HelpAssigned && r.AssignedVolunteerID != "" {
			responseTime += now.Sub(r.CreatedAt)
			assigned++
		}
	}

	if assigned > 0 {
		o.AvgResponseMinutes = int((responseTime / time.Duration(assigned)).Round(time.Minute) / time.Minute)
	}

	for _, u := range s.users {
		if u.IsVolunteer() && u.Status == schema.VolunteerActive {
			o.ActiveVolunteers++
		}
	}

	return o
}
