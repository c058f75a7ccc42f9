package store

import (
	"fmt"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/geoshield-inc/geoshield-api/schema"
)

// StoreTestSuite runs against a fresh store with predictable ids, codes
// and a clock the tests move by hand
type StoreTestSuite struct {
	suite.Suite
	store *MemoryStore
	clock time.Time
	seq   int
	codes []string
}

func (s *StoreTestSuite) SetupTest() {
	s.clock = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.seq = 0
	s.codes = nil

	s.store = NewMemoryStore(DefaultSafeZones(), 0)
	s.store.now = func() time.Time { return s.clock }
	s.store.newID = func(prefix string) string {
		s.seq++
		return fmt.Sprintf("%s%d", prefix, s.seq)
	}
	s.store.newCode = func() string {
		code := fmt.Sprintf("%06d", 100000+len(s.codes))
		s.codes = append(s.codes, code)
		return code
	}
}

func (s *StoreTestSuite) advance(d time.Duration) {
	s.clock = s.clock.Add(d)
}

func (s *StoreTestSuite) signup(phone, name string, role schema.Role) *schema.User {
	u, err := s.store.Signup(schema.SignupRequest{
		Phone:    phone,
		Name:     name,
		Password: "pass-" + name,
		Role:     role,
		Verified: true,
	})
	s.Require().NoError(err)
	return u
}

func (s *StoreTestSuite) createRequest(userID string) *schema.HelpRequest {
	r, err := s.store.CreateRequest(schema.NewHelpRequest{
		Type:        schema.Medical,
		Urgency:     schema.UrgencyUrgent,
		PeopleCount: 2,
		Latitude:    43.26,
		Longitude:   -79.87,
		UserID:      userID,
	})
	s.Require().NoError(err)
	return r
}
